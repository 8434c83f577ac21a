package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshalForms(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2025-01-15T10:30:45.123456"`, time.Date(2025, 1, 15, 10, 30, 45, 123456000, time.UTC)},
		{`"2025-01-15T10:30:45"`, time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC)},
		{`"2025-01-15T10:30:45Z"`, time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC)},
		{`"2025-01-15T10:30:45-05:00"`, time.Date(2025, 1, 15, 15, 30, 45, 0, time.UTC)},
		{`"2025-01-15"`, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if !ts.Time.Equal(tt.want) {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, ts.Time, tt.want)
		}
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"last tuesday"`), &ts); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
	if err := json.Unmarshal([]byte(`12`), &ts); err == nil {
		t.Error("expected error for non-string timestamp")
	}
}

func TestTimestampMarshalRoundTrip(t *testing.T) {
	in := NewTimestamp(time.Date(2025, 1, 15, 10, 30, 45, 123456000, time.UTC))
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-01-15T10:30:45.123456Z"` {
		t.Errorf("Marshal = %s", data)
	}
	var out Timestamp
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestTickerRecordLegacyDates(t *testing.T) {
	doc := `{"ticker":"AAPL","content":"# Apple","generated_date":"2025-01-15T10:30:45.123456",` +
		`"next_refresh_date":"2025-04-16T10:30:45.123456","model":"claude-sonnet-4-20250514"}`
	var rec TickerRecord
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if rec.GeneratedDate.Year() != 2025 || rec.GeneratedDate.Month() != time.January {
		t.Errorf("GeneratedDate = %v", rec.GeneratedDate)
	}
	if rec.NextRefreshDate == nil || rec.NextRefreshDate.Sub(rec.GeneratedDate.Time) != RefreshInterval {
		t.Errorf("NextRefreshDate = %v", rec.NextRefreshDate)
	}
}
