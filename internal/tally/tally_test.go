package tally

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	tl := New("report", 4)
	tl.Success()
	tl.Success()
	tl.Fail()
	tl.Skip()
	tl.AddCost(0.25)
	tl.AddCost(0.5)
	tl.Inc("sector_mapped")
	tl.Inc("sector_mapped")

	assert.Equal(t, 2, tl.Successful)
	assert.Equal(t, 1, tl.Failed)
	assert.Equal(t, 1, tl.Skipped)
	assert.Equal(t, 4, tl.Processed())
	assert.InDelta(t, 0.75, tl.Cost, 1e-9)
	assert.Equal(t, 2, tl.Extra["sector_mapped"])
}

func TestAveragePerTicker(t *testing.T) {
	tl := New("summary", 2)
	tl.Started = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tl.Finished = tl.Started.Add(10 * time.Second)
	assert.Equal(t, time.Duration(0), tl.AveragePerTicker())

	tl.Success()
	tl.Fail()
	assert.Equal(t, 10*time.Second, tl.Elapsed())
	assert.Equal(t, 5*time.Second, tl.AveragePerTicker())
}

func TestRender(t *testing.T) {
	tl := New("report", 3)
	tl.Success()
	tl.Fail()
	tl.AddCost(1.5)
	tl.Inc("sector_mapped")
	tl.Finish()

	var buf bytes.Buffer
	tl.Render(&buf)
	out := buf.String()
	for _, want := range []string{"report summary", "Successful", "Failed", "sector_mapped", "$1.5000"} {
		assert.True(t, strings.Contains(out, want), "render output missing %q:\n%s", want, out)
	}
}
