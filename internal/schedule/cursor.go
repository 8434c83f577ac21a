package schedule

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quicktick/internal/domain"
	"quicktick/internal/util"
)

// ErrCursorUnreadable is returned when the cursor file is missing, empty, or
// holds something other than a day in [1, 91].
var ErrCursorUnreadable = errors.New("cursor unreadable")

// CursorFile persists the day cursor as a single decimal integer.
type CursorFile struct {
	Path string
}

// NewCursorFile returns a CursorFile backed by path.
func NewCursorFile(path string) *CursorFile {
	return &CursorFile{Path: path}
}

// Load reads the cursor value.
func (c *CursorFile) Load() (int, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCursorUnreadable, err)
	}
	text := strings.TrimSpace(string(data))
	day, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrCursorUnreadable, text)
	}
	if day < 1 || day > domain.TotalDays {
		return 0, fmt.Errorf("%w: %d out of range", ErrCursorUnreadable, day)
	}
	return day, nil
}

// Save writes day to the cursor file, replacing it atomically.
func (c *CursorFile) Save(day int) error {
	if day < 1 || day > domain.TotalDays {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return util.WriteFileAtomic(c.Path, []byte(strconv.Itoa(day)))
}
