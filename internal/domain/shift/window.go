package shift

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a tenant-local wall-clock time expressed as minutes since
// midnight. Shift boundaries are HH:MM strings on the wire; keeping them as
// plain minutes makes the midnight-crossing arithmetic explicit.
type ClockTime int

const minutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	return ClockTime(h*60 + m), nil
}

// ClockOf builds a ClockTime from an hour and minute.
func ClockOf(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// TimeWindow is a start/end wall-clock pair. A window whose end is less than
// or equal to its start is overnight: it ends on the following calendar day.
// Start == End is treated as a full 24h overnight window.
type TimeWindow struct {
	Start ClockTime
	End   ClockTime
}

func (w TimeWindow) IsOvernight() bool {
	return w.End <= w.Start
}

// Duration returns the window length in hours. Always in (0, 24].
func (w TimeWindow) Duration() float64 {
	end := int(w.End)
	if w.IsOvernight() {
		end += minutesPerDay
	}
	return float64(end-int(w.Start)) / 60.0
}

// Contains reports whether t falls inside the window. Both bounds are
// inclusive, matching the hour-granular checks downstream.
func (w TimeWindow) Contains(t ClockTime) bool {
	if !w.IsOvernight() {
		return w.Start <= t && t <= w.End
	}
	return t >= w.Start || t <= w.End
}

// Overlaps reports whether the two windows share any time on a common
// elapsed timeline. Ends are normalized to the next day when the window is
// overnight, then the standard half-open interval test applies, so
// back-to-back windows (one ending exactly when the other starts) do not
// overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	s1, e1 := int(w.Start), int(w.End)
	if e1 <= s1 {
		e1 += minutesPerDay
	}
	s2, e2 := int(other.Start), int(other.End)
	if e2 <= s2 {
		e2 += minutesPerDay
	}
	return s1 < e2 && s2 < e1
}

func (w TimeWindow) String() string {
	return w.Start.String() + " - " + w.End.String()
}
