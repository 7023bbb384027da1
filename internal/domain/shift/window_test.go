package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end string) TimeWindow {
	t.Helper()
	s, err := ParseClock(start)
	require.NoError(t, err)
	e, err := ParseClock(end)
	require.NoError(t, err)
	return TimeWindow{Start: s, End: e}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Hour())
	assert.Equal(t, 30, c.Minute())
	assert.Equal(t, "08:30", c.String())

	for _, bad := range []string{"", "8", "24:00", "12:60", "ab:cd", "12-30"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestDuration_SameDay(t *testing.T) {
	assert.InDelta(t, 8.0, mustWindow(t, "08:00", "16:00").Duration(), 1e-9)
	assert.InDelta(t, 0.5, mustWindow(t, "09:00", "09:30").Duration(), 1e-9)
	assert.InDelta(t, 23.983, mustWindow(t, "00:00", "23:59").Duration(), 0.001)
}

func TestDuration_Overnight(t *testing.T) {
	assert.InDelta(t, 8.0, mustWindow(t, "22:00", "06:00").Duration(), 1e-9)
	assert.InDelta(t, 1.0, mustWindow(t, "23:30", "00:30").Duration(), 1e-9)
	// start == end is a degenerate full-day overnight window
	assert.InDelta(t, 24.0, mustWindow(t, "08:00", "08:00").Duration(), 1e-9)
}

func TestContains_SameDay(t *testing.T) {
	w := mustWindow(t, "08:00", "16:00")

	assert.False(t, w.Contains(ClockOf(7, 0)))
	assert.True(t, w.Contains(ClockOf(8, 0)), "start bound is inclusive")
	assert.True(t, w.Contains(ClockOf(12, 0)))
	assert.True(t, w.Contains(ClockOf(16, 0)), "end bound is inclusive")
	assert.False(t, w.Contains(ClockOf(16, 1)))
}

func TestContains_Overnight(t *testing.T) {
	w := mustWindow(t, "22:00", "06:00")

	assert.True(t, w.Contains(ClockOf(23, 30)))
	assert.True(t, w.Contains(ClockOf(0, 0)))
	assert.True(t, w.Contains(ClockOf(5, 59)))
	assert.True(t, w.Contains(ClockOf(6, 0)))
	assert.False(t, w.Contains(ClockOf(7, 0)))
	assert.False(t, w.Contains(ClockOf(21, 59)))
	assert.True(t, w.Contains(ClockOf(22, 0)))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeWindow
		want bool
	}{
		{"disjoint same-day", mustWindow(t, "08:00", "12:00"), mustWindow(t, "13:00", "17:00"), false},
		{"overlapping same-day", mustWindow(t, "08:00", "16:00"), mustWindow(t, "15:00", "23:00"), true},
		{"back-to-back do not overlap", mustWindow(t, "08:00", "16:00"), mustWindow(t, "16:00", "23:00"), false},
		{"contained", mustWindow(t, "08:00", "20:00"), mustWindow(t, "10:00", "12:00"), true},
		{"overnight vs morning", mustWindow(t, "22:00", "06:00"), mustWindow(t, "08:00", "16:00"), false},
		{"overnight vs late evening", mustWindow(t, "22:00", "06:00"), mustWindow(t, "21:00", "23:00"), true},
		{"two overnights", mustWindow(t, "22:00", "06:00"), mustWindow(t, "23:00", "05:00"), true},
		// the overnight tail lands on the next day's timeline, so it does
		// not collide with a same-day morning window
		{"overnight tail vs early morning", mustWindow(t, "20:00", "04:00"), mustWindow(t, "02:00", "10:00"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}
