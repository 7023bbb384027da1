package production

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
)

func mustWindow(t *testing.T, start, end string) shift.TimeWindow {
	t.Helper()
	s, err := shift.ParseClock(start)
	require.NoError(t, err)
	e, err := shift.ParseClock(end)
	require.NoError(t, err)
	return shift.TimeWindow{Start: s, End: e}
}

func TestGuardFutureDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	g := Guard{
		Date:   time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Window: mustWindow(t, "08:00", "16:00"),
		Now:    now,
	}
	assert.ErrorIs(t, g.Check(), ErrFutureDate)
}

func TestGuardShiftNotEnded(t *testing.T) {
	window := mustWindow(t, "08:00", "16:00")
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want error
	}{
		{"mid shift", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), ErrShiftNotEnded},
		{"one minute before end", time.Date(2025, 3, 10, 15, 59, 0, 0, time.UTC), ErrShiftNotEnded},
		{"exactly at end", time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC), nil},
		{"after end", time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC), nil},
		{"next day", time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Guard{Date: date, Window: window, Now: tt.now}
			if tt.want == nil {
				assert.NoError(t, g.Check())
			} else {
				assert.ErrorIs(t, g.Check(), tt.want)
			}
		})
	}
}

func TestGuardOvernightShiftEndsNextDay(t *testing.T) {
	// A 22:00-06:00 shift starting on the 10th ends at 06:00 on the 11th.
	window := mustWindow(t, "22:00", "06:00")
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want error
	}{
		{"same evening, shift running", time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), ErrShiftNotEnded},
		{"next morning before end", time.Date(2025, 3, 11, 5, 30, 0, 0, time.UTC), ErrShiftNotEnded},
		{"next morning at end", time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC), nil},
		{"next afternoon", time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Guard{Date: date, Window: window, Now: tt.now}
			if tt.want == nil {
				assert.NoError(t, g.Check())
			} else {
				assert.ErrorIs(t, g.Check(), tt.want)
			}
		})
	}
}

func TestGuardDuplicate(t *testing.T) {
	g := Guard{
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Window:       mustWindow(t, "08:00", "16:00"),
		Now:          time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC),
		HasDuplicate: true,
	}
	assert.ErrorIs(t, g.Check(), ErrDuplicateLog)
}

func TestGuardGateOrder(t *testing.T) {
	// A future-dated duplicate reports the date problem, not the duplicate.
	g := Guard{
		Date:         time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Window:       mustWindow(t, "08:00", "16:00"),
		Now:          time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC),
		HasDuplicate: true,
	}
	assert.ErrorIs(t, g.Check(), ErrFutureDate)
}

func TestEfficiency(t *testing.T) {
	assert.InDelta(t, 100.0, Efficiency(500, 500), 1e-9)
	assert.InDelta(t, 94.0, Efficiency(470, 500), 1e-9)
	assert.InDelta(t, 110.0, Efficiency(550, 500), 1e-9)
	assert.Zero(t, Efficiency(100, 0))
}
