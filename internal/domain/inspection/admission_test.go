package inspection

import (
	"testing"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayWindow() shift.TimeWindow {
	return shift.TimeWindow{Start: shift.ClockOf(8, 0), End: shift.ClockOf(16, 0)}
}

func nightWindow() shift.TimeWindow {
	return shift.TimeWindow{Start: shift.ClockOf(22, 0), End: shift.ClockOf(6, 0)}
}

func TestAdmission_Accepted(t *testing.T) {
	err := Admission{Window: dayWindow(), Hour: 10, ExistingCount: 3}.Check()
	assert.NoError(t, err)
}

func TestAdmission_WindowBounds(t *testing.T) {
	tests := []struct {
		name   string
		window shift.TimeWindow
		hour   int
		inside bool
	}{
		{"before day shift", dayWindow(), 7, false},
		{"day shift start inclusive", dayWindow(), 8, true},
		{"day shift end inclusive", dayWindow(), 16, true},
		{"after day shift", dayWindow(), 17, false},
		{"night shift late evening", nightWindow(), 23, true},
		{"night shift early morning", nightWindow(), 5, true},
		{"night shift end inclusive", nightWindow(), 6, true},
		{"outside night shift", nightWindow(), 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Admission{Window: tt.window, Hour: tt.hour}.Check()
			if tt.inside {
				assert.NoError(t, err)
				return
			}
			var outside *OutsideWindowError
			require.ErrorAs(t, err, &outside)
			assert.Equal(t, tt.hour, outside.Hour)
		})
	}
}

func TestAdmission_CapacityGate(t *testing.T) {
	// the ninth result for a shift instance is rejected even with a valid,
	// non-duplicate hour
	err := Admission{Window: dayWindow(), Hour: 12, ExistingCount: MaxResultsPerShift}.Check()
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	err = Admission{Window: dayWindow(), Hour: 12, ExistingCount: MaxResultsPerShift - 1}.Check()
	assert.NoError(t, err)
}

func TestAdmission_DuplicateGate(t *testing.T) {
	err := Admission{Window: dayWindow(), Hour: 12, HasDuplicate: true}.Check()
	assert.ErrorIs(t, err, ErrDuplicateResult)
}

func TestAdmission_GateOrder(t *testing.T) {
	// window failure wins over capacity and duplicate
	err := Admission{Window: dayWindow(), Hour: 3, ExistingCount: 99, HasDuplicate: true}.Check()
	var outside *OutsideWindowError
	assert.ErrorAs(t, err, &outside)

	// capacity failure wins over duplicate
	err = Admission{Window: dayWindow(), Hour: 12, ExistingCount: MaxResultsPerShift, HasDuplicate: true}.Check()
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
