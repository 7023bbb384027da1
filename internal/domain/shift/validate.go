package shift

// MaxDailyHours is the per-weekday budget a tenant's shifts may occupy.
const MaxDailyHours = 24.0

// budgetEpsilon absorbs float rounding so a weekday totalling exactly 24h
// is not rejected.
const budgetEpsilon = 1e-6

// CheckOverlap detects pairwise overlap among timings assigned to the same
// weekday. Validation is all-or-nothing over the batch: the first conflict
// aborts. A shift has at most seven timings, so the quadratic scan is fine.
func CheckOverlap(timings []ShiftTiming) error {
	for i, a := range timings {
		for j, b := range timings {
			if i >= j {
				continue
			}
			if a.Weekday == b.Weekday && a.Window.Overlaps(b.Window) {
				return &OverlapError{Weekday: a.Weekday}
			}
		}
	}
	return nil
}

// CheckBudget rejects any weekday whose committed hours plus the candidate
// batch would exceed MaxDailyHours. Weekdays not touched by the candidate
// batch are not re-checked.
func CheckBudget(existing, candidate []ShiftTiming) error {
	existingHours := hoursByWeekday(existing)
	newHours := hoursByWeekday(candidate)

	for weekday := 1; weekday <= 7; weekday++ {
		hours, ok := newHours[weekday]
		if !ok {
			continue
		}
		total := existingHours[weekday] + hours
		if total > MaxDailyHours+budgetEpsilon {
			return &BudgetError{Weekday: weekday, Hours: total}
		}
	}
	return nil
}

func hoursByWeekday(timings []ShiftTiming) map[int]float64 {
	hours := make(map[int]float64, 7)
	for _, t := range timings {
		hours[t.Weekday] += t.Window.Duration()
	}
	return hours
}
