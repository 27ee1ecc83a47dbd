package entity

// EstimateScore computes the score a draft would earn. Amount with a unit
// wins over duration with a time modifier. The second return is false when
// the inputs are insufficient for any estimate; callers render a placeholder
// instead of implying a score of zero.
//
// The calculation is plain floating-point multiplication. Rounding and
// display formatting belong to callers.
func EstimateScore(amount *float64, unit *Unit, durationMinutes, timeModifier *float64) (float64, bool) {
	if amount != nil && unit != nil && *amount > 0 {
		return *amount * unit.Modifier, true
	}
	if durationMinutes != nil && timeModifier != nil {
		return *durationMinutes * *timeModifier, true
	}
	return 0, false
}
