package services

// CalculatePayout converts awarded points plus American odds into a payout
// figure. Positive odds are the profit on a 100 stake, negative odds the
// stake needed to profit 100. Zero odds mean no odds were captured; callers
// skip the payout entirely in that case (see americanToDecimal).
func CalculatePayout(basePoints float64, odds int) float64 {
	return basePoints * americanToDecimal(odds)
}

// americanToDecimal converts American odds to a decimal multiplier
func americanToDecimal(american int) float64 {
	if american > 0 {
		return (float64(american) / 100.0) + 1.0
	}
	if american < 0 {
		return (100.0 / float64(-american)) + 1.0
	}
	// No price on the line: even multiplier, though the orchestrator
	// treats zero odds as "no odds" and never gets here.
	return 1.0
}
