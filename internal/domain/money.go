package domain

import "math"

// HourlyWage is what an hour of dish washing is worth against an unpaid bill.
const HourlyWage = 8.0

// Round2 rounds to cents. Amounts are kept unrounded internally and only
// rounded when they are reported to another agent.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HoursOwed converts a shortfall into working hours at HourlyWage.
func HoursOwed(due, received float64) float64 {
	if received >= due {
		return 0
	}
	return (due - received) / HourlyWage
}
