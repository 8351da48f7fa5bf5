package domain

// RecurrencePattern describes how a recurring lesson series repeats
type RecurrencePattern string

const (
	PatternWeekly    RecurrencePattern = "weekly"
	PatternBiweekly  RecurrencePattern = "biweekly"
	PatternTriweekly RecurrencePattern = "triweekly"
	PatternMonthly   RecurrencePattern = "monthly"
)

// IsValid проверяет, что паттерн известен
func (p RecurrencePattern) IsValid() bool {
	switch p {
	case PatternWeekly, PatternBiweekly, PatternTriweekly, PatternMonthly:
		return true
	default:
		return false
	}
}

// WeekMultiplier returns the number of weeks one step of the pattern covers
// before the interval multiplier is applied. Monthly patterns step in
// calendar months, not weeks, and return ok=false.
func (p RecurrencePattern) WeekMultiplier() (weeks int, ok bool) {
	switch p {
	case PatternWeekly:
		return 1, true
	case PatternBiweekly:
		return 2, true
	case PatternTriweekly:
		return 3, true
	default:
		return 0, false
	}
}
