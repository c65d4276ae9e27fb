package history

// Summary aggregates a player's logged sessions for progress display.
type Summary struct {
	SessionsCompleted int
	TotalMinutes      int
	AverageRPE        float64
	SuccessRate       float64
	DrillsAttempted   int
}

// Summarize computes aggregate progress figures over the given logs.
// Rates are 0 when there is nothing to average.
func Summarize(logs []SessionLog) Summary {
	s := Summary{SessionsCompleted: len(logs)}

	var rpeSum, successes, attempts int
	for _, log := range logs {
		s.TotalMinutes += log.DurationMin
		rpeSum += log.RPE
		for _, perf := range log.Performances {
			attempts++
			if perf.Outcome == OutcomeSuccess {
				successes++
			}
		}
	}

	s.DrillsAttempted = attempts
	if len(logs) > 0 {
		s.AverageRPE = float64(rpeSum) / float64(len(logs))
	}
	if attempts > 0 {
		s.SuccessRate = float64(successes) / float64(attempts)
	}
	return s
}

// CategoryCounts tallies drill attempts per category. The caller supplies
// the drill-to-category index; attempts on drills missing from it are
// counted under "Unknown".
func CategoryCounts(logs []SessionLog, categoryByDrill map[string]string) map[string]int {
	counts := make(map[string]int)
	for _, log := range logs {
		for _, perf := range log.Performances {
			cat, ok := categoryByDrill[perf.DrillID]
			if !ok {
				cat = "Unknown"
			}
			counts[cat]++
		}
	}
	return counts
}
