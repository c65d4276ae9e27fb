package history

import "sort"

// Analysis partitions the drills seen in a player's history. A drill is a
// strength when its success count strictly exceeds its fail count and a
// weakness in the opposite case. Equal counts land in neither set, as do
// drills absent from the history.
type Analysis struct {
	Strengths  map[string]bool
	Weaknesses map[string]bool
}

// Analyze folds every drill performance in the given logs into per-drill
// tallies and derives the strength/weakness partition. Pure and
// deterministic; an empty history yields empty sets.
func Analyze(logs []SessionLog) Analysis {
	stats := Tally(logs)

	a := Analysis{
		Strengths:  make(map[string]bool),
		Weaknesses: make(map[string]bool),
	}
	for drillID, s := range stats {
		switch {
		case s.Success > s.Fail:
			a.Strengths[drillID] = true
		case s.Fail > s.Success:
			a.Weaknesses[drillID] = true
		}
	}
	return a
}

// Tally accumulates success/fail counts per drill ID. Each drill ID
// appears at most once in the result; counts are never negative.
func Tally(logs []SessionLog) map[string]DrillStat {
	stats := make(map[string]DrillStat)
	for _, log := range logs {
		for _, perf := range log.Performances {
			s := stats[perf.DrillID]
			if perf.Outcome == OutcomeSuccess {
				s.Success++
			} else {
				s.Fail++
			}
			stats[perf.DrillID] = s
		}
	}
	return stats
}

// StrengthIDs returns the strength set as a sorted slice for prompt
// rendering. Sorted so identical histories produce identical prompts.
func (a Analysis) StrengthIDs() []string {
	return setToSlice(a.Strengths)
}

// WeaknessIDs returns the weakness set as a sorted slice.
func (a Analysis) WeaknessIDs() []string {
	return setToSlice(a.Weaknesses)
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
