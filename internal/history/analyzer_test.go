package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logWith(perfs ...DrillPerformance) SessionLog {
	return SessionLog{PlayerID: "player1", Performances: perfs}
}

func TestAnalyze_MajoritySuccessIsStrength(t *testing.T) {
	logs := []SessionLog{
		logWith(
			DrillPerformance{DrillID: "d1", Outcome: OutcomeSuccess},
			DrillPerformance{DrillID: "d1", Outcome: OutcomeSuccess},
		),
		logWith(
			DrillPerformance{DrillID: "d1", Outcome: OutcomeFail},
		),
	}

	a := Analyze(logs)
	assert.True(t, a.Strengths["d1"])
	assert.False(t, a.Weaknesses["d1"])
}

func TestAnalyze_MajorityFailIsWeakness(t *testing.T) {
	logs := []SessionLog{
		logWith(
			DrillPerformance{DrillID: "d5", Outcome: OutcomeFail},
			DrillPerformance{DrillID: "d5", Outcome: OutcomeFail},
			DrillPerformance{DrillID: "d5", Outcome: OutcomeSuccess},
		),
	}

	a := Analyze(logs)
	assert.True(t, a.Weaknesses["d5"])
	assert.False(t, a.Strengths["d5"])
}

func TestAnalyze_TieLandsInNeither(t *testing.T) {
	logs := []SessionLog{
		logWith(
			DrillPerformance{DrillID: "d3", Outcome: OutcomeSuccess},
			DrillPerformance{DrillID: "d3", Outcome: OutcomeFail},
		),
	}

	a := Analyze(logs)
	assert.False(t, a.Strengths["d3"])
	assert.False(t, a.Weaknesses["d3"])
}

func TestAnalyze_EveryDrillInExactlyOnePartition(t *testing.T) {
	logs := []SessionLog{
		logWith(
			DrillPerformance{DrillID: "d1", Outcome: OutcomeSuccess},
			DrillPerformance{DrillID: "d2", Outcome: OutcomeFail},
			DrillPerformance{DrillID: "d3", Outcome: OutcomeSuccess},
		),
		logWith(
			DrillPerformance{DrillID: "d3", Outcome: OutcomeFail},
			DrillPerformance{DrillID: "d2", Outcome: OutcomeFail},
		),
	}

	a := Analyze(logs)
	for _, id := range []string{"d1", "d2", "d3"} {
		inBoth := a.Strengths[id] && a.Weaknesses[id]
		assert.False(t, inBoth, "drill %s in both partitions", id)
	}
	assert.True(t, a.Strengths["d1"])
	assert.True(t, a.Weaknesses["d2"])
	// d3: 1 success, 1 fail, so neither.
	assert.False(t, a.Strengths["d3"])
	assert.False(t, a.Weaknesses["d3"])
	// Never-attempted drills appear nowhere.
	assert.False(t, a.Strengths["d9"])
	assert.False(t, a.Weaknesses["d9"])
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	a := Analyze(nil)
	assert.Empty(t, a.Strengths)
	assert.Empty(t, a.Weaknesses)
}

func TestTallyCounts(t *testing.T) {
	logs := []SessionLog{
		logWith(
			DrillPerformance{DrillID: "d1", Outcome: OutcomeSuccess},
			DrillPerformance{DrillID: "d1", Outcome: OutcomeSuccess},
			DrillPerformance{DrillID: "d1", Outcome: OutcomeFail},
		),
	}

	stats := Tally(logs)
	require.Len(t, stats, 1)
	assert.Equal(t, DrillStat{Success: 2, Fail: 1}, stats["d1"])
}

func TestStrengthIDsSorted(t *testing.T) {
	logs := []SessionLog{
		logWith(
			DrillPerformance{DrillID: "d9", Outcome: OutcomeSuccess},
			DrillPerformance{DrillID: "d2", Outcome: OutcomeSuccess},
			DrillPerformance{DrillID: "d5", Outcome: OutcomeSuccess},
		),
	}

	a := Analyze(logs)
	assert.Equal(t, []string{"d2", "d5", "d9"}, a.StrengthIDs())
	assert.Empty(t, a.WeaknessIDs())
}
