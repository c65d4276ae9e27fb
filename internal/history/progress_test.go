package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	logs := []SessionLog{
		{
			DurationMin: 60,
			RPE:         7,
			Performances: []DrillPerformance{
				{DrillID: "d1", Outcome: OutcomeSuccess},
				{DrillID: "d3", Outcome: OutcomeFail},
			},
		},
		{
			DurationMin: 45,
			RPE:         5,
			Performances: []DrillPerformance{
				{DrillID: "d1", Outcome: OutcomeSuccess},
				{DrillID: "d5", Outcome: OutcomeSuccess},
			},
		},
	}

	s := Summarize(logs)
	assert.Equal(t, 2, s.SessionsCompleted)
	assert.Equal(t, 105, s.TotalMinutes)
	assert.InDelta(t, 6.0, s.AverageRPE, 1e-9)
	assert.InDelta(t, 0.75, s.SuccessRate, 1e-9)
	assert.Equal(t, 4, s.DrillsAttempted)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.SessionsCompleted)
	assert.Zero(t, s.AverageRPE)
	assert.Zero(t, s.SuccessRate)
}

func TestCategoryCounts(t *testing.T) {
	logs := []SessionLog{
		{Performances: []DrillPerformance{
			{DrillID: "w1", Outcome: OutcomeSuccess},
			{DrillID: "d1", Outcome: OutcomeFail},
			{DrillID: "d2", Outcome: OutcomeSuccess},
		}},
		{Performances: []DrillPerformance{
			{DrillID: "d1", Outcome: OutcomeSuccess},
			{DrillID: "mystery", Outcome: OutcomeFail},
		}},
	}
	index := map[string]string{
		"w1": "Warmup",
		"d1": "Forehand",
		"d2": "Backhand",
	}

	counts := CategoryCounts(logs, index)
	assert.Equal(t, map[string]int{
		"Warmup":   1,
		"Forehand": 2,
		"Backhand": 1,
		"Unknown":  1,
	}, counts)
}

func TestCategoryCountsEmpty(t *testing.T) {
	assert.Empty(t, CategoryCounts(nil, nil))
}
