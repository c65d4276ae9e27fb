package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/topspinhq/topspin/ent"
	"github.com/topspinhq/topspin/ent/sessionlog"
	"github.com/topspinhq/topspin/internal/history"
)

// sessionLogRepo implements SessionLogRepo backed by ent.
type sessionLogRepo struct {
	client *ent.Client
}

func (r *sessionLogRepo) Append(ctx context.Context, log *history.SessionLog) error {
	perf, err := json.Marshal(log.Performances)
	if err != nil {
		return fmt.Errorf("marshal performances: %w", err)
	}

	_, err = r.client.SessionLog.Create().
		SetLogID(log.ID).
		SetPlayerID(log.PlayerID).
		SetProgramID(log.ProgramID).
		SetDateCompleted(log.DateCompleted).
		SetDurationMin(log.DurationMin).
		SetRpe(log.RPE).
		SetNotes(log.Notes).
		SetPerformance(perf).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session log %s: %w", log.ID, err)
	}
	return nil
}

func (r *sessionLogRepo) ByPlayer(ctx context.Context, playerID string) ([]history.SessionLog, error) {
	rows, err := r.client.SessionLog.Query().
		Where(sessionlog.PlayerID(playerID)).
		Order(ent.Asc(sessionlog.FieldDateCompleted)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session logs for %s: %w", playerID, err)
	}

	logs := make([]history.SessionLog, 0, len(rows))
	for _, row := range rows {
		var perf []history.DrillPerformance
		if len(row.Performance) > 0 {
			if err := json.Unmarshal(row.Performance, &perf); err != nil {
				return nil, fmt.Errorf("unmarshal performances for %s: %w", row.LogID, err)
			}
		}
		logs = append(logs, history.SessionLog{
			ID:            row.LogID,
			PlayerID:      row.PlayerID,
			ProgramID:     row.ProgramID,
			DateCompleted: row.DateCompleted,
			DurationMin:   row.DurationMin,
			RPE:           row.Rpe,
			Notes:         row.Notes,
			Performances:  perf,
		})
	}
	return logs, nil
}
