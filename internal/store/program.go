package store

import (
	"context"
	"fmt"

	"github.com/topspinhq/topspin/ent"
	"github.com/topspinhq/topspin/ent/program"
)

// programRepo implements ProgramRepo backed by ent.
type programRepo struct {
	client *ent.Client
}

func (r *programRepo) Save(ctx context.Context, rec *ProgramRecord) error {
	create := r.client.Program.Create().
		SetProgramID(rec.ProgramID).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetAssignedBy(rec.AssignedBy).
		SetAssignedTo(rec.AssignedTo).
		SetSessions(rec.Sessions).
		SetStatus(rec.Status).
		SetCompleted(rec.Completed).
		SetCreatedAt(rec.CreatedAt)

	if rec.Config != nil {
		create = create.SetConfig(rec.Config)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save program %s: %w", rec.ProgramID, err)
	}
	return nil
}

func (r *programRepo) ByPlayer(ctx context.Context, playerID string) ([]ProgramRecord, error) {
	rows, err := r.client.Program.Query().
		Where(program.AssignedTo(playerID)).
		Order(ent.Desc(program.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query programs for %s: %w", playerID, err)
	}

	recs := make([]ProgramRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, ProgramRecord{
			ProgramID:   row.ProgramID,
			Title:       row.Title,
			Description: row.Description,
			AssignedBy:  row.AssignedBy,
			AssignedTo:  row.AssignedTo,
			Sessions:    row.Sessions,
			Config:      row.Config,
			Status:      row.Status,
			Completed:   row.Completed,
			CreatedAt:   row.CreatedAt,
		})
	}
	return recs, nil
}
