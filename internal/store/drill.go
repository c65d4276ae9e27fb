package store

import (
	"context"
	"fmt"

	"github.com/topspinhq/topspin/ent"
	"github.com/topspinhq/topspin/ent/drill"
	"github.com/topspinhq/topspin/internal/catalog"
)

// drillRepo implements DrillRepo backed by ent.
type drillRepo struct {
	client *ent.Client
}

func (r *drillRepo) Seed(ctx context.Context, drills []catalog.Drill) (int, error) {
	inserted := 0
	for _, d := range drills {
		exists, err := r.client.Drill.Query().
			Where(drill.DrillID(d.ID)).
			Exist(ctx)
		if err != nil {
			return inserted, fmt.Errorf("check drill %s: %w", d.ID, err)
		}
		if exists {
			continue
		}

		_, err = r.client.Drill.Create().
			SetDrillID(d.ID).
			SetName(d.Name).
			SetCategory(string(d.Category)).
			SetDifficulty(string(d.Difficulty)).
			SetDescription(d.Description).
			SetDefaultDurationMin(d.DefaultDurationMin).
			Save(ctx)
		if err != nil {
			return inserted, fmt.Errorf("save drill %s: %w", d.ID, err)
		}
		inserted++
	}
	return inserted, nil
}

func (r *drillRepo) All(ctx context.Context) ([]catalog.Drill, error) {
	rows, err := r.client.Drill.Query().
		Order(ent.Asc(drill.FieldDrillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query drills: %w", err)
	}

	drills := make([]catalog.Drill, 0, len(rows))
	for _, row := range rows {
		drills = append(drills, catalog.Drill{
			ID:                 row.DrillID,
			Name:               row.Name,
			Category:           catalog.Category(row.Category),
			Difficulty:         catalog.Difficulty(row.Difficulty),
			Description:        row.Description,
			DefaultDurationMin: row.DefaultDurationMin,
		})
	}
	return drills, nil
}
