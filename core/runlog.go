package core

import (
	"context"
	"time"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/dataset"
	"github.com/huangsam/dietradar/schema"
)

// beginRun opens a run in the run log, if one is configured. The returned
// context carries the run ID for finishRun.
func beginRun(ctx context.Context, mgr contract.StoreManager, command string, cfg *contract.Config, ds *schema.Dataset) (context.Context, contract.RunStore) {
	if mgr == nil {
		return ctx, nil
	}
	store := mgr.GetRunStore()
	if store == nil {
		return ctx, nil
	}

	source := dataset.BuiltinSource
	if ds != nil && ds.Source != "" {
		source = ds.Source
	}
	runID, err := store.BeginRun(schema.RunRecord{
		Command:       command,
		StartTime:     time.Now().UTC(),
		DatasetSource: source,
		ShiftMin:      cfg.ShiftMin,
		ShiftFactor:   cfg.ShiftFactor,
	})
	if err != nil {
		contract.LogWarn("Failed to begin run log entry", err)
		return ctx, nil
	}
	return withRunID(ctx, runID), store
}

// finishRun stores every (metric, diet) coordinate of rows and closes the run.
// Failures are logged and never abort the command.
func finishRun(ctx context.Context, store contract.RunStore, rows []schema.ChartRow) {
	if store == nil {
		return
	}
	runID, ok := getRunID(ctx)
	if !ok {
		return
	}
	if err := store.RecordPoints(runID, pointsFromRows(runID, rows)); err != nil {
		contract.LogWarn("Failed to record run points", err)
	}
	if err := store.EndRun(runID, time.Now().UTC(), len(rows)); err != nil {
		contract.LogWarn("Failed to end run log entry", err)
	}
}

// pointsFromRows flattens detail rows in row order, diets sorted canonically.
func pointsFromRows(runID int64, rows []schema.ChartRow) []schema.PointRecord {
	var points []schema.PointRecord
	for _, r := range rows {
		for _, d := range schema.AllDiets {
			shifted, ok := r.Values[d]
			if !ok {
				continue
			}
			points = append(points, schema.PointRecord{
				RunID:      runID,
				Metric:     string(r.Metric),
				Diet:       string(d),
				RawValue:   r.Raw[d],
				Normalized: r.Normalized[d],
				Shifted:    shifted,
			})
		}
	}
	return points
}
