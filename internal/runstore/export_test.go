package runstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/dietradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(testRun(time.Now()))
	require.NoError(t, err)
	require.NoError(t, store.RecordPoints(runID, testPoints(runID)))
	require.NoError(t, store.EndRun(runID, time.Now(), 1))

	out := filepath.Join(t.TempDir(), "export")
	require.NoError(t, ExportRuns(store, out))

	for _, suffix := range []string{".runs.parquet", ".points.parquet"} {
		info, err := os.Stat(out + suffix)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExportRunsErrors(t *testing.T) {
	err := ExportRuns(&MockRunStore{}, "")
	assert.EqualError(t, err, "--output-file is required for export command")

	err = ExportRuns(nil, "out")
	assert.EqualError(t, err, "run log is not configured")

	empty := &MockRunStore{}
	empty.On("GetStatus").Return(schema.RunLogStatus{Backend: "sqlite", Connected: true}, nil)
	err = ExportRuns(empty, "out")
	assert.EqualError(t, err, "no run data found to export")
	empty.AssertExpectations(t)

	broken := &MockRunStore{}
	broken.On("GetStatus").Return(schema.RunLogStatus{TotalRuns: 1}, nil)
	broken.On("GetAllRuns").Return(nil, errors.New("boom"))
	err = ExportRuns(broken, filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to retrieve runs")
}

func TestPrintRunStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintRunStatus(&buf, schema.RunLogStatus{Backend: "none"})
	assert.Equal(t, "Run Log Backend: none\nConnected: false\n", buf.String())

	buf.Reset()
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	PrintRunStatus(&buf, schema.RunLogStatus{
		Backend:       "sqlite",
		Connected:     true,
		TotalRuns:     2,
		TotalPoints:   464,
		LastRunID:     2,
		LastRunTime:   ts,
		OldestRunTime: ts,
		TableSizes:    map[string]int64{pointsTable: 464, runsTable: 2},
	})
	out := buf.String()
	assert.Contains(t, out, "Total Runs: 2")
	assert.Contains(t, out, "Last Run: 2024-05-01 09:00:00")
	assert.Contains(t, out, "Total Points: 464")
	// Tables are printed in name order
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(pointsTable)), bytes.Index(buf.Bytes(), []byte(runsTable)))
}

func TestPrintMigrationStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintMigrationStatus(&buf, schema.MigrationStatus{Version: 2, Dirty: true})
	assert.Contains(t, buf.String(), "Schema Version: 2")
	assert.Contains(t, buf.String(), "dirty")
}

func TestClearRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Missing file is fine
	assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	assert.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
	assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
	assert.Error(t, ClearRuns("oracle", "", ""))
}

func TestStoreManagerGetRunStore(t *testing.T) {
	mgr := &StoreManager{}
	assert.Nil(t, mgr.GetRunStore())

	store := &MockRunStore{}
	mgr.runs = store
	assert.Equal(t, store, mgr.GetRunStore())
}
