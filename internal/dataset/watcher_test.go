package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/dietradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcherRequiresPath(t *testing.T) {
	_, err := NewWatcher("")
	assert.Error(t, err)
}

func TestNewWatcherLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"diets": `), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "missing.json"), "failed to read dataset"},
		{"malformed json", bad, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWatcher(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"diets": {"vegan": {"fiber_g_day": 40}}}`), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	snap := w.Snapshot()
	assert.Equal(t, int64(1), snap.Version)
	assert.Equal(t, 40.0, snap.Dataset.Record(schema.Vegan)["fiber_g_day"])

	reloaded := make(chan *schema.Dataset, 4)
	w.Subscribe(func(ds *schema.Dataset) { reloaded <- ds })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watcher a moment to register before touching the file.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"diets": {"vegan": {"fiber_g_day": 55}}}`), 0o644))

	assert.Eventually(t, func() bool {
		select {
		case ds := <-reloaded:
			return ds.Record(schema.Vegan)["fiber_g_day"] == 55
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
	assert.GreaterOrEqual(t, w.Snapshot().Version, int64(2))
}
