package dataset

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"
	"github.com/spf13/viper"
)

// ChangeListener is called with the new dataset after a successful reload.
type ChangeListener func(*schema.Dataset)

// Snapshot is a read-only view of the latest loaded dataset.
type Snapshot struct {
	Version  int64
	LoadedAt time.Time
	Dataset  *schema.Dataset
}

// Watcher keeps the latest version of a dataset file in memory and reloads it
// when the file changes on disk.
type Watcher struct {
	path string
	v    *viper.Viper

	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []ChangeListener
	stopped   bool
}

// NewWatcher loads the dataset at path. Call Run to start watching.
func NewWatcher(path string) (*Watcher, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("dataset watcher requires a file path")
	}
	// viper only supplies the fsnotify hook; parsing goes through LoadFile
	v := viper.New()
	v.SetConfigFile(path)
	w := &Watcher{path: path, v: v}
	if err := w.reload(); err != nil {
		return nil, err
	}
	return w, nil
}

// Snapshot returns the current dataset snapshot.
func (w *Watcher) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshot
}

// Subscribe registers a listener for future reloads.
func (w *Watcher) Subscribe(fn ChangeListener) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, fn)
}

// Run watches the file until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	w.v.OnConfigChange(func(evt fsnotify.Event) {
		if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
			return
		}
		if err := w.reload(); err != nil {
			contract.LogWarn(fmt.Sprintf("Dataset reload failed (%s)", evt.Name), err)
			return
		}
		w.notify()
	})
	w.v.WatchConfig()

	<-ctx.Done()
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	return nil
}

func (w *Watcher) reload() error {
	ds, err := LoadFile(w.path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.snapshot = Snapshot{
		Version:  w.snapshot.Version + 1,
		LoadedAt: time.Now(),
		Dataset:  ds,
	}
	w.mu.Unlock()
	return nil
}

func (w *Watcher) notify() {
	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return
	}
	ds := w.snapshot.Dataset
	listeners := append([]ChangeListener(nil), w.listeners...)
	w.mu.RUnlock()
	for _, fn := range listeners {
		fn(ds)
	}
}
