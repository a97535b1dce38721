// Package runstore persists computed chart runs in SQL databases.
package runstore

import (
	"sync"

	"github.com/huangsam/dietradar/internal/contract"
)

// StoreManager owns the run store used by chart commands.
type StoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// GetRunStore returns the run store, or nil when none is configured.
func (mgr *StoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
