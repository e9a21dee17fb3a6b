package reconcile

import (
	"path/filepath"
	"sync"
)

// locks serializes reconciliations per working copy across the process.
var locks sync.Map // map[string]*sync.Mutex

// lockFor returns the mutex guarding the working copy at dir.
func lockFor(dir string) *sync.Mutex {
	key := dir
	if abs, err := filepath.Abs(dir); err == nil {
		key = abs
	}
	key = filepath.Clean(key)

	mu, _ := locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
