package cellz

import (
	"reflect"
	"sync"
)

type recordKey struct {
	typ reflect.Type
	reg *Registry
}

var (
	// recordCache stores record descriptions to avoid repeated reflection.
	recordCache = make(map[recordKey]*Record)
	// cacheMu protects concurrent access to the record cache.
	cacheMu sync.RWMutex
)

// cachedRecord returns the cached description of t for reg, describing it
// on first use. Failures are not cached. This function is safe for
// concurrent use.
func cachedRecord(t reflect.Type, reg *Registry) (*Record, error) {
	key := recordKey{typ: t, reg: reg}

	cacheMu.RLock()
	if r, ok := recordCache[key]; ok {
		cacheMu.RUnlock()
		return r, nil
	}
	cacheMu.RUnlock()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	// Double-check after acquiring write lock
	if r, ok := recordCache[key]; ok {
		return r, nil
	}

	r, err := NewRecord(t, reg)
	if err != nil {
		return nil, err
	}
	recordCache[key] = r
	return r, nil
}
