package cellz

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

type cachedPerson struct {
	Name string
	Age  int
}

func TestCachedRecord(t *testing.T) {
	t.Run("Same Record Per Type", func(t *testing.T) {
		a, err := RecordOf[cachedPerson](nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := RecordOf[cachedPerson](nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != b {
			t.Error("expected the cached record to be reused")
		}
	})

	t.Run("Keyed By Registry", func(t *testing.T) {
		a, _ := RecordOf[cachedPerson](nil)
		b, err := RecordOf[cachedPerson](NewRegistry())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a == b {
			t.Error("expected a separate record per registry")
		}
	})

	t.Run("Failures Are Not Cached", func(t *testing.T) {
		typ := reflect.TypeFor[int]()
		if _, err := cachedRecord(typ, nil); !errors.Is(err, ErrNotStruct) {
			t.Fatalf("expected ErrNotStruct, got %v", err)
		}
		cacheMu.RLock()
		_, exists := recordCache[recordKey{typ: typ}]
		cacheMu.RUnlock()
		if exists {
			t.Error("expected failed description to stay out of the cache")
		}
	})

	t.Run("MultipleConcurrentAccess", func(t *testing.T) {
		reg := NewRegistry()
		const numGoroutines = 100
		var wg sync.WaitGroup
		results := make([]*Record, numGoroutines)

		for i := 0; i < numGoroutines; i++ {
			wg.Add(1)
			go func(index int) {
				defer wg.Done()
				r, err := RecordOf[cachedPerson](reg)
				if err != nil {
					t.Errorf("goroutine %d: %v", index, err)
				}
				results[index] = r
			}(i)
		}

		wg.Wait()

		for i, r := range results {
			if r != results[0] {
				t.Errorf("goroutine %d got a different record", i)
			}
		}
		if got := results[0].Columns(); len(got) != 2 || got[0] != "name" || got[1] != "age" {
			t.Errorf("unexpected columns %v", got)
		}
	})
}
