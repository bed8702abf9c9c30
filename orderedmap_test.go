package cmaptables

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	om := NewOrderedMap[string, int]()
	om.Set("c", 1)
	om.Set("a", 2)
	om.Set("b", 3)
	om.Set("a", 4) // replace keeps position

	if diff := cmp.Diff([]string{"c", "a", "b"}, om.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := om.Get("a"); !ok || v != 4 {
		t.Errorf("Expected a=4, got %d (present=%v)", v, ok)
	}

	var visited []string
	om.Iterate(func(k string, v int) {
		visited = append(visited, k)
	})
	if diff := cmp.Diff(om.Keys(), visited); diff != "" {
		t.Errorf("Iterate order mismatch (-want +got):\n%s", diff)
	}

	om.Delete("a")
	if om.Len() != 2 {
		t.Errorf("Expected 2 entries after delete, got %d", om.Len())
	}
	if _, ok := om.Get("a"); ok {
		t.Error("Deleted key should be absent")
	}
	if diff := cmp.Diff([]string{"c", "b"}, om.Keys()); diff != "" {
		t.Errorf("Keys() after delete mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedMapSetNew(t *testing.T) {
	om := NewOrderedMap[string, int]()
	if !om.SetNew("x", 1) {
		t.Fatal("First SetNew should add the key")
	}
	if om.SetNew("x", 2) {
		t.Error("Second SetNew should report an existing key")
	}
	if v, _ := om.Get("x"); v != 1 {
		t.Errorf("SetNew must not overwrite, got %d", v)
	}
}

func TestOrderedMapConcurrentSet(t *testing.T) {
	om := NewOrderedMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			om.Set(i, i*i)
		}(i)
	}
	wg.Wait()
	if om.Len() != 64 {
		t.Errorf("Expected 64 entries, got %d", om.Len())
	}
}
