package menus

import (
	"errors"
	"sync"
	"testing"
)

func testSurface(t *testing.T, rows int) *Surface {
	t.Helper()
	s, err := NewSurface("test", ShapeGeneric9xN, rows)
	if err != nil {
		t.Fatalf("NewSurface(%d rows): %v", rows, err)
	}
	return s
}

func TestSetClickAllSlots(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 3)

	clicked := -1
	h := func(_ *Surface, slot int) { clicked = slot }
	if err := r.SetClick(s, h); err != nil {
		t.Fatalf("SetClick: %v", err)
	}

	for i := 0; i < s.Size(); i++ {
		got := r.ResolveClick(s, i)
		if got == nil {
			t.Fatalf("ResolveClick(%d) = nil, want handler", i)
		}
		got(s, i)
		if clicked != i {
			t.Errorf("handler for slot %d recorded %d", i, clicked)
		}
	}
}

func TestSetClickSpecificSlots(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 3)

	h := func(*Surface, int) {}
	if err := r.SetClick(s, h, 2, 5); err != nil {
		t.Fatalf("SetClick: %v", err)
	}

	if r.ResolveClick(s, 2) == nil || r.ResolveClick(s, 5) == nil {
		t.Error("slots 2 and 5 should be bound")
	}
	if r.ResolveClick(s, 0) != nil {
		t.Error("slot 0 should be unbound")
	}
}

func TestSetClickOutOfRange(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 1)

	err := r.SetClick(s, func(*Surface, int) {}, 3, 99)
	if !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("SetClick(3, 99) err = %v, want ErrSlotOutOfRange", err)
	}
	// a failed call must not bind anything, including the in-range slot
	if r.ResolveClick(s, 3) != nil {
		t.Error("slot 3 bound despite failed SetClick")
	}
	if r.Registered(s) {
		t.Error("entry created despite failed SetClick")
	}
}

func TestSetClickLastWriteWins(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 3)

	got := ""
	h1 := func(*Surface, int) { got = "h1" }
	h2 := func(*Surface, int) { got = "h2" }

	if err := r.SetClick(s, h1, 2, 5); err != nil {
		t.Fatal(err)
	}
	if err := r.SetClick(s, h2, 2); err != nil {
		t.Fatal(err)
	}

	r.ResolveClick(s, 2)(s, 2)
	if got != "h2" {
		t.Errorf("slot 2 dispatched %q, want h2", got)
	}
	r.ResolveClick(s, 5)(s, 5)
	if got != "h1" {
		t.Errorf("slot 5 dispatched %q, want h1", got)
	}
}

// A repeat SetClick must mutate the existing table, not allocate a fresh one
// that discards earlier bindings.
func TestSetClickPreservesOtherSlots(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 3)

	h := func(*Surface, int) {}
	if err := r.SetClick(s, h, 0); err != nil {
		t.Fatal(err)
	}
	if err := r.SetClick(s, h, 1); err != nil {
		t.Fatal(err)
	}

	if r.ResolveClick(s, 0) == nil {
		t.Error("binding for slot 0 lost after second SetClick")
	}
	if r.ResolveClick(s, 1) == nil {
		t.Error("binding for slot 1 missing")
	}
}

func TestSurfaceIsolation(t *testing.T) {
	r := NewRegistry()
	a := testSurface(t, 3)
	b := testSurface(t, 3)

	if err := r.SetClick(a, func(*Surface, int) {}, 4); err != nil {
		t.Fatal(err)
	}

	if r.ResolveClick(b, 4) != nil {
		t.Error("binding on surface a leaked to structurally identical surface b")
	}
}

func TestDragAndCloseReplace(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 1)

	got := ""
	r.SetDrag(s, func(*Surface, []int) { got = "d1" })
	r.SetDrag(s, func(*Surface, []int) { got = "d2" })
	r.ResolveDrag(s)(s, nil)
	if got != "d2" {
		t.Errorf("drag dispatched %q, want d2", got)
	}

	r.SetClose(s, func(*Surface) { got = "c1" })
	r.SetClose(s, func(*Surface) { got = "c2" })
	r.ResolveClose(s)(s)
	if got != "c2" {
		t.Errorf("close dispatched %q, want c2", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 1)

	if r.ResolveClick(s, 0) != nil {
		t.Error("ResolveClick on unregistered surface should be nil")
	}
	if r.ResolveDrag(s) != nil {
		t.Error("ResolveDrag on unregistered surface should be nil")
	}
	if r.ResolveClose(s) != nil {
		t.Error("ResolveClose on unregistered surface should be nil")
	}
	// out-of-range resolution is a soft miss, not an error
	if err := r.SetClick(s, func(*Surface, int) {}); err != nil {
		t.Fatal(err)
	}
	if r.ResolveClick(s, -1) != nil || r.ResolveClick(s, 999) != nil {
		t.Error("out-of-range ResolveClick should be nil")
	}
}

func TestRelease(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 2)

	if err := r.SetClick(s, func(*Surface, int) {}); err != nil {
		t.Fatal(err)
	}
	r.SetDrag(s, func(*Surface, []int) {})
	r.SetClose(s, func(*Surface) {})

	r.Release(s)

	for i := 0; i < s.Size(); i++ {
		if r.ResolveClick(s, i) != nil {
			t.Fatalf("slot %d still bound after Release", i)
		}
	}
	if r.ResolveDrag(s) != nil || r.ResolveClose(s) != nil {
		t.Error("drag/close still bound after Release")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Release, want 0", r.Len())
	}

	// idempotent, and safe for never-registered surfaces
	r.Release(s)
	r.Release(testSurface(t, 1))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	s := testSurface(t, 6)
	h := func(*Surface, int) {}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch g % 4 {
				case 0:
					_ = r.SetClick(s, h, i%s.Size())
				case 1:
					r.ResolveClick(s, i%s.Size())
				case 2:
					r.SetDrag(s, func(*Surface, []int) {})
					r.ResolveDrag(s)
				case 3:
					r.SetClose(s, func(*Surface) {})
					r.ResolveClose(s)
				}
			}
		}(g)
	}
	wg.Wait()

	if !r.Registered(s) {
		t.Error("surface should remain registered after concurrent churn")
	}
}
