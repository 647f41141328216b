package textmeasure

import (
	"sync"
	"testing"
)

func TestRegistryCreateGetDestroy(t *testing.T) {
	r := NewRegistry()

	h := r.Create()
	if h == 0 {
		t.Fatal("Create() = 0, zero handle must never be issued")
	}
	p := r.Get(h)
	if p == nil {
		t.Fatal("Get() = nil for live handle")
	}
	if p.TextScaleX != 1 {
		t.Error("Create() did not register a default paint")
	}

	r.Destroy(h)
	if r.Get(h) != nil {
		t.Error("Get() != nil after Destroy")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	p := NewPaint()
	p.TextSize = 42

	h := r.Register(p)
	if got := r.Get(h); got != p {
		t.Errorf("Get() = %p, want the registered paint %p", got, p)
	}
}

func TestRegistryHandlesNotReused(t *testing.T) {
	r := NewRegistry()
	h1 := r.Create()
	r.Destroy(h1)
	h2 := r.Create()
	if h2 == h1 {
		t.Errorf("handle %d reused after destroy", h1)
	}
}

func TestRegistryUnknownHandle(t *testing.T) {
	r := NewRegistry()
	if r.Get(12345) != nil {
		t.Error("Get(unknown) != nil")
	}
	r.Destroy(12345) // must not panic
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h := r.Create()
				if r.Get(h) == nil {
					t.Errorf("Get() = nil for freshly created handle %d", h)
					return
				}
				r.Destroy(h)
			}
		}()
	}
	wg.Wait()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after all destroys, want 0", r.Len())
	}
}
