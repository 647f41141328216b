package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v, want 2, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("a", 2)

	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[int, int](8)

	for i := 0; i < 20; i++ {
		c.Set(i, i)
	}

	if c.Len() > 8 {
		t.Errorf("Len() = %d, want <= 8", c.Len())
	}

	// The most recently inserted key must survive eviction.
	if _, ok := c.Get(19); !ok {
		t.Error("most recent entry was evicted")
	}
}

func TestCacheLRUOrder(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}

	// Touch 0 so it becomes the most recently used.
	c.Get(0)

	// Push past the limit; 0 should survive the batch eviction.
	c.Set(4, 4)
	c.Set(5, 5)

	if _, ok := c.Get(0); !ok {
		t.Error("recently used entry was evicted")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		c.Set(i, i)
	}
	if c.Len() != 100 {
		t.Errorf("Len() = %d, want 100 with no limit", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("%d-%d", g, i%16)
				c.Set(key, i)
				c.Get(key)
				c.GetOrCreate(key, func() int { return i })
			}
		}(g)
	}
	wg.Wait()
}
