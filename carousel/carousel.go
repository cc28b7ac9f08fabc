// Package carousel is a circular cursor over a fixed, ordered sequence
package carousel

import "sync"

// Carousel holds a fixed sequence and a current index
// next/prev wrap at both ends; the sequence never changes after New
type Carousel[T any] struct {
	mu    sync.RWMutex
	items []T
	index int
}

// New creates a carousel positioned on the first item
func New[T any](items ...T) *Carousel[T] {
	c := &Carousel[T]{items: make([]T, len(items))}
	copy(c.items, items)
	return c
}

// Len returns the number of items
func (c *Carousel[T]) Len() int {
	return len(c.items)
}

// Index returns the current position
func (c *Carousel[T]) Index() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Current returns the item under the cursor; false when empty
func (c *Carousel[T]) Current() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[c.index], true
}

// Items returns a copy of the sequence
func (c *Carousel[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Next advances one position, wrapping from last to first
func (c *Carousel[T]) Next() int {
	return c.step(1)
}

// Prev retreats one position, wrapping from first to last
func (c *Carousel[T]) Prev() int {
	return c.step(-1)
}

func (c *Carousel[T]) step(delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	if n == 0 {
		return 0
	}
	c.index = ((c.index+delta)%n + n) % n
	return c.index
}

// Select jumps to i; out-of-range leaves the cursor unchanged and returns false
func (c *Carousel[T]) Select(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.index = i
	return true
}
