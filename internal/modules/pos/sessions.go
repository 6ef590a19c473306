package pos

import (
	"sync"

	"github.com/google/uuid"
)

// cart is one session's product_id → quantity mapping. order preserves
// insertion order so cart listings are stable across calls. Each cart has
// its own lock; the catalog file lock is what serializes stock mutation.
type cart struct {
	mu    sync.Mutex
	items map[string]int
	order []string
}

func newCart() *cart {
	return &cart{items: make(map[string]int)}
}

func (c *cart) set(productID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(productID, qty)
}

func (c *cart) add(productID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(productID, c.items[productID]+qty)
}

func (c *cart) setLocked(productID string, qty int) {
	if _, ok := c.items[productID]; !ok {
		c.order = append(c.order, productID)
	}
	c.items[productID] = qty
}

func (c *cart) remove(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[productID]; !ok {
		return false
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *cart) quantity(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[productID]
}

func (c *cart) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]int)
	c.order = nil
}

// entries returns (productID, quantity) pairs in insertion order.
func (c *cart) entries() []cartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]cartEntry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cartEntry{productID: id, quantity: c.items[id]})
	}
	return out
}

// snapshot copies the cart contents for a batch stock decrement.
func (c *cart) snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

type cartEntry struct {
	productID string
	quantity  int
}

// sessions tracks the in-memory carts of active cashier sessions. A cart
// exists from the first operation naming its session ID until logout.
type sessions struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*cart
}

func newSessions() *sessions {
	return &sessions{carts: make(map[uuid.UUID]*cart)}
}

func (s *sessions) get(id uuid.UUID) *cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		c = newCart()
		s.carts[id] = c
	}
	return c
}

func (s *sessions) close(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}
