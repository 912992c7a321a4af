package product

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DeleteGuard is the two-step delete across HTTP requests: Mark hands out
// a ticket, Confirm redeems it once.
type DeleteGuard struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	pending map[string]pendingDelete
}

type pendingDelete struct {
	productID string
	expires   time.Time
}

func NewDeleteGuard(ttl time.Duration) *DeleteGuard {
	return &DeleteGuard{
		ttl:     ttl,
		now:     time.Now,
		pending: make(map[string]pendingDelete),
	}
}

func (g *DeleteGuard) Mark(productID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweep()
	ticket := uuid.NewString()
	g.pending[ticket] = pendingDelete{productID: productID, expires: g.now().Add(g.ttl)}
	return ticket
}

// Confirm consumes the ticket and returns the product it was issued for.
func (g *DeleteGuard) Confirm(ticket string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pending[ticket]
	delete(g.pending, ticket)
	if !ok || g.now().After(p.expires) {
		return "", ErrTicket
	}
	return p.productID, nil
}

func (g *DeleteGuard) Cancel(ticket string) {
	g.mu.Lock()
	delete(g.pending, ticket)
	g.mu.Unlock()
}

// sweep drops expired tickets; g.mu must be held.
func (g *DeleteGuard) sweep() {
	now := g.now()
	for t, p := range g.pending {
		if now.After(p.expires) {
			delete(g.pending, t)
		}
	}
}
