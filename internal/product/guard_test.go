package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteGuard_SingleUse(t *testing.T) {
	g := NewDeleteGuard(time.Minute)
	ticket := g.Mark("p1")
	other := g.Mark("p1")
	assert.NotEqual(t, ticket, other)

	id, err := g.Confirm(ticket)
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	_, err = g.Confirm(ticket)
	assert.ErrorIs(t, err, ErrTicket)

	g.Cancel(other)
	_, err = g.Confirm(other)
	assert.ErrorIs(t, err, ErrTicket)

	_, err = g.Confirm("made-up")
	assert.ErrorIs(t, err, ErrTicket)
}

func TestDeleteGuard_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g := NewDeleteGuard(time.Minute)
	g.now = func() time.Time { return now }

	stale := g.Mark("old")
	fresh := g.Mark("new")

	now = now.Add(2 * time.Minute)
	_, err := g.Confirm(stale)
	assert.ErrorIs(t, err, ErrTicket)

	// Mark sweeps whatever has expired.
	g.Mark("newer")
	assert.NotContains(t, g.pending, fresh)
	assert.Len(t, g.pending, 1)
}
