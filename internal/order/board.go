package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// StatusAll disables the status filter.
const StatusAll = "All"

// Gateway is the part of the catalog API the board talks to.
type Gateway interface {
	ListOrders(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
	UpdatePayment(ctx context.Context, orderID string, done bool) error
}

// SortOrders orders by status rank, then newest first.
func SortOrders(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		ri, rj := orders[i].Status.Rank(), orders[j].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		return orders[i].Date.After(orders[j].Date)
	})
}

type Filter struct {
	// Status is a Status value or StatusAll.
	Status string
	Search string
}

func (f Filter) Match(o Order) bool {
	if f.Status != "" && f.Status != StatusAll && string(o.Status) != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	return q == "" || strings.Contains(strings.ToLower(o.Address.FullName()), q)
}

// Board is the order management screen. It is not safe for concurrent use.
type Board struct {
	api      Gateway
	snapshot []Order
	filter   Filter
	expanded string
}

func NewBoard(api Gateway) *Board {
	return &Board{api: api, filter: Filter{Status: StatusAll}}
}

// Refresh fetches and sorts the orders. On error the previous snapshot is
// kept.
func (b *Board) Refresh(ctx context.Context) error {
	orders, err := b.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	SortOrders(orders)
	b.snapshot = orders
	return nil
}

func (b *Board) Snapshot() []Order { return b.snapshot }

func (b *Board) Filter() Filter { return b.filter }

// SetFilter validates the status before applying it.
func (b *Board) SetFilter(status, search string) error {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, StatusAll) {
		status = StatusAll
	} else {
		st, err := ParseStatus(status)
		if err != nil {
			return err
		}
		status = string(st)
	}
	b.filter = Filter{Status: status, Search: search}
	return nil
}

// Visible returns the sorted snapshot narrowed by the filter.
func (b *Board) Visible() []Order {
	out := make([]Order, 0, len(b.snapshot))
	for _, o := range b.snapshot {
		if b.filter.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// SetStatus rejects unknown statuses without calling the API, then
// re-fetches on success.
func (b *Board) SetStatus(ctx context.Context, orderID, status string) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	if err := b.api.UpdateStatus(ctx, orderID, st); err != nil {
		return err
	}
	if err := b.Refresh(ctx); err != nil {
		return fmt.Errorf("%w after status update: %w", ErrRefresh, err)
	}
	return nil
}

func (b *Board) SetPayment(ctx context.Context, orderID string, done bool) error {
	if err := b.api.UpdatePayment(ctx, orderID, done); err != nil {
		return err
	}
	if err := b.Refresh(ctx); err != nil {
		return fmt.Errorf("%w after payment update: %w", ErrRefresh, err)
	}
	return nil
}

// Toggle expands a row in compact view, collapsing the previous one.
func (b *Board) Toggle(orderID string) {
	if b.expanded == orderID {
		b.expanded = ""
		return
	}
	b.expanded = orderID
}

func (b *Board) Expanded(orderID string) bool {
	return orderID != "" && b.expanded == orderID
}
