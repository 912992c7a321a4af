package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	orders       []Order
	listCalls    int
	statusCalls  int
	paymentCalls int
	err          error
	listErrAfter int
}

func (s *stubGateway) ListOrders(context.Context) ([]Order, error) {
	s.listCalls++
	if s.listErrAfter > 0 && s.listCalls > s.listErrAfter {
		return nil, errors.New("down")
	}
	return append([]Order(nil), s.orders...), nil
}

func (s *stubGateway) UpdateStatus(_ context.Context, id string, st Status) error {
	s.statusCalls++
	if s.err != nil {
		return s.err
	}
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = st
		}
	}
	return nil
}

func (s *stubGateway) UpdatePayment(_ context.Context, id string, done bool) error {
	s.paymentCalls++
	if s.err != nil {
		return s.err
	}
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Payment = done
		}
	}
	return nil
}

var t0 = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func mkOrder(id string, st Status, at time.Time, first, last string) Order {
	return Order{ID: id, Status: st, Date: at, Address: Address{FirstName: first, LastName: last}}
}

func sampleOrders() []Order {
	return []Order{
		mkOrder("a", StatusDelivered, t0, "Ana", "Ruiz"),
		mkOrder("b", StatusPlaced, t0, "Luis", "Paz"),
		mkOrder("c", "Lost in space", t0.Add(time.Hour), "Mia", "Lopez"),
		mkOrder("d", StatusPlaced, t0.Add(time.Hour), "Ana", "Soto"),
		mkOrder("e", StatusCancelled, t0, "Eva", "Mar"),
		mkOrder("f", StatusPacking, t0, "Tom", "Anaya"),
	}
}

func orderIDs(list []Order) []string {
	out := []string{}
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestStatusRank(t *testing.T) {
	for i, st := range Statuses() {
		assert.Equal(t, i+1, st.Rank(), st)
		assert.True(t, st.Valid())
	}
	assert.Equal(t, 7, Status("Returned").Rank())
	assert.False(t, Status("Returned").Valid())

	st, err := ParseStatus(" out FOR delivery ")
	require.NoError(t, err)
	assert.Equal(t, StatusOutForDelivery, st)
	_, err = ParseStatus("Lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestSortOrders(t *testing.T) {
	list := sampleOrders()
	SortOrders(list)
	assert.Equal(t, []string{"d", "b", "f", "a", "e", "c"}, orderIDs(list))

	// equal rank and date keep their relative order
	same := []Order{mkOrder("x", StatusPacking, t0, "", ""), mkOrder("y", StatusPacking, t0, "", "")}
	SortOrders(same)
	assert.Equal(t, []string{"x", "y"}, orderIDs(same))
}

func TestBoard_Filter(t *testing.T) {
	b := NewBoard(&stubGateway{orders: sampleOrders()})
	require.NoError(t, b.Refresh(context.Background()))
	assert.Equal(t, []string{"d", "b", "f", "a", "e", "c"}, orderIDs(b.Visible()))

	require.NoError(t, b.SetFilter("order placed", ""))
	assert.Equal(t, []string{"d", "b"}, orderIDs(b.Visible()))

	require.NoError(t, b.SetFilter("All", "ANA"))
	assert.Equal(t, []string{"d", "f", "a"}, orderIDs(b.Visible()), "substring of first + last")

	require.NoError(t, b.SetFilter("", "a r"))
	assert.Equal(t, []string{"a"}, orderIDs(b.Visible()))

	assert.ErrorIs(t, b.SetFilter("Lost", ""), ErrUnknownStatus)
	assert.Equal(t, Filter{Status: StatusAll, Search: "a r"}, b.Filter())
}

func TestBoard_SetStatus(t *testing.T) {
	api := &stubGateway{orders: sampleOrders()}
	b := NewBoard(api)
	require.NoError(t, b.Refresh(context.Background()))

	require.NoError(t, b.SetStatus(context.Background(), "a", "packing"))
	assert.Equal(t, 1, api.statusCalls)
	assert.Equal(t, 2, api.listCalls)
	assert.Equal(t, []string{"d", "b", "a", "f", "e", "c"}, orderIDs(b.Snapshot()))

	err := b.SetStatus(context.Background(), "a", "Teleported")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, 1, api.statusCalls, "no request for an unknown status")

	api.err = errors.New("order not found")
	err = b.SetStatus(context.Background(), "zz", "Shipped")
	assert.EqualError(t, err, "order not found")
	assert.Equal(t, 2, api.listCalls, "no re-fetch after a failed update")
}

func TestBoard_SetPayment(t *testing.T) {
	api := &stubGateway{orders: sampleOrders(), listErrAfter: 1}
	b := NewBoard(api)
	require.NoError(t, b.Refresh(context.Background()))

	err := b.SetPayment(context.Background(), "b", true)
	assert.ErrorIs(t, err, ErrRefresh)
	assert.True(t, api.orders[1].Payment)
	assert.Len(t, b.Snapshot(), 6, "old snapshot kept")
	assert.Equal(t, PaymentDone, api.orders[1].PaymentLabel())
	assert.Equal(t, PaymentPending, api.orders[0].PaymentLabel())
}

func TestBoard_Toggle(t *testing.T) {
	b := NewBoard(&stubGateway{})
	assert.False(t, b.Expanded("a"))

	b.Toggle("a")
	assert.True(t, b.Expanded("a"))
	b.Toggle("b")
	assert.False(t, b.Expanded("a"))
	assert.True(t, b.Expanded("b"))
	b.Toggle("b")
	assert.False(t, b.Expanded("b"))
	assert.False(t, b.Expanded(""))
}

func TestParsePayment(t *testing.T) {
	for in, want := range map[string]bool{"Done": true, "true": true, " PAID ": true, "Pending": false, "false": false, "unpaid": false} {
		got, err := ParsePayment(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePayment("maybe")
	assert.Error(t, err)
}

func TestSortOrders_ShippedByRecency(t *testing.T) {
	d1, d2 := t0.Add(48*time.Hour), t0
	list := []Order{
		mkOrder("s2", StatusShipped, d2, "", ""),
		mkOrder("p", StatusPlaced, t0, "", ""),
		mkOrder("s1", StatusShipped, d1, "", ""),
	}
	SortOrders(list)
	assert.Equal(t, []string{"p", "s1", "s2"}, orderIDs(list))
}
