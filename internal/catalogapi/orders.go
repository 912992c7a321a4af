package catalogapi

import (
	"context"

	"github.com/MikeMC777/catalog-admin/internal/order"
)

type ordersResponse struct {
	Envelope
	Orders []wireOrder `json:"orders"`
}

// ListOrders returns the orders in server order; sorting is the board's job.
func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	var out ordersResponse
	if err := c.postJSON(ctx, "order.list", "/order/list", struct{}{}, &out); err != nil {
		return nil, err
	}
	list := make([]order.Order, 0, len(out.Orders))
	for _, w := range out.Orders {
		list = append(list, w.toDomain())
	}
	return list, nil
}

func (c *Client) UpdateStatus(ctx context.Context, orderID string, status order.Status) error {
	var out Envelope
	return c.postJSON(ctx, "order.status", "/order/status",
		orderStatusRequest{OrderID: orderID, Status: string(status)}, &out)
}

func (c *Client) UpdatePayment(ctx context.Context, orderID string, done bool) error {
	var out Envelope
	return c.postJSON(ctx, "order.payment", "/order/updatePaymentStatus",
		paymentStatusRequest{OrderID: orderID, Payment: done}, &out)
}
