package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownStatus = errors.New("unknown order status")
	// ErrRefresh marks an update that went through but whose re-fetch did not.
	ErrRefresh = errors.New("order refresh failed")
)

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPlaced         Status = "Order Placed"
	StatusPacking        Status = "Packing"
	StatusShipped        Status = "Shipped"
	StatusOutForDelivery Status = "Out for delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// statuses is ordered by rank.
var statuses = []Status{
	StatusPlaced,
	StatusPacking,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Rank is the board precedence, 1 for Order Placed through 6 for
// Cancelled. Unknown statuses sort after Cancelled.
func (s Status) Rank() int {
	for i, st := range statuses {
		if st == s {
			return i + 1
		}
	}
	return len(statuses) + 1
}

func (s Status) Valid() bool { return s.Rank() <= len(statuses) }

// ParseStatus matches case-insensitively and returns the canonical value.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range statuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Zipcode   string `json:"zipcode"`
	Phone     string `json:"phone"`
}

func (a Address) FullName() string { return a.FirstName + " " + a.LastName }

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type Order struct {
	ID            string          `json:"id"`
	Address       Address         `json:"address"`
	Items         []Item          `json:"items"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Payment       bool            `json:"payment"`
	Status        Status          `json:"status"`
	Date          time.Time       `json:"date"`
}

// PaymentLabel is how the board shows the payment flag.
func (o Order) PaymentLabel() string {
	if o.Payment {
		return PaymentDone
	}
	return PaymentPending
}

const (
	PaymentDone    = "Done"
	PaymentPending = "Pending"
)

// ParsePayment accepts the board labels as well as boolean text.
func ParsePayment(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "done", "true", "paid":
		return true, nil
	case "pending", "false", "unpaid":
		return false, nil
	}
	return false, fmt.Errorf("unknown payment status %q", s)
}
