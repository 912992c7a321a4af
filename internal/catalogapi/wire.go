package catalogapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/catalog-admin/internal/order"
	"github.com/MikeMC777/catalog-admin/internal/product"
)

// The catalog API is loosely typed: counts come as numbers or numeric
// strings, prices as numbers, numeric strings or "", images as a URL or a
// list of URLs, dates as epoch milliseconds or RFC 3339 text. The types below
// absorb that before values reach the domain packages. A bad scalar in one
// record decodes to its zero value; it never fails the whole list.

// flexInt rounds positive fractions up so that 0.5 in stock is still in
// stock. Text that is not a number reads as 0.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(bytes.TrimSpace(b)), `"`))
	*n = 0
	if v, err := strconv.Atoi(s); err == nil {
		*n = flexInt(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f > 0 {
		f = math.Ceil(f)
	}
	*n = flexInt(int(f))
	return nil
}

type flexBool bool

func (v *flexBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		*v = true
	default:
		*v = false
	}
	return nil
}

// flexDecimal is a price that may be missing. Valid is false for null, ""
// and text that is not a number.
type flexDecimal struct {
	Value decimal.Decimal
	Valid bool
}

func (d *flexDecimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(bytes.TrimSpace(b)), `"`))
	*d = flexDecimal{}
	if s == "" || s == "null" {
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	*d = flexDecimal{Value: v, Valid: true}
	return nil
}

// OrNil maps missing and zero to nil: a zero discount is no discount.
func (d flexDecimal) OrNil() *decimal.Decimal {
	if !d.Valid || d.Value.IsZero() {
		return nil
	}
	v := d.Value
	return &v
}

type urlList []string

func (u *urlList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*u = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*u = nil
		} else {
			*u = urlList{s}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*u = list
	return nil
}

type flexTime time.Time

func (t *flexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = flexTime(time.Time{})
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*t = flexTime(time.UnixMilli(ms).UTC())
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	*t = flexTime(parsed)
	return nil
}

type wireProduct struct {
	ID              string      `json:"_id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Price           flexDecimal `json:"price"`
	DiscountedPrice flexDecimal `json:"discountedPrice"`
	Category        string      `json:"category"`
	SubCategory     string      `json:"subCategory"`
	Color           string      `json:"color"`
	Sizes           []string    `json:"sizes"`
	Ages            []string    `json:"ages"`
	Bestseller      flexBool    `json:"bestseller"`
	Count           flexInt     `json:"count"`
	Image           urlList     `json:"image"`
}

func (w wireProduct) toDomain() product.Product {
	p := product.Product{
		ID:            w.ID,
		Name:          w.Name,
		Description:   w.Description,
		Price:         w.Price.Value,
		DiscountPrice: w.DiscountedPrice.OrNil(),
		Category:      product.Category(w.Category),
		SubCategory:   w.SubCategory,
		Color:         w.Color,
		Sizes:         w.Sizes,
		Ages:          w.Ages,
		Bestseller:    bool(w.Bestseller),
		Count:         int(w.Count),
		Images:        []string(w.Image),
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Ages == nil {
		p.Ages = []string{}
	}
	return p
}

type wireAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Zipcode   string `json:"zipcode"`
	Phone     string `json:"phone"`
}

type wireItem struct {
	Name     string  `json:"name"`
	Quantity flexInt `json:"quantity"`
	Size     string  `json:"size"`
}

type wireOrder struct {
	ID            string          `json:"_id"`
	Address       wireAddress     `json:"address"`
	Items         []wireItem      `json:"items"`
	Amount        flexDecimal     `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Payment       flexBool        `json:"payment"`
	Status        string          `json:"status"`
	Date          flexTime        `json:"date"`
}

func (w wireOrder) toDomain() order.Order {
	o := order.Order{
		ID:            w.ID,
		Address:       order.Address(w.Address),
		Amount:        w.Amount.Value,
		PaymentMethod: w.PaymentMethod,
		Payment:       bool(w.Payment),
		Status:        order.Status(w.Status),
		Date:          time.Time(w.Date),
		Items:         make([]order.Item, 0, len(w.Items)),
	}
	for _, it := range w.Items {
		o.Items = append(o.Items, order.Item{Name: it.Name, Quantity: int(it.Quantity), Size: it.Size})
	}
	return o
}

// Request DTOs. Lists and booleans are encoded as strings here and nowhere
// else, because that is what the catalog API expects on these routes.

type removeProductRequest struct {
	ID string `json:"id"`
}

type updateProductRequest struct {
	ProductID       string       `json:"productId"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           json.Number  `json:"price"`
	DiscountedPrice *json.Number `json:"discountedPrice"`
	Category        string       `json:"category"`
	SubCategory     string       `json:"subCategory"`
	Color           string       `json:"color"`
	Sizes           string       `json:"sizes"`
	Bestseller      string       `json:"bestseller"`
	Ages            string       `json:"ages"`
	Count           int          `json:"count"`
}

func newUpdateProductRequest(p product.Product) (updateProductRequest, error) {
	sizes, err := encodeList(p.Sizes)
	if err != nil {
		return updateProductRequest{}, err
	}
	ages, err := encodeList(p.Ages)
	if err != nil {
		return updateProductRequest{}, err
	}
	req := updateProductRequest{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       json.Number(p.Price.String()),
		Category:    string(p.Category),
		SubCategory: p.SubCategory,
		Color:       p.Color,
		Sizes:       sizes,
		Bestseller:  strconv.FormatBool(p.Bestseller),
		Ages:        ages,
		Count:       p.Count,
	}
	if p.DiscountPrice != nil {
		d := json.Number(p.DiscountPrice.String())
		req.DiscountedPrice = &d
	}
	return req, nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type orderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type paymentStatusRequest struct {
	OrderID string `json:"orderId"`
	Payment bool   `json:"payment"`
}
