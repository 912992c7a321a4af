package main

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/catalog-admin/internal/order"
	"github.com/MikeMC777/catalog-admin/internal/product"
)

// Notification is the body of every error and of plain confirmations.
// swagger:model Notification
type Notification struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Product Added"`
}

// CatalogView is the product list split by stock.
// swagger:model CatalogView
type CatalogView struct {
	Field      product.Field     `json:"field" example:"name"`
	Query      string            `json:"q,omitempty" example:"shirt"`
	Available  []product.Product `json:"available"`
	OutOfStock []product.Product `json:"outOfStock"`
}

// EditProductRequest patches a product. Absent fields keep their value;
// a discountPrice of 0 removes the discount.
// swagger:model EditProductRequest
type EditProductRequest struct {
	Name          *string      `json:"name,omitempty" example:"Linen shirt"`
	Description   *string      `json:"description,omitempty"`
	Price         *json.Number `json:"price,omitempty" example:"49.90"`
	DiscountPrice *json.Number `json:"discountPrice,omitempty" example:"39.90"`
	Category      *string      `json:"category,omitempty" example:"Men"`
	SubCategory   *string      `json:"subCategory,omitempty" example:"Shirts"`
	Color         *string      `json:"color,omitempty" example:"white"`
	Bestseller    *bool        `json:"bestseller,omitempty"`
	Count         *int         `json:"count,omitempty" example:"12"`
	AgeUnit       string       `json:"ageUnit,omitempty" example:"Years"`
	AddSizes      []string     `json:"addSizes,omitempty" example:"XL"`
	RemoveSizes   []string     `json:"removeSizes,omitempty"`
	AddAges       []string     `json:"addAges,omitempty" example:"3-4"`
	RemoveAges    []string     `json:"removeAges,omitempty" example:"5 Years"`
}

// EditProductResponse carries the record as it was sent.
// swagger:model EditProductResponse
type EditProductResponse struct {
	Notification
	Product product.Product `json:"product"`
}

// DeleteTicket is handed out by the first step of a delete.
// swagger:model DeleteTicket
type DeleteTicket struct {
	Ticket  string          `json:"ticket" example:"9f6c1d1e-0b7a-4d8e-9b7e-1f3f8f0c2a11"`
	Product product.Product `json:"product"`
	Expires time.Time       `json:"expires"`
}

// SubcategoryList answers the composer's suggestion box.
// swagger:model SubcategoryList
type SubcategoryList struct {
	Prefix      string   `json:"prefix,omitempty" example:"sh"`
	Suggestions []string `json:"suggestions"`
}

// OrderRow is one line of the order board. Detail is filled in the full
// view and for the expanded row of the compact view.
// swagger:model OrderRow
type OrderRow struct {
	ID        string          `json:"id"`
	Customer  string          `json:"customer" example:"Ana Ruiz"`
	Status    order.Status    `json:"status" example:"Packing"`
	Payment   string          `json:"payment" example:"Pending"`
	Method    string          `json:"paymentMethod" example:"COD"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	ItemCount int             `json:"itemCount" example:"2"`
	Expanded  bool            `json:"expanded"`
	Detail    *order.Order    `json:"detail,omitempty"`
}

// OrderBoardView is the filtered, sorted board.
// swagger:model OrderBoardView
type OrderBoardView struct {
	Status   string         `json:"status" example:"All"`
	Query    string         `json:"q,omitempty"`
	Compact  bool           `json:"compact"`
	Statuses []order.Status `json:"statuses"`
	Orders   []OrderRow     `json:"orders"`
}

// StatusRequest sets the fulfillment status of an order.
// swagger:model StatusRequest
type StatusRequest struct {
	Status string `json:"status" example:"Shipped"`
}

// PaymentRequest takes "Done"/"Pending" or a boolean.
// swagger:model PaymentRequest
type PaymentRequest struct {
	Payment json.RawMessage `json:"payment" swaggertype:"string" example:"Done"`
}

// CatalogResult confirms a catalog mutation with the re-fetched list.
// swagger:model CatalogResult
type CatalogResult struct {
	Notification
	Catalog CatalogView `json:"catalog"`
}

// BoardResult confirms an order mutation with the re-fetched board.
// swagger:model BoardResult
type BoardResult struct {
	Notification
	Orders []OrderRow `json:"orders"`
}
