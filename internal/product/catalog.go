package product

import (
	"context"
	"fmt"
	"strings"
)

// Catalog is the part of the catalog API the browser talks to.
type Catalog interface {
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, p Product) (string, error)
	RemoveProduct(ctx context.Context, id string) (string, error)
}

// Browser holds the last fetched snapshot of the catalog together with the
// list screen state: search filter, edit session and delete candidate.
// It is not safe for concurrent use.
type Browser struct {
	api       Catalog
	snapshot  []Product
	filter    Filter
	edit      *EditSession
	candidate *Product
}

func NewBrowser(api Catalog) *Browser {
	return &Browser{api: api, filter: Filter{Field: FieldName}}
}

// Refresh replaces the snapshot. On error the previous snapshot is kept.
func (b *Browser) Refresh(ctx context.Context) error {
	list, err := b.api.ListProducts(ctx)
	if err != nil {
		return err
	}
	b.snapshot = list
	return nil
}

func (b *Browser) Snapshot() []Product { return b.snapshot }

func (b *Browser) Filter() Filter { return b.filter }

func (b *Browser) SetFilter(field, query string) error {
	f, err := ParseField(field)
	if err != nil {
		return err
	}
	b.filter = Filter{Field: f, Query: query}
	return nil
}

// Available lists in-stock products matching the filter.
func (b *Browser) Available() []Product {
	return b.partition(true)
}

// OutOfStock lists products with no stock matching the filter.
func (b *Browser) OutOfStock() []Product {
	return b.partition(false)
}

func (b *Browser) partition(inStock bool) []Product {
	out := make([]Product, 0, len(b.snapshot))
	for _, p := range b.snapshot {
		if p.InStock() == inStock && b.filter.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (b *Browser) find(id string) (Product, bool) {
	for _, p := range b.snapshot {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// BeginEdit opens an edit session on a copy of the product.
func (b *Browser) BeginEdit(id string) (*EditSession, error) {
	p, ok := b.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	b.edit = &EditSession{Product: p.Clone(), AgeUnit: DefaultAgeUnit}
	return b.edit, nil
}

func (b *Browser) Editing() *EditSession { return b.edit }

func (b *Browser) CancelEdit() { b.edit = nil }

// SubmitEdit sends the edited record and re-fetches the catalog. The
// session stays open when the update is rejected. A failed re-fetch after
// an accepted update is reported wrapped in ErrRefresh.
func (b *Browser) SubmitEdit(ctx context.Context) (string, error) {
	if b.edit == nil {
		return "", ErrNoEdit
	}
	p := b.edit.Product
	if p.DiscountPrice != nil && p.DiscountPrice.GreaterThanOrEqual(p.Price) {
		return "", ErrInvalidDiscount
	}
	msg, err := b.api.UpdateProduct(ctx, p)
	if err != nil {
		return "", err
	}
	b.edit = nil
	if err := b.Refresh(ctx); err != nil {
		return msg, fmt.Errorf("%w after update: %w", ErrRefresh, err)
	}
	return msg, nil
}

// MarkForDeletion only records the candidate; nothing is sent.
func (b *Browser) MarkForDeletion(id string) error {
	p, ok := b.find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	b.candidate = &p
	return nil
}

func (b *Browser) Candidate() (Product, bool) {
	if b.candidate == nil {
		return Product{}, false
	}
	return *b.candidate, true
}

func (b *Browser) CancelDeletion() { b.candidate = nil }

// ConfirmDeletion removes the candidate and re-fetches. The candidate is
// cleared whatever the outcome.
func (b *Browser) ConfirmDeletion(ctx context.Context) (string, error) {
	if b.candidate == nil {
		return "", ErrNoCandidate
	}
	id := b.candidate.ID
	b.candidate = nil

	msg, err := b.api.RemoveProduct(ctx, id)
	if err != nil {
		return "", err
	}
	if err := b.Refresh(ctx); err != nil {
		return msg, fmt.Errorf("%w after remove: %w", ErrRefresh, err)
	}
	return msg, nil
}

// EditSession is a detached copy of a product under edit.
type EditSession struct {
	Product Product
	AgeUnit AgeUnit
}

func (e *EditSession) SetName(s string)        { e.Product.Name = s }
func (e *EditSession) SetDescription(s string) { e.Product.Description = s }
func (e *EditSession) SetSubCategory(s string) { e.Product.SubCategory = strings.TrimSpace(s) }
func (e *EditSession) SetColor(s string)       { e.Product.Color = strings.TrimSpace(s) }
func (e *EditSession) SetBestseller(v bool)    { e.Product.Bestseller = v }

func (e *EditSession) SetCategory(s string) error {
	c, err := ParseCategory(s)
	if err != nil {
		return invalid("category", err.Error())
	}
	e.Product.Category = c
	return nil
}

func (e *EditSession) SetPrice(raw string) error {
	v, err := requiredAmount("price", raw)
	if err != nil {
		return err
	}
	e.Product.Price = v
	return nil
}

// SetDiscountPrice clears the discount for blank or zero input.
func (e *EditSession) SetDiscountPrice(raw string) error {
	v, err := optionalAmount("discountPrice", raw)
	if err != nil {
		return err
	}
	e.Product.DiscountPrice = v
	return nil
}

// SetCount accepts zero, which moves the product out of stock.
func (e *EditSession) SetCount(n int) error {
	if n < 0 {
		return invalid("count", "count must not be negative")
	}
	e.Product.Count = n
	return nil
}

func (e *EditSession) AddSize(input string) error {
	sizes, err := addSize(e.Product.Sizes, input)
	e.Product.Sizes = sizes
	return err
}

func (e *EditSession) RemoveSize(size string) { e.Product.Sizes = remove(e.Product.Sizes, size) }

func (e *EditSession) SetAgeUnit(s string) error {
	u, err := ParseAgeUnit(s)
	if err != nil {
		return err
	}
	e.AgeUnit = u
	return nil
}

func (e *EditSession) AddAge(input string) error {
	unit := e.AgeUnit
	if unit == "" {
		unit = DefaultAgeUnit
	}
	ages, err := addAge(e.Product.Ages, input, unit)
	e.Product.Ages = ages
	return err
}

func (e *EditSession) RemoveAge(age string) { e.Product.Ages = remove(e.Product.Ages, age) }

