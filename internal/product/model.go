package product

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxImages is the number of image slots a product carries.
const MaxImages = 4

type Category string

const (
	CategoryMen   Category = "Men"
	CategoryWomen Category = "Women"
	CategoryBoy   Category = "Boy"
	CategoryKids  Category = "Kids"

	DefaultCategory = CategoryMen
)

var categories = []Category{CategoryMen, CategoryWomen, CategoryBoy, CategoryKids}

// Categories lists the accepted categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type AgeUnit string

const (
	AgeYears  AgeUnit = "Years"
	AgeMonths AgeUnit = "Months"

	DefaultAgeUnit = AgeYears
)

func ParseAgeUnit(s string) (AgeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "years", "year":
		return AgeYears, nil
	case "months", "month":
		return AgeMonths, nil
	}
	return "", ErrInvalidAgeUnit
}

// Product is a catalog entry as returned by the catalog API.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Prices are decimals so that discount comparisons are exact.
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Category      Category         `json:"category"`
	SubCategory   string           `json:"subCategory"`
	Color         string           `json:"color,omitempty"`
	Sizes         []string         `json:"sizes"`
	Ages          []string         `json:"ages"`
	Bestseller    bool             `json:"bestseller"`
	Count         int              `json:"count"`
	Images        []string         `json:"images,omitempty"`
}

// InStock reports whether the product belongs to the available partition.
func (p Product) InStock() bool { return p.Count > 0 }

// Clone returns a copy that shares no slices or pointers with p.
func (p Product) Clone() Product {
	cp := p
	cp.Sizes = append([]string(nil), p.Sizes...)
	cp.Ages = append([]string(nil), p.Ages...)
	cp.Images = append([]string(nil), p.Images...)
	if p.DiscountPrice != nil {
		d := *p.DiscountPrice
		cp.DiscountPrice = &d
	}
	return cp
}

// Image is an opaque upload blob.
type Image struct {
	Name string
	Data []byte
}

// Submission is a validated draft, ready to be sent to the catalog API.
type Submission struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	Category      Category
	SubCategory   string
	Color         string
	Sizes         []string
	Ages          []string
	Bestseller    bool
	Count         int
	// Images is indexed by slot; nil slots are not sent.
	Images [MaxImages]*Image
}
