package product

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Draft holds the composer form. Numeric fields keep the raw text the
// admin typed so that an invalid value can be shown back unchanged.
type Draft struct {
	Name          string
	Description   string
	Price         string
	DiscountPrice string
	Category      Category
	SubCategory   string
	Color         string
	Sizes         []string
	Ages          []string
	AgeUnit       AgeUnit
	Bestseller    bool
	Count         string
	Images        [MaxImages]*Image
}

func NewDraft() Draft {
	return Draft{
		Category: DefaultCategory,
		AgeUnit:  DefaultAgeUnit,
		Sizes:    []string{},
		Ages:     []string{},
	}
}

func (d *Draft) AddSize(input string) error {
	sizes, err := addSize(d.Sizes, input)
	d.Sizes = sizes
	return err
}

func (d *Draft) RemoveSize(size string) { d.Sizes = remove(d.Sizes, size) }

func (d *Draft) AddAge(input string) error {
	unit := d.AgeUnit
	if unit == "" {
		unit = DefaultAgeUnit
	}
	ages, err := addAge(d.Ages, input, unit)
	d.Ages = ages
	return err
}

func (d *Draft) RemoveAge(age string) { d.Ages = remove(d.Ages, age) }

func (d *Draft) SetAgeUnit(s string) error {
	u, err := ParseAgeUnit(s)
	if err != nil {
		return err
	}
	d.AgeUnit = u
	return nil
}

// SetImage fills slot 1..MaxImages; a nil image clears the slot.
func (d *Draft) SetImage(slot int, img *Image) error {
	if slot < 1 || slot > MaxImages {
		return ErrImageSlot
	}
	d.Images[slot-1] = img
	return nil
}

// Validate reports blank required fields first, then missing variants, then
// malformed values and the discount, and returns the typed submission.
func (d Draft) Validate() (Submission, error) {
	var s Submission

	s.Name = strings.TrimSpace(d.Name)
	switch {
	case s.Name == "":
		return Submission{}, missing("name")
	case blankAmount(d.Price):
		return Submission{}, missing("price")
	case blankCount(d.Count):
		return Submission{}, missing("count")
	}

	if len(d.Sizes) == 0 && len(d.Ages) == 0 {
		return Submission{}, ErrMissingVariant
	}

	price, err := requiredAmount("price", d.Price)
	if err != nil {
		return Submission{}, err
	}
	s.Price = price

	count, err := requiredCount(d.Count)
	if err != nil {
		return Submission{}, err
	}
	s.Count = count

	cat := d.Category
	if cat == "" {
		cat = DefaultCategory
	}
	if s.Category, err = ParseCategory(string(cat)); err != nil {
		return Submission{}, invalid("category", err.Error())
	}

	discount, err := optionalAmount("discountPrice", d.DiscountPrice)
	if err != nil {
		return Submission{}, err
	}
	if discount != nil && discount.GreaterThanOrEqual(price) {
		return Submission{}, ErrInvalidDiscount
	}
	s.DiscountPrice = discount

	s.Description = d.Description
	s.SubCategory = strings.TrimSpace(d.SubCategory)
	s.Color = strings.TrimSpace(d.Color)
	s.Sizes = append([]string{}, d.Sizes...)
	s.Ages = append([]string{}, d.Ages...)
	s.Bestseller = d.Bestseller
	s.Images = d.Images
	return s, nil
}

// blankAmount is true for "" and any spelling of zero; text that is not a
// number is left for requiredAmount to reject.
func blankAmount(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	v, err := decimal.NewFromString(raw)
	return err == nil && v.IsZero()
}

func blankCount(raw string) bool {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	return raw == "" || (err == nil && n == 0)
}

func requiredAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, missing(field)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, invalid(field, field+" must be a number")
	}
	if v.IsZero() {
		return decimal.Zero, missing(field)
	}
	if v.IsNegative() {
		return decimal.Zero, invalid(field, field+" must be positive")
	}
	return v, nil
}

// optionalAmount treats blank and zero as "not set".
func optionalAmount(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, invalid(field, field+" must be a number")
	}
	if v.IsZero() {
		return nil, nil
	}
	if v.IsNegative() {
		return nil, invalid(field, field+" must be positive")
	}
	return &v, nil
}

func requiredCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, missing("count")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("count", "count must be a whole number")
	}
	if n == 0 {
		return 0, missing("count")
	}
	if n < 0 {
		return 0, invalid("count", "count must not be negative")
	}
	return n, nil
}
