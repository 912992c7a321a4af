package product

import (
	"fmt"
	"strings"
)

// Field selects which attribute the catalog search looks at.
type Field string

const (
	FieldName        Field = "name"
	FieldCategory    Field = "category"
	FieldSubCategory Field = "subCategory"
	FieldColor       Field = "color"
	FieldPrice       Field = "price"
	FieldAges        Field = "ages"
	FieldSizes       Field = "sizes"
)

var fields = []Field{FieldName, FieldCategory, FieldSubCategory, FieldColor, FieldPrice, FieldAges, FieldSizes}

// ParseField accepts a field name case-insensitively; blank means name.
func ParseField(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FieldName, nil
	}
	for _, f := range fields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown search field %q", s)
}

type Filter struct {
	Field Field
	Query string
}

// Match is a case-insensitive substring test on the field's text form.
func (f Filter) Match(p Product) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(fieldText(p, f.Field)), q)
}

func fieldText(p Product, f Field) string {
	switch f {
	case FieldCategory:
		return string(p.Category)
	case FieldSubCategory:
		return p.SubCategory
	case FieldColor:
		return p.Color
	case FieldPrice:
		return p.Price.String()
	case FieldAges:
		return strings.Join(p.Ages, " ")
	case FieldSizes:
		return strings.Join(p.Sizes, " ")
	default:
		return p.Name
	}
}
