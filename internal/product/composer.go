package product

import (
	"context"
	"sort"
	"strings"
)

// Adder is the part of the catalog API the composer talks to.
type Adder interface {
	AddProduct(ctx context.Context, s Submission) (string, error)
	Subcategories(ctx context.Context) ([]string, error)
}

// Composer owns one draft. It is not safe for concurrent use.
type Composer struct {
	Draft Draft
	api   Adder
}

func NewComposer(api Adder) *Composer {
	return &Composer{Draft: NewDraft(), api: api}
}

// Submit validates the draft and sends it. The draft is reset only when
// the catalog API accepted it.
func (c *Composer) Submit(ctx context.Context) (string, error) {
	sub, err := c.Draft.Validate()
	if err != nil {
		return "", err
	}
	msg, err := c.api.AddProduct(ctx, sub)
	if err != nil {
		return "", err
	}
	c.Draft = NewDraft()
	return msg, nil
}

// Suggestions returns the known subcategories starting with prefix.
func (c *Composer) Suggestions(ctx context.Context, prefix string) ([]string, error) {
	all, err := c.api.Subcategories(ctx)
	if err != nil {
		return nil, err
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	out := make([]string, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, s := range all {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] || !strings.HasPrefix(key, prefix) {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(s))
	}
	sort.Strings(out)
	return out, nil
}
