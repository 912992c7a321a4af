package product

import (
	"regexp"
	"slices"
	"strings"
)

var (
	bareAge   = regexp.MustCompile(`^\d+$`)
	rangeHalf = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

func addSize(sizes []string, input string) ([]string, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return sizes, ErrEmptySize
	}
	if slices.Contains(sizes, s) {
		return sizes, ErrDuplicateSize
	}
	return append(sizes, s), nil
}

// parseAge accepts "n" or "a-b"; both halves of a range only need to be
// plain non-negative decimals, a > b is let through.
func parseAge(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if bareAge.MatchString(s) {
		return s, true
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return "", false
	}
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if !rangeHalf.MatchString(lo) || !rangeHalf.MatchString(hi) {
		return "", false
	}
	return lo + "-" + hi, true
}

func addAge(ages []string, input string, unit AgeUnit) ([]string, error) {
	age, ok := parseAge(input)
	if !ok {
		return ages, ErrMalformedAge
	}
	token := age + " " + string(unit)
	if slices.Contains(ages, token) {
		return ages, ErrDuplicateAge
	}
	return append(ages, token), nil
}

func remove(set []string, v string) []string {
	return slices.DeleteFunc(set, func(s string) bool { return s == v })
}
