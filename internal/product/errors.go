package product

import "errors"

type ErrorKind string

const (
	MissingField    ErrorKind = "MissingField"
	InvalidField    ErrorKind = "InvalidField"
	MissingVariant  ErrorKind = "MissingVariant"
	InvalidDiscount ErrorKind = "InvalidDiscount"

	// Chip entry kinds.
	InvalidSize    ErrorKind = "InvalidSize"
	DuplicateSize  ErrorKind = "DuplicateSize"
	MalformedAge   ErrorKind = "MalformedAge"
	DuplicateAge   ErrorKind = "DuplicateAge"
	InvalidAgeUnit ErrorKind = "InvalidAgeUnit"
)

// ValidationError is detected locally and always blocks the request.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func missing(field string) *ValidationError {
	return &ValidationError{Kind: MissingField, Field: field, Message: "please fill in all required fields: " + field}
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Kind: InvalidField, Field: field, Message: msg}
}

var (
	ErrMissingVariant  = &ValidationError{Kind: MissingVariant, Field: "sizes", Message: "please add at least one size or age"}
	ErrInvalidDiscount = &ValidationError{Kind: InvalidDiscount, Field: "discountPrice", Message: "discounted price must be less than the product price"}

	ErrEmptySize      = &ValidationError{Kind: InvalidSize, Field: "sizes", Message: "size must not be empty"}
	ErrDuplicateSize  = &ValidationError{Kind: DuplicateSize, Field: "sizes", Message: "size already added"}
	ErrMalformedAge   = &ValidationError{Kind: MalformedAge, Field: "ages", Message: "please enter a valid age (e.g. 3 or 3-4)"}
	ErrDuplicateAge   = &ValidationError{Kind: DuplicateAge, Field: "ages", Message: "age already added"}
	ErrInvalidAgeUnit = &ValidationError{Kind: InvalidAgeUnit, Field: "ageUnit", Message: "age unit must be Years or Months"}
)

var (
	ErrNotFound    = errors.New("product not found")
	ErrNoEdit      = errors.New("no product is being edited")
	ErrNoCandidate = errors.New("no product marked for deletion")
	ErrTicket      = errors.New("delete confirmation expired or unknown")
	ErrImageSlot   = errors.New("image slot must be between 1 and 4")

	// ErrRefresh marks a mutation that went through but whose re-fetch did not.
	ErrRefresh = errors.New("catalog refresh failed")
)
