package transformer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileNotFound = errors.New("input file not found")
	ErrParse        = errors.New("malformed JSON")
	ErrConversion   = errors.New("value is not an integer")
	ErrSchema       = errors.New("unexpected field shape")
	ErrMissingField = errors.New("missing pass-through field")
)

// FieldError locates a failure inside the document. Entry is -1 when the
// failure concerns the field as a whole.
type FieldError struct {
	Field string
	Entry int
	Path  []string
	Err   error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "field %q", e.Field)
	if e.Entry >= 0 {
		fmt.Fprintf(&b, " entry %d", e.Entry)
	}
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " key %q", strings.Join(e.Path, "."))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, entry int, err error, path ...string) *FieldError {
	return &FieldError{Field: field, Entry: entry, Path: path, Err: err}
}
