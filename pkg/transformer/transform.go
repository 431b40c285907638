package transformer

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/tidwall/gjson"

	"github.com/Layr-Labs/vector-transformer/pkg/types"
)

// Validator inspects one group of converted integers: a flat entry, or one
// inner mapping of a nested/concat entry.
type Validator interface {
	Validate(field string, values []*big.Int) error
}

type Options struct {
	// Shapes defaults to types.DefaultShapeTable().
	Shapes *types.ShapeTable

	// RequirePassThrough fails the transform when a pass-through field of the
	// table is absent from the document. When false the field is skipped.
	RequirePassThrough bool

	Validators []Validator

	Logger *slog.Logger
}

// TransformedField is one output field. Which of Raw, Flat or Nested is set
// depends on Shape.
type TransformedField struct {
	Name  string
	Shape types.Shape

	Raw    []byte         // passthrough
	Flat   [][]*big.Int   // flat, concat
	Nested [][][]*big.Int // nested
}

// Result is the transformed document, in output order.
type Result struct {
	Fields []TransformedField
}

// Names returns the output field names in order.
func (r *Result) Names() []string {
	out := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		out = append(out, f.Name)
	}
	return out
}

// Get returns the named output field, if present.
func (r *Result) Get(name string) (TransformedField, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return TransformedField{}, false
}

// Transform rewrites every decimal-string value of doc as an integer,
// following the shape assigned to each field. Pass-through fields are
// emitted first, then the remaining fields in document order.
func Transform(doc *Document, opts Options) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrSchema)
	}
	shapes := opts.Shapes
	if shapes == nil {
		shapes = types.DefaultShapeTable()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	out := &Result{Fields: make([]TransformedField, 0, len(doc.Fields))}

	for _, f := range doc.Fields {
		if shapes.Lookup(f.Name) != types.ShapePassThrough {
			continue
		}
		logger.Debug("Passing field through", "field", f.Name)
		out.Fields = append(out.Fields, TransformedField{
			Name:  f.Name,
			Shape: types.ShapePassThrough,
			Raw:   []byte(f.Value.Raw),
		})
	}
	for _, name := range shapes.PassThroughFields() {
		if _, ok := doc.Get(name); ok {
			continue
		}
		if opts.RequirePassThrough {
			return nil, fieldErr(name, -1, ErrMissingField)
		}
		logger.Debug("Pass-through field absent, skipping", "field", name)
	}

	for _, f := range doc.Fields {
		shape := shapes.Lookup(f.Name)
		if shape == types.ShapePassThrough {
			continue
		}
		logger.Debug("Processing field", "field", f.Name, "shape", shape)

		tf, err := transformField(f, shape, opts.Validators)
		if err != nil {
			return nil, err
		}
		out.Fields = append(out.Fields, tf)
	}
	return out, nil
}

func transformField(f Field, shape types.Shape, validators []Validator) (TransformedField, error) {
	tf := TransformedField{Name: f.Name, Shape: shape}
	if !f.Value.IsArray() {
		return tf, fieldErr(f.Name, -1, fmt.Errorf("%w: expected array of entries, got %s", ErrSchema, describe(f.Value)))
	}
	entries := f.Value.Array()

	switch shape {
	case types.ShapeFlat:
		tf.Flat = make([][]*big.Int, 0, len(entries))
		for i, entry := range entries {
			values, err := flatEntry(f.Name, i, entry)
			if err != nil {
				return tf, err
			}
			if err := validate(validators, f.Name, i, "", values); err != nil {
				return tf, err
			}
			tf.Flat = append(tf.Flat, values)
		}
	case types.ShapeNested, types.ShapeConcat:
		if shape == types.ShapeNested {
			tf.Nested = make([][][]*big.Int, 0, len(entries))
		} else {
			tf.Flat = make([][]*big.Int, 0, len(entries))
		}
		for i, entry := range entries {
			groups, keys, err := nestedEntry(f.Name, i, entry)
			if err != nil {
				return tf, err
			}
			for g := range groups {
				if err := validate(validators, f.Name, i, keys[g], groups[g]); err != nil {
					return tf, err
				}
			}
			if shape == types.ShapeNested {
				tf.Nested = append(tf.Nested, groups)
				continue
			}
			joined := make([]*big.Int, 0)
			for _, g := range groups {
				joined = append(joined, g...)
			}
			tf.Flat = append(tf.Flat, joined)
		}
	default:
		return tf, fieldErr(f.Name, -1, fmt.Errorf("%w: unsupported shape %q", ErrSchema, shape))
	}
	return tf, nil
}

func flatEntry(field string, i int, entry gjson.Result) ([]*big.Int, error) {
	if !entry.IsObject() {
		return nil, fieldErr(field, i, fmt.Errorf("%w: expected object entry, got %s", ErrSchema, describe(entry)))
	}
	members := objectMembers(entry)
	values := make([]*big.Int, 0, len(members))
	for _, m := range members {
		n, err := ParseInteger(m.value)
		if err != nil {
			return nil, fieldErr(field, i, err, m.key)
		}
		values = append(values, n)
	}
	return values, nil
}

func nestedEntry(field string, i int, entry gjson.Result) ([][]*big.Int, []string, error) {
	if !entry.IsObject() {
		return nil, nil, fieldErr(field, i, fmt.Errorf("%w: expected object entry, got %s", ErrSchema, describe(entry)))
	}
	members := objectMembers(entry)
	groups := make([][]*big.Int, 0, len(members))
	keys := make([]string, 0, len(members))
	for _, m := range members {
		if !m.value.IsObject() {
			return nil, nil, fieldErr(field, i, fmt.Errorf("%w: expected object, got %s", ErrSchema, describe(m.value)), m.key)
		}
		inner := objectMembers(m.value)
		values := make([]*big.Int, 0, len(inner))
		for _, im := range inner {
			n, err := ParseInteger(im.value)
			if err != nil {
				return nil, nil, fieldErr(field, i, err, m.key, im.key)
			}
			values = append(values, n)
		}
		groups = append(groups, values)
		keys = append(keys, m.key)
	}
	return groups, keys, nil
}

func validate(validators []Validator, field string, i int, key string, values []*big.Int) error {
	for _, v := range validators {
		if err := v.Validate(field, values); err != nil {
			if key == "" {
				return fieldErr(field, i, err)
			}
			return fieldErr(field, i, err, key)
		}
	}
	return nil
}

// ParseInteger converts a JSON string holding a base-10 integer, or an
// integral JSON number, to a big.Int.
func ParseInteger(v gjson.Result) (*big.Int, error) {
	var s string
	switch v.Type {
	case gjson.String:
		s = v.Str
	case gjson.Number:
		s = v.Raw
	case gjson.JSON:
		return nil, fmt.Errorf("%w: expected integer, got %s", ErrSchema, describe(v))
	default:
		return nil, fmt.Errorf("%w: got %s", ErrConversion, describe(v))
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConversion, s)
	}
	return n, nil
}
