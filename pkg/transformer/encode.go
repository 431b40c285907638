package transformer

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/Layr-Labs/vector-transformer/pkg/types"
)

// MarshalJSON encodes the result as a JSON object with keys in output order.
// Integers are written as bare numbers of arbitrary size.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, f := range r.Fields {
		raw, err := f.valueJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", f.Name, err)
		}
		out, err = sjson.SetRawBytes(out, gjson.Escape(f.Name), raw)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", f.Name, err)
		}
	}
	return out, nil
}

// Encode returns the newline-terminated JSON encoding of r, pretty-printed
// with two-space indentation when indent is set.
func (r *Result) Encode(indent bool) ([]byte, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if indent {
		return pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "  "}), nil
	}
	return append(data, '\n'), nil
}

func (f TransformedField) valueJSON() ([]byte, error) {
	switch f.Shape {
	case types.ShapePassThrough:
		if len(f.Raw) == 0 {
			return []byte("null"), nil
		}
		return f.Raw, nil
	case types.ShapeFlat, types.ShapeConcat:
		if f.Flat == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(f.Flat)
	case types.ShapeNested:
		if f.Nested == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(f.Nested)
	default:
		return nil, fmt.Errorf("%w: unsupported shape %q", ErrSchema, f.Shape)
	}
}
