package types

import (
	"fmt"
	"sort"
)

// PrivateKeysField is the reserved field carried through untouched.
const PrivateKeysField = "private_keys"

// Shape selects how the entries of a top-level field are rewritten.
type Shape string

const (
	// ShapePassThrough copies the field value verbatim.
	ShapePassThrough Shape = "passthrough"
	// ShapeFlat turns each {key: "n"} entry into [n, ...].
	ShapeFlat Shape = "flat"
	// ShapeNested turns each {key: {k: "n"}} entry into [[n, ...], ...].
	ShapeNested Shape = "nested"
	// ShapeConcat is ShapeNested with the inner sequences of an entry joined.
	ShapeConcat Shape = "concat"
)

func ParseShape(s string) (Shape, error) {
	switch sh := Shape(s); sh {
	case ShapePassThrough, ShapeFlat, ShapeNested, ShapeConcat:
		return sh, nil
	default:
		return "", fmt.Errorf("invalid shape %q (expected passthrough|flat|nested|concat)", s)
	}
}

// ShapeTable is the static field name -> Shape lookup. Fields not listed use Default.
type ShapeTable struct {
	Fields  map[string]Shape
	Default Shape
}

// DefaultShapeTable matches the layout of the BN254 reference vectors.
func DefaultShapeTable() *ShapeTable {
	return &ShapeTable{
		Fields: map[string]Shape{
			PrivateKeysField: ShapePassThrough,
			"G1_signatures":  ShapeFlat,
			"svdw":           ShapeFlat,
		},
		Default: ShapeNested,
	}
}

func (t *ShapeTable) Lookup(field string) Shape {
	if t == nil {
		return ShapeNested
	}
	if s, ok := t.Fields[field]; ok {
		return s
	}
	if t.Default == "" {
		return ShapeNested
	}
	return t.Default
}

// Set assigns shape to every named field, overriding earlier entries.
func (t *ShapeTable) Set(shape Shape, fields ...string) {
	if t.Fields == nil {
		t.Fields = make(map[string]Shape)
	}
	for _, f := range fields {
		t.Fields[f] = shape
	}
}

// PassThroughFields returns the pass-through field names in sorted order.
func (t *ShapeTable) PassThroughFields() []string {
	if t == nil {
		return nil
	}
	var out []string
	for name, s := range t.Fields {
		if s == ShapePassThrough {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy so callers can override entries without touching the source table.
func (t *ShapeTable) Clone() *ShapeTable {
	if t == nil {
		return DefaultShapeTable()
	}
	cp := &ShapeTable{
		Fields:  make(map[string]Shape, len(t.Fields)),
		Default: t.Default,
	}
	for k, v := range t.Fields {
		cp.Fields[k] = v
	}
	return cp
}
