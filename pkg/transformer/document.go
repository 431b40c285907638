package transformer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Field is one top-level key of a test-vector document with its undecoded value.
type Field struct {
	Name  string
	Value gjson.Result
}

// Document is a parsed test-vector file. Fields keep their source order.
type Document struct {
	Fields []Field
}

// Get returns the named field, if present.
func (d *Document) Get(name string) (Field, bool) {
	if d == nil {
		return Field{}, false
	}
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the field names in document order.
func (d *Document) Names() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		out = append(out, f.Name)
	}
	return out
}

// LoadFile reads and parses the document at path. The file is closed before returning.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return Parse(data)
}

// Parse decodes a test-vector document. The root must be a JSON object.
// A repeated key keeps its first position and takes the last value.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: document is not valid JSON", ErrParse)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrParse)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: document root must be an object, got %s", ErrSchema, describe(root))
	}

	doc := &Document{}
	for _, m := range objectMembers(root) {
		if m.key == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrSchema)
		}
		doc.Fields = append(doc.Fields, Field{Name: m.key, Value: m.value})
	}
	return doc, nil
}

type member struct {
	key   string
	value gjson.Result
}

// objectMembers lists the members of a JSON object in source order, collapsing
// repeated keys the way a map decoder would.
func objectMembers(obj gjson.Result) []member {
	var out []member
	index := make(map[string]int)
	obj.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if i, ok := index[k]; ok {
			out[i].value = value
			return true
		}
		index[k] = len(out)
		out = append(out, member{key: k, value: value})
		return true
	})
	return out
}

func describe(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	}
	switch r.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	default:
		return "unknown"
	}
}
