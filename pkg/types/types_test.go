package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	for _, s := range []string{"passthrough", "flat", "nested", "concat"} {
		shape, err := ParseShape(s)
		require.NoError(t, err)
		assert.Equal(t, Shape(s), shape)
	}
	_, err := ParseShape("Flat")
	require.Error(t, err)
}

func TestDefaultShapeTable(t *testing.T) {
	table := DefaultShapeTable()
	assert.Equal(t, ShapePassThrough, table.Lookup(PrivateKeysField))
	assert.Equal(t, ShapeFlat, table.Lookup("G1_signatures"))
	assert.Equal(t, ShapeFlat, table.Lookup("svdw"))
	assert.Equal(t, ShapeNested, table.Lookup("hash_to_field"))
	assert.Equal(t, []string{PrivateKeysField}, table.PassThroughFields())
}

func TestShapeTable_CloneAndSet(t *testing.T) {
	base := DefaultShapeTable()
	cp := base.Clone()
	cp.Set(ShapeConcat, "svdw", "extra")
	cp.Default = ShapeFlat

	assert.Equal(t, ShapeConcat, cp.Lookup("svdw"))
	assert.Equal(t, ShapeFlat, cp.Lookup("unknown"))
	assert.Equal(t, ShapeFlat, base.Lookup("svdw"))
	assert.Equal(t, ShapeNested, base.Lookup("unknown"))

	var empty ShapeTable
	assert.Equal(t, ShapeNested, empty.Lookup("anything"))
	empty.Set(ShapeFlat, "a")
	assert.Equal(t, ShapeFlat, empty.Lookup("a"))
}
