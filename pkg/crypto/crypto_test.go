package crypto

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestNewRangeValidator(t *testing.T) {
	v, err := NewRangeValidator(FieldCheckNone)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewRangeValidator(FieldCheckBN254Fr)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 1, v.Modulus.Cmp(big.NewInt(0)))

	_, err = NewRangeValidator("bls12-381")
	require.Error(t, err)
}

func TestRangeValidator_Bounds(t *testing.T) {
	v, err := NewRangeValidator(FieldCheckBN254Fp)
	require.NoError(t, err)

	require.NoError(t, v.Validate("svdw", ints(0, 1, 12345)))

	pMinusOne := new(big.Int).Sub(fp.Modulus(), big.NewInt(1))
	require.NoError(t, v.Validate("svdw", []*big.Int{pMinusOne}))

	err = v.Validate("svdw", []*big.Int{fp.Modulus()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	err = v.Validate("svdw", ints(-1))
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestG1Validator(t *testing.T) {
	v := NewG1Validator("G1_signatures")

	// Generator of BN254 G1.
	require.NoError(t, v.Validate("G1_signatures", ints(1, 2)))
	// Point at infinity as encoded by the EVM precompiles.
	require.NoError(t, v.Validate("G1_signatures", ints(0, 0)))

	err := v.Validate("G1_signatures", ints(1, 3))
	assert.True(t, errors.Is(err, ErrInvalidPoint))

	err = v.Validate("G1_signatures", ints(1, 2, 3))
	assert.True(t, errors.Is(err, ErrInvalidPoint))

	err = v.Validate("G1_signatures", []*big.Int{fp.Modulus(), big.NewInt(2)})
	assert.True(t, errors.Is(err, ErrInvalidPoint))

	// Fields that are not listed are ignored.
	require.NoError(t, v.Validate("svdw", ints(1, 3)))
}

func TestKeccak256Hex(t *testing.T) {
	assert.Equal(t,
		"0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		Keccak256Hex(nil))
	assert.Len(t, Keccak256Hex([]byte(`{"svdw":[[10]]}`)), 66)
}
