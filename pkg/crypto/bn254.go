package crypto

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	FieldCheckNone    = "none"
	FieldCheckBN254Fp = "bn254-fp"
	FieldCheckBN254Fr = "bn254-fr"
)

var (
	ErrOutOfRange   = errors.New("value outside field range")
	ErrInvalidPoint = errors.New("invalid BN254 G1 point")
)

// RangeValidator rejects integers outside [0, Modulus).
type RangeValidator struct {
	Name    string
	Modulus *big.Int
}

// NewRangeValidator returns the validator for a --field-check value, or nil for "none".
func NewRangeValidator(check string) (*RangeValidator, error) {
	switch check {
	case "", FieldCheckNone:
		return nil, nil
	case FieldCheckBN254Fp:
		return &RangeValidator{Name: check, Modulus: fp.Modulus()}, nil
	case FieldCheckBN254Fr:
		return &RangeValidator{Name: check, Modulus: fr.Modulus()}, nil
	default:
		return nil, fmt.Errorf("unknown field check %q (expected none|bn254-fp|bn254-fr)", check)
	}
}

func (v *RangeValidator) Validate(_ string, values []*big.Int) error {
	for i, n := range values {
		if n.Sign() < 0 || n.Cmp(v.Modulus) >= 0 {
			return fmt.Errorf("%w: value %d (%s) not in %s", ErrOutOfRange, i, n.String(), v.Name)
		}
	}
	return nil
}

// G1Validator checks that every group of the named fields is an affine
// (x, y) point on the BN254 G1 curve. (0, 0) is accepted as the point at infinity.
type G1Validator struct {
	fields map[string]struct{}
}

func NewG1Validator(fields ...string) *G1Validator {
	v := &G1Validator{fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		v.fields[f] = struct{}{}
	}
	return v
}

func (v *G1Validator) Validate(field string, values []*big.Int) error {
	if _, ok := v.fields[field]; !ok {
		return nil
	}
	if len(values) != 2 {
		return fmt.Errorf("%w: expected 2 coordinates, got %d", ErrInvalidPoint, len(values))
	}
	p := fp.Modulus()
	for i, c := range values {
		if c.Sign() < 0 || c.Cmp(p) >= 0 {
			return fmt.Errorf("%w: coordinate %d is not a base field element", ErrInvalidPoint, i)
		}
	}

	var pt bn254.G1Affine
	pt.X.SetBigInt(values[0])
	pt.Y.SetBigInt(values[1])
	if !pt.IsOnCurve() {
		return fmt.Errorf("%w: (%s, %s) is not on the curve", ErrInvalidPoint, values[0], values[1])
	}
	return nil
}
