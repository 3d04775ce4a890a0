package schnorr

import (
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
)

// Often we need to refer to the same small constant big numbers, no point in
// creating them again and again.
var (
	bigZERO  = big.NewInt(0)
	bigONE   = big.NewInt(1)
	bigTHREE = big.NewInt(3)
)

// ModExp computes base^exponent mod modulus, returning a value in [0, modulus).
// It fails with ErrInvalidParameter for a negative exponent or a non-positive modulus.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	return common.ModExp(base, exponent, modulus)
}

// CanonicalMod reduces value into [0, modulus) whatever the sign of value.
// It fails with ErrInvalidParameter for a non-positive modulus.
func CanonicalMod(value, modulus *big.Int) (*big.Int, error) {
	return common.CanonicalMod(value, modulus)
}

func inRange(x, low, high *big.Int) bool {
	return common.InRange(x, low, high)
}
