// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"github.com/privacybydesign/schnorr/big"
)

// Often we need to refer to the same small constant big numbers, no point in
// creating them again and again.
var (
	bigZERO = big.NewInt(0)
	bigONE  = big.NewInt(1)
)

// ModExp computes base^exponent mod modulus by square-and-multiply, returning a
// value in [0, modulus). The base may be any integer, including negative ones;
// the exponent must be non-negative and the modulus positive.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if base == nil || exponent == nil || modulus == nil {
		return nil, InvalidParameter("modexp: nil operand")
	}
	if modulus.Sign() <= 0 {
		return nil, InvalidParameter("modexp: modulus %v is not positive", modulus)
	}
	if exponent.Sign() < 0 {
		return nil, InvalidParameter("modexp: exponent %v is negative", exponent)
	}
	if modulus.Cmp(bigONE) == 0 {
		return big.NewInt(0), nil
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := exponent.Go()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if e.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
	}
	return result, nil
}

// CanonicalMod returns value mod modulus in [0, modulus), regardless of the sign
// of value. The modulus must be positive.
func CanonicalMod(value, modulus *big.Int) (*big.Int, error) {
	if value == nil || modulus == nil {
		return nil, InvalidParameter("mod: nil operand")
	}
	if modulus.Sign() <= 0 {
		return nil, InvalidParameter("mod: modulus %v is not positive", modulus)
	}
	// Euclidean modulus: non-negative for positive moduli
	return new(big.Int).Mod(value, modulus), nil
}

// InRange reports whether low <= x < high.
func InRange(x, low, high *big.Int) bool {
	return x != nil && x.Cmp(low) >= 0 && x.Cmp(high) < 0
}
