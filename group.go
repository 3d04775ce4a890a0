package schnorr

import (
	"github.com/bwesterb/go-exptable"
	"github.com/go-errors/errors"
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
)

// Group holds domain parameters: a generator G of Z_P^* for a prime P. Exponents
// are reduced modulo Order = P - 1.
type Group struct {
	Name  string
	G     *big.Int
	P     *big.Int
	Order *big.Int

	gTable   exptable.Table
	hasTable bool
}

// NewGroup validates (g, p) and returns the corresponding Group. It fails with
// ErrInvalidParameter if p < 3, p is not prime, or g is outside [1, p).
func NewGroup(name string, g, p *big.Int) (*Group, error) {
	if g == nil || p == nil {
		return nil, common.InvalidParameter("group %q: missing generator or modulus", name)
	}
	if p.Cmp(bigTHREE) < 0 {
		return nil, common.InvalidParameter("group %q: modulus %v too small", name, p)
	}
	if !p.ProbablyPrime(primalityRounds) {
		return nil, common.InvalidParameter("group %q: modulus %v is not prime", name, p)
	}
	if !inRange(g, bigONE, p) {
		return nil, common.InvalidParameter("group %q: generator %v not in [1, %v)", name, g, p)
	}

	result := &Group{
		Name:  name,
		G:     new(big.Int).Set(g),
		P:     new(big.Int).Set(p),
		Order: new(big.Int).Sub(p, bigONE),
	}
	if p.BitLen() >= expTableMinBits {
		result.gTable.Compute(result.G.Go(), result.P.Go(), expTableWindow)
		result.hasTable = true
	}
	return result, nil
}

// ExpG returns G^exp mod P. The exponent is first reduced modulo Order, so
// negative exponents are allowed.
func (grp *Group) ExpG(exp *big.Int) (*big.Int, error) {
	e, err := common.CanonicalMod(exp, grp.Order)
	if err != nil {
		return nil, err
	}
	// the table covers exponents shorter than the modulus
	if grp.hasTable && e.BitLen() < grp.P.BitLen() {
		ret := new(big.Int)
		grp.gTable.Exp(ret.Go(), e.Go())
		return ret, nil
	}
	return common.ModExp(grp.G, e, grp.P)
}

// Exp returns base^exp mod P, with exp reduced modulo Order first.
func (grp *Group) Exp(base, exp *big.Int) (*big.Int, error) {
	e, err := common.CanonicalMod(exp, grp.Order)
	if err != nil {
		return nil, err
	}
	return common.ModExp(base, e, grp.P)
}

// randomExponent draws a nonce or challenge in [1, Order) from rnd. Every
// failure of the source, including a value outside that range, is reported as
// ErrRandomnessFailure.
func (grp *Group) randomExponent(rnd RandomSource) (*big.Int, error) {
	v, err := rnd.Uniform(bigONE, grp.Order)
	if err != nil {
		if errors.Is(err, ErrRandomnessFailure) {
			return nil, err
		}
		return nil, common.Wrap(ErrRandomnessFailure, "%v", err)
	}
	if !inRange(v, bigONE, grp.Order) {
		return nil, common.Wrap(ErrRandomnessFailure, "random source returned %v, outside [1, %v)", v, grp.Order)
	}
	return v, nil
}

// IsElement reports whether x lies in [1, P).
func (grp *Group) IsElement(x *big.Int) bool {
	return inRange(x, bigONE, grp.P)
}

// IsExponent reports whether x lies in [0, Order).
func (grp *Group) IsExponent(x *big.Int) bool {
	return inRange(x, bigZERO, grp.Order)
}

// Statement is the public claim "I know log_G(Y) in Group".
type Statement struct {
	Group *Group
	Y     *big.Int
}

// NewStatement checks that y is an element of grp.
func NewStatement(grp *Group, y *big.Int) (Statement, error) {
	st := Statement{Group: grp, Y: y}
	return st, st.validate()
}

// PublicValue computes y = G^x mod P for a witness x in [1, Order).
func PublicValue(grp *Group, x *big.Int) (*big.Int, error) {
	if grp == nil {
		return nil, common.InvalidParameter("missing group")
	}
	if !inRange(x, bigONE, grp.Order) {
		return nil, common.InvalidParameter("witness not in [1, %v)", grp.Order)
	}
	return grp.ExpG(x)
}

func (st Statement) validate() error {
	if st.Group == nil || st.Group.P == nil {
		return common.InvalidParameter("statement has no group")
	}
	if !st.Group.IsElement(st.Y) {
		return common.InvalidParameter("public value not in [1, %v)", st.Group.P)
	}
	return nil
}

// checkWitness verifies that x is a valid witness for st.
func (st Statement) checkWitness(x *big.Int) error {
	y, err := PublicValue(st.Group, x)
	if err != nil {
		return err
	}
	if y.Cmp(st.Y) != 0 {
		return common.InvalidParameter("public value does not match witness")
	}
	return nil
}

// Provable is the concept shared by every party of both protocol variants:
// each is bound to one Statement for its whole lifetime.
type Provable interface {
	Statement() Statement
}
