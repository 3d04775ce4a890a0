package schnorr

import (
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
)

// PairStatement relates two public values in one group, Y = G^x and Z = H^z,
// for a second base H. The proof type decides what is claimed about x and z:
// equality (DLEQ), knowledge of both (Conjunction) or of either (Disjunction).
type PairStatement struct {
	Group *Group
	H     *big.Int
	Y     *big.Int
	Z     *big.Int
}

// NewPairStatement checks that h, y and z are elements of grp.
func NewPairStatement(grp *Group, h, y, z *big.Int) (PairStatement, error) {
	st := PairStatement{Group: grp, H: h, Y: y, Z: z}
	return st, st.validate()
}

func (st PairStatement) validate() error {
	if st.Group == nil || st.Group.P == nil {
		return common.InvalidParameter("statement has no group")
	}
	if !st.Group.IsElement(st.H) {
		return common.InvalidParameter("second base not in [1, %v)", st.Group.P)
	}
	if !st.Group.IsElement(st.Y) || !st.Group.IsElement(st.Z) {
		return common.InvalidParameter("public values not in [1, %v)", st.Group.P)
	}
	return nil
}

// checkFirst verifies Y = G^x.
func (st PairStatement) checkFirst(x *big.Int) error {
	return Statement{Group: st.Group, Y: st.Y}.checkWitness(x)
}

// checkSecond verifies Z = H^z.
func (st PairStatement) checkSecond(z *big.Int) error {
	if !inRange(z, bigONE, st.Group.Order) {
		return common.InvalidParameter("witness not in [1, %v)", st.Group.Order)
	}
	zz, err := st.Group.Exp(st.H, z)
	if err != nil {
		return err
	}
	if zz.Cmp(st.Z) != 0 {
		return common.InvalidParameter("public value does not match witness")
	}
	return nil
}

// challenge hashes the transcript (G, H, Y, Z, t1, t2).
func (st PairStatement) challenge(d ChallengeDeriver, t1, t2 *big.Int) (*big.Int, error) {
	grp := st.Group
	return deriveChallenge(d, grp, grp.G, st.H, st.Y, st.Z, t1, t2)
}

// commitmentFromProof recomputes base^s * public^c mod P, which equals the
// prover's commitment base^r when s = r - c*w and public = base^w.
func (grp *Group) commitmentFromProof(base, public, s, c *big.Int) (*big.Int, error) {
	bs, err := grp.Exp(base, s)
	if err != nil {
		return nil, err
	}
	pc, err := grp.Exp(public, c)
	if err != nil {
		return nil, err
	}
	return common.CanonicalMod(bs.Mul(bs, pc), grp.P)
}

// response computes r - c*w mod Order.
func (grp *Group) response(r, c, w *big.Int) (*big.Int, error) {
	s := new(big.Int).Mul(c, w)
	return common.CanonicalMod(s.Sub(r, s), grp.Order)
}

// checkResponses reports whether every value is an exponent in [0, Order).
func (grp *Group) checkResponses(values ...*big.Int) error {
	for _, v := range values {
		if !grp.IsExponent(v) {
			return common.InvalidParameter("proof value not in [0, %v)", grp.Order)
		}
	}
	return nil
}
