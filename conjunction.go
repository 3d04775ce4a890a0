package schnorr

import (
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
	"github.com/sirupsen/logrus"
)

// Conjunction proves knowledge of both x with Y = G^x and z with Z = H^z.
// Two independent Schnorr proofs are bound together by one challenge over the
// joint transcript.
type Conjunction struct {
	st      PairStatement
	x, z    *big.Int
	rnd     RandomSource
	deriver ChallengeDeriver
}

// NewConjunction returns a prover/verifier for st. Pass nil witnesses to only verify.
func NewConjunction(st PairStatement, x, z *big.Int, opts ...Option) (*Conjunction, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	if (x == nil) != (z == nil) {
		return nil, common.InvalidParameter("conjunction needs both witnesses or neither")
	}
	if x != nil {
		if err := st.checkFirst(x); err != nil {
			return nil, err
		}
		if err := st.checkSecond(z); err != nil {
			return nil, err
		}
		x, z = new(big.Int).Set(x), new(big.Int).Set(z)
	}
	cfg := newConfig(opts)
	return &Conjunction{st: st, x: x, z: z, rnd: cfg.rnd, deriver: cfg.deriver}, nil
}

func (cj *Conjunction) Statement() PairStatement {
	return cj.st
}

// GenerateProof returns (C, S1, S2) for fresh nonces r1 and r2.
func (cj *Conjunction) GenerateProof() (*ConjunctionProof, error) {
	if cj.x == nil {
		return nil, common.InvalidParameter("cannot prove without witnesses")
	}
	grp := cj.st.Group

	r1, err := grp.randomExponent(cj.rnd)
	if err != nil {
		return nil, err
	}
	r2, err := grp.randomExponent(cj.rnd)
	if err != nil {
		return nil, err
	}
	t1, err := grp.ExpG(r1)
	if err != nil {
		return nil, err
	}
	t2, err := grp.Exp(cj.st.H, r2)
	if err != nil {
		return nil, err
	}
	c, err := cj.st.challenge(cj.deriver, t1, t2)
	if err != nil {
		return nil, err
	}
	s1, err := grp.response(r1, c, cj.x)
	if err != nil {
		return nil, err
	}
	s2, err := grp.response(r2, c, cj.z)
	if err != nil {
		return nil, err
	}

	Logger.WithFields(logrus.Fields{"group": grp.Name, "c": c}).Trace("generated conjunction proof")
	return &ConjunctionProof{C: c, S1: s1, S2: s2}, nil
}

// Verify recomputes both commitments and checks that they hash back to C.
func (cj *Conjunction) Verify(p *ConjunctionProof) (bool, error) {
	if p == nil || p.C == nil || p.C.Sign() < 0 {
		return false, common.InvalidParameter("malformed conjunction proof")
	}
	grp := cj.st.Group
	if err := grp.checkResponses(p.S1, p.S2); err != nil {
		return false, err
	}

	t1, err := grp.commitmentFromProof(grp.G, cj.st.Y, p.S1, p.C)
	if err != nil {
		return false, err
	}
	t2, err := grp.commitmentFromProof(cj.st.H, cj.st.Z, p.S2, p.C)
	if err != nil {
		return false, err
	}
	c, err := cj.st.challenge(cj.deriver, t1, t2)
	if err != nil {
		return false, err
	}

	ok := c.Cmp(p.C) == 0
	Logger.WithFields(logrus.Fields{"group": grp.Name, "valid": ok}).Trace("verified conjunction proof")
	return ok, nil
}
