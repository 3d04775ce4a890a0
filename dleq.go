package schnorr

import (
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
	"github.com/sirupsen/logrus"
)

// DLEQ proves that Y = G^x and Z = H^x share the exponent x, without revealing it.
// One nonce v commits to both bases, T1 = G^v and T2 = H^v, and the single
// response S = v - c*x must reopen both commitments.
type DLEQ struct {
	st      PairStatement
	x       *big.Int
	rnd     RandomSource
	deriver ChallengeDeriver
}

// NewDLEQ returns a prover/verifier for st. Pass a nil witness to only verify.
func NewDLEQ(st PairStatement, x *big.Int, opts ...Option) (*DLEQ, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	if x != nil {
		if err := st.checkFirst(x); err != nil {
			return nil, err
		}
		if err := st.checkSecond(x); err != nil {
			return nil, err
		}
		x = new(big.Int).Set(x)
	}
	cfg := newConfig(opts)
	return &DLEQ{st: st, x: x, rnd: cfg.rnd, deriver: cfg.deriver}, nil
}

func (d *DLEQ) Statement() PairStatement {
	return d.st
}

// GenerateProof returns (C, S) for a fresh nonce.
func (d *DLEQ) GenerateProof() (*EqualityProof, error) {
	if d.x == nil {
		return nil, common.InvalidParameter("cannot prove without witness")
	}
	grp := d.st.Group

	v, err := grp.randomExponent(d.rnd)
	if err != nil {
		return nil, err
	}
	t1, err := grp.ExpG(v)
	if err != nil {
		return nil, err
	}
	t2, err := grp.Exp(d.st.H, v)
	if err != nil {
		return nil, err
	}
	c, err := d.st.challenge(d.deriver, t1, t2)
	if err != nil {
		return nil, err
	}
	s, err := grp.response(v, c, d.x)
	if err != nil {
		return nil, err
	}

	Logger.WithFields(logrus.Fields{"group": grp.Name, "c": c}).Trace("generated equality proof")
	return &EqualityProof{C: c, S: s}, nil
}

// Verify recomputes both commitments from the proof and checks that they hash
// back to C. A wrong proof yields false; malformed input yields ErrInvalidParameter.
func (d *DLEQ) Verify(p *EqualityProof) (bool, error) {
	if p == nil || p.C == nil || p.C.Sign() < 0 {
		return false, common.InvalidParameter("malformed equality proof")
	}
	grp := d.st.Group
	if err := grp.checkResponses(p.S); err != nil {
		return false, err
	}

	t1, err := grp.commitmentFromProof(grp.G, d.st.Y, p.S, p.C)
	if err != nil {
		return false, err
	}
	t2, err := grp.commitmentFromProof(d.st.H, d.st.Z, p.S, p.C)
	if err != nil {
		return false, err
	}
	c, err := d.st.challenge(d.deriver, t1, t2)
	if err != nil {
		return false, err
	}

	ok := c.Cmp(p.C) == 0
	Logger.WithFields(logrus.Fields{"group": grp.Name, "valid": ok}).Trace("verified equality proof")
	return ok, nil
}
