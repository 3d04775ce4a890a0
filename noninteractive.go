package schnorr

import (
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
	"github.com/sirupsen/logrus"
)

// FiatShamir creates and verifies non-interactive proofs of knowledge of
// log_G(Y). A FiatShamir without witness can only verify. It holds no
// per-proof state and is safe for concurrent use.
type FiatShamir struct {
	st      Statement
	x       *big.Int
	rnd     RandomSource
	deriver ChallengeDeriver
}

// NewFiatShamir returns a prover/verifier for st. Pass a nil witness to only verify.
func NewFiatShamir(st Statement, x *big.Int, opts ...Option) (*FiatShamir, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	if x != nil {
		if err := st.checkWitness(x); err != nil {
			return nil, err
		}
		x = new(big.Int).Set(x)
	}
	cfg := newConfig(opts)
	return &FiatShamir{
		st:      st,
		x:       x,
		rnd:     cfg.rnd,
		deriver: cfg.deriver,
	}, nil
}

// Statement implements Provable.
func (fs *FiatShamir) Statement() Statement {
	return fs.st
}

func (fs *FiatShamir) challenge(t *big.Int) (*big.Int, error) {
	grp := fs.st.Group
	return deriveChallenge(fs.deriver, grp, grp.G, fs.st.Y, t)
}

// GenerateProof samples a fresh nonce v in [1, P-1) and returns T = G^v and
// S = v - c*x mod Order, where c is the challenge derived from (G, Y, T).
func (fs *FiatShamir) GenerateProof() (*Proof, error) {
	if fs.x == nil {
		return nil, common.InvalidParameter("cannot prove without witness")
	}
	grp := fs.st.Group

	v, err := grp.randomExponent(fs.rnd)
	if err != nil {
		return nil, err
	}
	t, err := grp.ExpG(v)
	if err != nil {
		return nil, err
	}
	c, err := fs.challenge(t)
	if err != nil {
		return nil, err
	}

	s := new(big.Int).Mul(c, fs.x)
	s.Sub(v, s)
	if s, err = common.CanonicalMod(s, grp.Order); err != nil {
		return nil, err
	}

	Logger.WithFields(logrus.Fields{"group": grp.Name, "t": t}).Trace("generated non-interactive proof")
	return &Proof{T: t, S: s}, nil
}

// VerifyProof recomputes the challenge c from (G, Y, t) and reports whether
// G^s * Y^c mod P equals t. An invalid proof yields false; only malformed input
// (nil values, t not a group element, s not in [0, Order)) yields an error.
func (fs *FiatShamir) VerifyProof(s, t *big.Int) (bool, error) {
	grp := fs.st.Group
	if !grp.IsElement(t) {
		return false, common.InvalidParameter("commitment not in [1, %v)", grp.P)
	}
	if !grp.IsExponent(s) {
		return false, common.InvalidParameter("response not in [0, %v)", grp.Order)
	}

	c, err := fs.challenge(t)
	if err != nil {
		return false, err
	}
	gs, err := grp.ExpG(s)
	if err != nil {
		return false, err
	}
	yc, err := common.ModExp(fs.st.Y, c, grp.P)
	if err != nil {
		return false, err
	}
	check, err := common.CanonicalMod(gs.Mul(gs, yc), grp.P)
	if err != nil {
		return false, err
	}

	ok := check.Cmp(t) == 0
	Logger.WithFields(logrus.Fields{"group": grp.Name, "valid": ok}).Trace("verified non-interactive proof")
	return ok, nil
}

// Verify is VerifyProof for a Proof value.
func (fs *FiatShamir) Verify(p *Proof) (bool, error) {
	if p == nil {
		return false, common.InvalidParameter("nil proof")
	}
	return fs.VerifyProof(p.S, p.T)
}
