package schnorr

import (
	"sync"

	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
	"github.com/sirupsen/logrus"
)

// ProverState is the position of an InteractiveProver in the protocol.
type ProverState int

const (
	ProverIdle ProverState = iota
	ProverCommitted
	ProverResponded
)

func (s ProverState) String() string {
	switch s {
	case ProverIdle:
		return "idle"
	case ProverCommitted:
		return "committed"
	case ProverResponded:
		return "responded"
	}
	return "invalid"
}

// VerifierState is the position of an InteractiveVerifier in the protocol.
type VerifierState int

const (
	VerifierIdle VerifierState = iota
	VerifierChallengeIssued
	VerifierVerified
)

func (s VerifierState) String() string {
	switch s {
	case VerifierIdle:
		return "idle"
	case VerifierChallengeIssued:
		return "challenge issued"
	case VerifierVerified:
		return "verified"
	}
	return "invalid"
}

// InteractiveProver is the prover of the three-move protocol:
//
//	Commitment() -> t = G^r        (Idle or Responded -> Committed)
//	Response(c)  -> s = x*c + r    (Committed -> Responded)
//
// Each round uses a fresh nonce r, which is erased once the response is sent.
type InteractiveProver struct {
	mu    sync.Mutex
	st    Statement
	x     *big.Int
	rnd   RandomSource
	state ProverState
	r     *big.Int
}

// NewInteractiveProver returns a prover for st holding witness x.
func NewInteractiveProver(st Statement, x *big.Int, opts ...Option) (*InteractiveProver, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, common.InvalidParameter("interactive prover requires a witness")
	}
	if err := st.checkWitness(x); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	return &InteractiveProver{
		st:  st,
		x:   new(big.Int).Set(x),
		rnd: cfg.rnd,
	}, nil
}

// Statement implements Provable.
func (p *InteractiveProver) Statement() Statement {
	return p.st
}

// State returns the current protocol position.
func (p *InteractiveProver) State() ProverState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Commitment samples a nonce r in [1, P-1) and returns t = G^r mod P.
func (p *InteractiveProver) Commitment() (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == ProverCommitted {
		return nil, common.Wrap(ErrProtocolState, "commitment already sent, awaiting challenge")
	}
	grp := p.st.Group
	r, err := grp.randomExponent(p.rnd)
	if err != nil {
		return nil, err
	}
	t, err := grp.ExpG(r)
	if err != nil {
		return nil, err
	}

	p.r = r
	p.state = ProverCommitted
	Logger.WithFields(logrus.Fields{"group": grp.Name, "t": t}).Trace("prover committed")
	return t, nil
}

// Response answers challenge c with s = x*c + r mod Order. It requires a
// preceding Commitment; the challenge must lie in [0, Order).
func (p *InteractiveProver) Response(c *big.Int) (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != ProverCommitted {
		return nil, common.Wrap(ErrProtocolState, "response requested in state %s", p.state)
	}
	grp := p.st.Group
	if !grp.IsExponent(c) {
		return nil, common.InvalidParameter("challenge not in [0, %v)", grp.Order)
	}

	s := new(big.Int).Mul(p.x, c)
	s.Add(s, p.r)
	s, err := common.CanonicalMod(s, grp.Order)
	if err != nil {
		return nil, err
	}

	p.r = nil
	p.state = ProverResponded
	Logger.WithFields(logrus.Fields{"group": grp.Name, "s": s}).Trace("prover responded")
	return s, nil
}

// InteractiveVerifier is the verifier of the three-move protocol:
//
//	Challenge() -> c                 (Idle or Verified -> ChallengeIssued)
//	Verify(s, t) -> G^s == Y^c * t   (ChallengeIssued -> Verified)
//
// A challenge is consumed by the first Verify against it.
type InteractiveVerifier struct {
	mu    sync.Mutex
	st    Statement
	rnd   RandomSource
	state VerifierState
	c     *big.Int
}

// NewInteractiveVerifier returns a verifier for st.
func NewInteractiveVerifier(st Statement, opts ...Option) (*InteractiveVerifier, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	return &InteractiveVerifier{
		st:  st,
		rnd: cfg.rnd,
	}, nil
}

// Statement implements Provable.
func (v *InteractiveVerifier) Statement() Statement {
	return v.st
}

// State returns the current protocol position.
func (v *InteractiveVerifier) State() VerifierState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Challenge samples c uniformly from [1, P-1) and stores it for Verify.
func (v *InteractiveVerifier) Challenge() (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == VerifierChallengeIssued {
		return nil, common.Wrap(ErrProtocolState, "challenge already issued, awaiting response")
	}
	c, err := v.st.Group.randomExponent(v.rnd)
	if err != nil {
		return nil, err
	}

	v.c = c
	v.state = VerifierChallengeIssued
	Logger.WithFields(logrus.Fields{"group": v.st.Group.Name, "c": c}).Trace("verifier issued challenge")
	return new(big.Int).Set(c), nil
}

// Verify checks response s against commitment t for the issued challenge c:
// G^s mod P == Y^c * t mod P. An invalid response yields false and still
// consumes the challenge; malformed input yields ErrInvalidParameter and does not.
func (v *InteractiveVerifier) Verify(s, t *big.Int) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != VerifierChallengeIssued {
		return false, common.Wrap(ErrProtocolState, "verify requested in state %s", v.state)
	}
	grp := v.st.Group
	if !grp.IsElement(t) {
		return false, common.InvalidParameter("commitment not in [1, %v)", grp.P)
	}
	if !grp.IsExponent(s) {
		return false, common.InvalidParameter("response not in [0, %v)", grp.Order)
	}

	lhs, err := grp.ExpG(s)
	if err != nil {
		return false, err
	}
	yc, err := common.ModExp(v.st.Y, v.c, grp.P)
	if err != nil {
		return false, err
	}
	rhs, err := common.CanonicalMod(yc.Mul(yc, t), grp.P)
	if err != nil {
		return false, err
	}

	v.c = nil
	v.state = VerifierVerified
	ok := lhs.Cmp(rhs) == 0
	Logger.WithFields(logrus.Fields{"group": grp.Name, "valid": ok}).Trace("verifier checked response")
	return ok, nil
}
