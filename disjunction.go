package schnorr

import (
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
	"github.com/sirupsen/logrus"
)

// Branch selects which half of a PairStatement the prover of a Disjunction
// holds the witness for.
type Branch int

const (
	FirstBranch  Branch = iota // Y = G^x
	SecondBranch               // Z = H^z
)

func (b Branch) String() string {
	switch b {
	case FirstBranch:
		return "first"
	case SecondBranch:
		return "second"
	default:
		return "unknown"
	}
}

// Disjunction proves knowledge of x with Y = G^x or of z with Z = H^z without
// revealing which. The prover simulates the branch it cannot prove by choosing
// that branch's challenge and response up front; the two branch challenges must
// add up to the transcript challenge modulo Order.
type Disjunction struct {
	st      PairStatement
	known   Branch
	w       *big.Int
	rnd     RandomSource
	deriver ChallengeDeriver
}

// NewDisjunction returns a prover for the known branch with witness w, or a
// verifier when w is nil.
func NewDisjunction(st PairStatement, known Branch, w *big.Int, opts ...Option) (*Disjunction, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	if w != nil {
		var err error
		switch known {
		case FirstBranch:
			err = st.checkFirst(w)
		case SecondBranch:
			err = st.checkSecond(w)
		default:
			err = common.InvalidParameter("unknown branch %d", int(known))
		}
		if err != nil {
			return nil, err
		}
		w = new(big.Int).Set(w)
	}
	cfg := newConfig(opts)
	return &Disjunction{st: st, known: known, w: w, rnd: cfg.rnd, deriver: cfg.deriver}, nil
}

func (dj *Disjunction) Statement() PairStatement {
	return dj.st
}

func (dj *Disjunction) bases() (bases, publics [2]*big.Int) {
	return [2]*big.Int{dj.st.Group.G, dj.st.H}, [2]*big.Int{dj.st.Y, dj.st.Z}
}

// GenerateProof returns (C1, C2, S1, S2). Only the prover knows which pair was
// simulated.
func (dj *Disjunction) GenerateProof() (*DisjunctionProof, error) {
	if dj.w == nil {
		return nil, common.InvalidParameter("cannot prove without witness")
	}
	grp := dj.st.Group
	own, sim := int(dj.known), 1-int(dj.known)
	bases, publics := dj.bases()

	cSim, err := grp.randomExponent(dj.rnd)
	if err != nil {
		return nil, err
	}
	sSim, err := grp.randomExponent(dj.rnd)
	if err != nil {
		return nil, err
	}
	r, err := grp.randomExponent(dj.rnd)
	if err != nil {
		return nil, err
	}

	var t [2]*big.Int
	if t[own], err = grp.Exp(bases[own], r); err != nil {
		return nil, err
	}
	if t[sim], err = grp.commitmentFromProof(bases[sim], publics[sim], sSim, cSim); err != nil {
		return nil, err
	}

	c, err := dj.challenge(t[0], t[1])
	if err != nil {
		return nil, err
	}
	cOwn, err := common.CanonicalMod(c.Sub(c, cSim), grp.Order)
	if err != nil {
		return nil, err
	}
	sOwn, err := grp.response(r, cOwn, dj.w)
	if err != nil {
		return nil, err
	}

	var cs, ss [2]*big.Int
	cs[own], ss[own] = cOwn, sOwn
	cs[sim], ss[sim] = cSim, sSim

	Logger.WithFields(logrus.Fields{"group": grp.Name}).Trace("generated disjunction proof")
	return &DisjunctionProof{C1: cs[0], C2: cs[1], S1: ss[0], S2: ss[1]}, nil
}

// Verify recomputes both commitments and checks C1 + C2 against their challenge.
func (dj *Disjunction) Verify(p *DisjunctionProof) (bool, error) {
	if p == nil {
		return false, common.InvalidParameter("malformed disjunction proof")
	}
	grp := dj.st.Group
	if err := grp.checkResponses(p.C1, p.C2, p.S1, p.S2); err != nil {
		return false, err
	}
	bases, publics := dj.bases()

	t1, err := grp.commitmentFromProof(bases[0], publics[0], p.S1, p.C1)
	if err != nil {
		return false, err
	}
	t2, err := grp.commitmentFromProof(bases[1], publics[1], p.S2, p.C2)
	if err != nil {
		return false, err
	}
	c, err := dj.challenge(t1, t2)
	if err != nil {
		return false, err
	}
	sum, err := common.CanonicalMod(new(big.Int).Add(p.C1, p.C2), grp.Order)
	if err != nil {
		return false, err
	}

	ok := sum.Cmp(c) == 0
	Logger.WithFields(logrus.Fields{"group": grp.Name, "valid": ok}).Trace("verified disjunction proof")
	return ok, nil
}

// challenge is the pair transcript challenge reduced modulo Order, so that it
// can be split between the branches.
func (dj *Disjunction) challenge(t1, t2 *big.Int) (*big.Int, error) {
	c, err := dj.st.challenge(dj.deriver, t1, t2)
	if err != nil {
		return nil, err
	}
	return common.CanonicalMod(c, dj.st.Group.Order)
}
