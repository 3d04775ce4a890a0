package schnorr

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
)

// ChallengeDeriver maps a non-interactive transcript (G, Y, T) to a challenge.
// Implementations must be deterministic: the verifier recomputes the prover's
// challenge from the same transcript.
type ChallengeDeriver interface {
	Derive(grp *Group, transcript ...*big.Int) (*big.Int, error)
}

// ReducedChallenge hashes the asn1-encoded transcript and reduces the digest,
// read as a big-endian integer, modulo the group order.
type ReducedChallenge struct {
	Hash HashFunc
}

// Derive implements ChallengeDeriver.
func (d ReducedChallenge) Derive(grp *Group, transcript ...*big.Int) (*big.Int, error) {
	if grp == nil {
		return nil, common.InvalidParameter("challenge: missing group")
	}
	h, err := common.HashCommit(hashOrDefault(d.Hash), transcript)
	if err != nil {
		return nil, err
	}
	return h.Mod(h, grp.Order), nil
}

// ByteSumChallenge hashes the concatenated decimal transcript and sums the
// digest bytes. Its output never exceeds 255 times the digest length, so the
// challenge space is tiny compared to any real group order; it exists to
// interoperate with provers that use this folding.
type ByteSumChallenge struct {
	Hash HashFunc
}

// Derive implements ChallengeDeriver.
func (d ByteSumChallenge) Derive(_ *Group, transcript ...*big.Int) (*big.Int, error) {
	bts, err := common.TranscriptDecimal(transcript)
	if err != nil {
		return nil, err
	}
	digest, err := hashOrDefault(d.Hash).Digest(bts)
	if err != nil {
		return nil, err
	}
	return common.DigestByteSum(digest), nil
}

// deriveChallenge runs d over the transcript and rejects results that cannot
// serve as an exponent.
func deriveChallenge(d ChallengeDeriver, grp *Group, transcript ...*big.Int) (*big.Int, error) {
	c, err := d.Derive(grp, transcript...)
	if err != nil {
		return nil, errors.WrapPrefix(err, "deriving challenge", 0)
	}
	if c == nil || c.Sign() < 0 {
		return nil, common.InvalidParameter("challenge deriver returned %v", c)
	}
	return c, nil
}

func hashOrDefault(h HashFunc) HashFunc {
	if h == 0 {
		return SHA2_256
	}
	return h
}

// ChallengeByName returns the deriver named "reduced" or "bytesum", using hash.
func ChallengeByName(name string, hash HashFunc) (ChallengeDeriver, error) {
	switch strings.ToLower(name) {
	case "", "reduced":
		return ReducedChallenge{Hash: hash}, nil
	case "bytesum":
		return ByteSumChallenge{Hash: hash}, nil
	default:
		return nil, common.InvalidParameter("unknown challenge derivation %q", name)
	}
}
