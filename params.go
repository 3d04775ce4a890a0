package schnorr

import "github.com/privacybydesign/schnorr/internal/common"

const primalityRounds = 80 // Miller-Rabin rounds when validating a modulus

// Moduli of at least this many bits get a precomputed fixed-base table for G.
const expTableMinBits = 160

const expTableWindow = 7

type (
	// RandomSource supplies uniform integers in [low, high); it must be
	// cryptographically secure and safe for concurrent use.
	RandomSource = common.RandomSource
	// ReaderSource adapts an io.Reader of random bytes to a RandomSource.
	ReaderSource = common.ReaderSource
	// HashFunc is the digest used for Fiat-Shamir challenges.
	HashFunc = common.HashFunc
)

const (
	SHA2_256 = common.SHA2_256
	SHA2_512 = common.SHA2_512
	SHA3_256 = common.SHA3_256
)

// DefaultRandomSource returns the process-wide CPRNG-backed source.
func DefaultRandomSource() RandomSource {
	return common.DefaultSource()
}

// SystemRandomSource returns a source reading directly from crypto/rand.
func SystemRandomSource() RandomSource {
	return common.SystemSource()
}

// HashByName resolves a multihash name such as "sha2-256".
func HashByName(name string) (HashFunc, error) {
	return common.HashByName(name)
}

// Option configures a prover or verifier.
type Option func(*config)

type config struct {
	rnd     RandomSource
	deriver ChallengeDeriver
}

func newConfig(opts []Option) config {
	c := config{
		rnd:     common.DefaultSource(),
		deriver: ReducedChallenge{Hash: SHA2_256},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithRandomSource replaces the default CPRNG-backed randomness.
func WithRandomSource(src RandomSource) Option {
	return func(c *config) {
		if src != nil {
			c.rnd = src
		}
	}
}

// WithChallengeDeriver selects how non-interactive challenges are computed.
// It has no effect on interactive parties.
func WithChallengeDeriver(d ChallengeDeriver) Option {
	return func(c *config) {
		if d != nil {
			c.deriver = d
		}
	}
}
