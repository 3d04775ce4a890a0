package common

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/privacybydesign/schnorr/big"
)

// RandomSource supplies uniformly distributed integers. Implementations must be
// cryptographically secure and safe for concurrent use.
type RandomSource interface {
	// Uniform returns a uniform random integer in [low, high).
	Uniform(low, high *big.Int) (*big.Int, error)
}

var globalCprng *CPRNG

// CPRNG is a simple thread-safe cryptographically secure pseudo-random number generator.
// Implemented with AES in counter mode with the seed as key and an
// atomic uint64 as counter.
type CPRNG struct {
	block   cipher.Block
	counter uint64
}

func NewCPRNG(seed *[32]byte) (*CPRNG, error) {
	c, err := aes.NewCipher(seed[:])
	if err != nil {
		return nil, err
	}
	return &CPRNG{
		block:   c,
		counter: 0,
	}, nil
}

func init() {
	var seed [32]byte
	_, err := rand.Reader.Read(seed[:])
	if err != nil {
		panic(fmt.Sprintf("Failed to generate seed for CPRNG: %v", err))
	}
	cprng, err := NewCPRNG(&seed)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize CPRNG: %v", err))
	}
	globalCprng = cprng
}

func (c *CPRNG) Read(buf []byte) (n int, err error) {
	var pt, ct [16]byte
	n = len(buf)
	if n == 0 {
		return
	}

	// Atomically reserve as many counter blocks as buf needs.
	nBlocks := uint64(((len(buf) - 1) / 16) + 1)
	iv := atomic.AddUint64(&c.counter, nBlocks) - nBlocks
	for {
		binary.LittleEndian.PutUint64(pt[:], iv)
		iv++

		if len(buf) >= 16 {
			c.block.Encrypt(buf, pt[:])
			buf = buf[16:]
			continue
		}
		if len(buf) == 0 {
			break
		}

		// Partial final block
		c.block.Encrypt(ct[:], pt[:])
		copy(buf, ct[:len(buf)])
		break
	}
	return
}

// ReaderSource draws uniform integers from an io.Reader of random bytes.
type ReaderSource struct {
	Reader io.Reader
}

// Uniform implements RandomSource.
func (s ReaderSource) Uniform(low, high *big.Int) (*big.Int, error) {
	if low == nil || high == nil || high.Cmp(low) <= 0 {
		return nil, InvalidParameter("empty sampling range [%v, %v)", low, high)
	}
	if s.Reader == nil {
		return nil, Wrap(ErrRandomnessFailure, "no reader configured")
	}
	width := new(big.Int).Sub(high, low)
	r, err := big.RandInt(s.Reader, width)
	if err != nil {
		return nil, Wrap(ErrRandomnessFailure, "sampling from [%v, %v): %v", low, high, err)
	}
	return r.Add(r, low), nil
}

// DefaultSource is the process-wide source: the CPRNG seeded from crypto/rand at startup.
func DefaultSource() RandomSource {
	return ReaderSource{Reader: globalCprng}
}

// SystemSource reads directly from crypto/rand.
func SystemSource() RandomSource {
	return ReaderSource{Reader: rand.Reader}
}
