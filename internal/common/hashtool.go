package common

import (
	"encoding/asn1"
	"strings"

	"github.com/multiformats/go-multihash"
	"github.com/privacybydesign/schnorr/big"

	gobig "math/big"
)

// HashFunc is a fixed-length cryptographic digest, identified by its multihash code.
type HashFunc uint64

// Supported hash functions.
const (
	SHA2_256 = HashFunc(multihash.SHA2_256)
	SHA2_512 = HashFunc(multihash.SHA2_512)
	SHA3_256 = HashFunc(multihash.SHA3_256)
)

var supportedHashes = []HashFunc{SHA2_256, SHA2_512, SHA3_256}

// HashByName resolves a multihash name such as "sha2-256" to a supported HashFunc.
func HashByName(name string) (HashFunc, error) {
	code, ok := multihash.Names[strings.ToLower(name)]
	if !ok {
		return 0, InvalidParameter("unknown hash function %q", name)
	}
	for _, h := range supportedHashes {
		if uint64(h) == code {
			return h, nil
		}
	}
	return 0, InvalidParameter("hash function %q not supported for challenges", name)
}

// String returns the multihash name of h.
func (h HashFunc) String() string {
	if name, ok := multihash.Codes[uint64(h)]; ok {
		return name
	}
	return "unknown"
}

// Digest hashes data and returns the raw digest bytes.
func (h HashFunc) Digest(data []byte) ([]byte, error) {
	mh, err := multihash.Sum(data, uint64(h), -1)
	if err != nil {
		return nil, InvalidParameter("hash %s: %v", h, err)
	}
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return nil, InvalidParameter("hash %s: %v", h, err)
	}
	return decoded.Digest, nil
}

// TranscriptASN1 encodes a list of integers as the asn1 sequence (count, v1, ..., vn).
// The explicit count and asn1 framing make the encoding injective.
func TranscriptASN1(values []*big.Int) ([]byte, error) {
	tmp := make([]interface{}, len(values)+1)
	tmp[0] = gobig.NewInt(int64(len(values)))
	for i, v := range values {
		if v == nil {
			return nil, InvalidParameter("transcript element %d is nil", i)
		}
		tmp[i+1] = v.Go()
	}
	return asn1.Marshal(tmp)
}

// TranscriptDecimal concatenates the base 10 representations of the values.
// This is the transcript encoding of the byte-sum challenge; it is not
// injective ("1","23" and "12","3" collide).
func TranscriptDecimal(values []*big.Int) ([]byte, error) {
	var sb strings.Builder
	for i, v := range values {
		if v == nil {
			return nil, InvalidParameter("transcript element %d is nil", i)
		}
		sb.WriteString(v.String())
	}
	return []byte(sb.String()), nil
}

// HashCommit computes the digest over the asn1 transcript of values and returns
// it as a non-negative integer.
func HashCommit(h HashFunc, values []*big.Int) (*big.Int, error) {
	bts, err := TranscriptASN1(values)
	if err != nil {
		return nil, err
	}
	digest, err := h.Digest(bts)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(digest), nil
}

// DigestByteSum folds a digest into an integer by adding up its bytes.
func DigestByteSum(digest []byte) *big.Int {
	var sum uint64
	for _, b := range digest {
		sum += uint64(b)
	}
	return new(big.Int).SetUint64(sum)
}
