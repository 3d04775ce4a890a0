package common

import (
	"encoding/hex"
	"testing"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/schnorr/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestVectors(t *testing.T) {
	d, err := SHA2_256.Digest([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(d))

	d, err = SHA3_256.Digest([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532", hex.EncodeToString(d))

	d, err = SHA2_512.Digest([]byte("abc"))
	require.NoError(t, err)
	assert.Len(t, d, 64)
}

func TestHashByName(t *testing.T) {
	h, err := HashByName("sha2-256")
	require.NoError(t, err)
	assert.Equal(t, SHA2_256, h)
	assert.Equal(t, "sha2-256", h.String())

	h, err = HashByName("SHA3-256")
	require.NoError(t, err)
	assert.Equal(t, SHA3_256, h)

	_, err = HashByName("md5-but-not-really")
	require.True(t, errors.Is(err, ErrInvalidParameter))

	// known to multihash, but not offered for challenges
	_, err = HashByName("sha1")
	require.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestHashCommit(t *testing.T) {
	listA := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	listB := []*big.Int{big.NewInt(1), big.NewInt(23)}
	listC := []*big.Int{big.NewInt(12), big.NewInt(3)}

	hashA, err := HashCommit(SHA2_256, listA)
	require.NoError(t, err)
	hashB, err := HashCommit(SHA2_256, listB)
	require.NoError(t, err)
	hashC, err := HashCommit(SHA2_256, listC)
	require.NoError(t, err)

	assert.NotZero(t, hashA.Cmp(hashB), "Hashes for A and B coincide")
	assert.NotZero(t, hashA.Cmp(hashC), "Hashes for A and C coincide")
	assert.NotZero(t, hashB.Cmp(hashC), "Hashes for B and C coincide")

	again, err := HashCommit(SHA2_256, listA)
	require.NoError(t, err)
	assert.Zero(t, hashA.Cmp(again))

	_, err = HashCommit(SHA2_256, []*big.Int{big.NewInt(1), nil})
	require.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestTranscriptDecimal(t *testing.T) {
	bts, err := TranscriptDecimal([]*big.Int{big.NewInt(2), big.NewInt(6), big.NewInt(8)})
	require.NoError(t, err)
	assert.Equal(t, "268", string(bts))

	// the decimal encoding is ambiguous, unlike the asn1 one
	b1, _ := TranscriptDecimal([]*big.Int{big.NewInt(1), big.NewInt(23)})
	b2, _ := TranscriptDecimal([]*big.Int{big.NewInt(12), big.NewInt(3)})
	assert.Equal(t, b1, b2)
}

func TestDigestByteSum(t *testing.T) {
	assert.Equal(t, int64(0), DigestByteSum(nil).Int64())
	assert.Equal(t, int64(255*32), DigestByteSum(make32(0xff)).Int64())

	d, err := SHA2_256.Digest([]byte("268"))
	require.NoError(t, err)
	assert.Equal(t, int64(4485), DigestByteSum(d).Int64())
}

func make32(b byte) []byte {
	bts := make([]byte, 32)
	for i := range bts {
		bts[i] = b
	}
	return bts
}
