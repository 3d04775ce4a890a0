package schnorr

import (
	"encoding/json"
	"testing"

	"github.com/privacybydesign/schnorr/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofEncoding(t *testing.T) {
	grp := bigGroup(t)
	st, x := randomStatement(t, grp)
	fs, err := NewFiatShamir(st, x)
	require.NoError(t, err)
	proof, err := fs.GenerateProof()
	require.NoError(t, err)

	bts, err := proof.MarshalBinary()
	require.NoError(t, err)
	var decoded Proof
	require.NoError(t, decoded.UnmarshalBinary(bts))
	require.Zero(t, proof.T.Cmp(decoded.T))
	require.Zero(t, proof.S.Cmp(decoded.S))
	ok, err := fs.Verify(&decoded)
	require.NoError(t, err)
	assert.True(t, ok)

	again, err := decoded.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, bts, again, "encoding is not deterministic")

	js, err := json.Marshal(proof)
	require.NoError(t, err)
	var fromJSON Proof
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	require.Zero(t, proof.T.Cmp(fromJSON.T))
	require.Zero(t, proof.S.Cmp(fromJSON.S))
}

func TestProofDecodeGarbage(t *testing.T) {
	var p Proof
	requireKind(t, p.UnmarshalBinary([]byte{0xff, 0x00}), ErrInvalidParameter)
	requireKind(t, p.UnmarshalBinary(nil), ErrInvalidParameter)

	// an empty map decodes to a proof without values, which fails verification input checks
	require.NoError(t, p.UnmarshalBinary([]byte{0xa0}))
	st, _ := toyStatement(t)
	fs, err := NewFiatShamir(st, nil)
	require.NoError(t, err)
	_, err = fs.Verify(&p)
	requireKind(t, err, ErrInvalidParameter)

	// zero response encodes as an empty byte string
	zero := &Proof{T: big.NewInt(1), S: big.NewInt(0)}
	bts, err := zero.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, p.UnmarshalBinary(bts))
	assert.Zero(t, p.S.Sign())
}
