package big

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/privacybydesign/schnorr/cbor"
	"github.com/stretchr/testify/require"
)

func testBase64(t *testing.T, bigint *Int) *Int {
	bts, err := json.Marshal(bigint)
	require.NoError(t, err)
	unmarshaled := new(Int)
	err = json.Unmarshal(bts, unmarshaled)
	require.NoError(t, err)
	require.Zero(t, bigint.Cmp(unmarshaled))
	return unmarshaled
}

func testCBOR(t *testing.T, bigint *Int) *Int {
	bts, err := cbor.Marshal(bigint)
	require.NoError(t, err)
	unmarshaled := new(Int)
	require.NoError(t, cbor.Unmarshal(bts, unmarshaled))
	require.Zero(t, bigint.Cmp(unmarshaled))
	return unmarshaled
}

func TestInt(t *testing.T) {
	var i int64 = 42
	bigint := NewInt(i)
	require.Equal(t, i, testBase64(t, bigint).Int64())
	require.Equal(t, i, testCBOR(t, bigint).Int64())
}

func TestZero(t *testing.T) {
	bigint := NewInt(0)
	require.Zero(t, testBase64(t, bigint).Sign())
	require.Zero(t, testCBOR(t, bigint).Sign())
}

func TestBigInt(t *testing.T) {
	s := "8931748931759284679376938475395713602744853768923750102"
	bigint, ok := new(Int).SetString(s, 10)
	require.True(t, ok)
	require.Equal(t, s, testBase64(t, bigint).String())
	require.Equal(t, s, testCBOR(t, bigint).String())
}

func TestDecimalJSON(t *testing.T) {
	var i Int
	require.NoError(t, json.Unmarshal([]byte("1234567"), &i))
	require.Equal(t, int64(1234567), i.Int64())
}

func TestRandom(t *testing.T) {
	max := new(Int).Lsh(NewInt(1), 100)
	bigint, err := RandInt(rand.Reader, max)
	require.NoError(t, err)
	testBase64(t, bigint)
	testCBOR(t, bigint)
}

func TestNegative(t *testing.T) {
	bigint := NewInt(-42)
	_, err := json.Marshal(bigint)
	require.Error(t, err)
	_, err = cbor.Marshal(bigint)
	require.Error(t, err)
}
