package schnorr

import (
	"testing"

	"github.com/privacybydesign/schnorr/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomExp(t *testing.T, grp *Group) *big.Int {
	v, err := DefaultRandomSource().Uniform(bigONE, grp.Order)
	require.NoError(t, err)
	return v
}

// randomPair returns a statement with a random second base H, Y = G^x and Z = H^z.
func randomPair(t *testing.T, grp *Group, x, z *big.Int) PairStatement {
	h, err := grp.ExpG(randomExp(t, grp))
	require.NoError(t, err)
	y, err := grp.ExpG(x)
	require.NoError(t, err)
	zz, err := grp.Exp(h, z)
	require.NoError(t, err)
	st, err := NewPairStatement(grp, h, y, zz)
	require.NoError(t, err)
	return st
}

// toyPair is g=2, h=6, p=13 with Y = 2^5 = 6 and Z = 6^5 = 2.
func toyPair(t *testing.T) (PairStatement, *big.Int) {
	grp := toyGroup(t)
	st, err := NewPairStatement(grp, big.NewInt(6), big.NewInt(6), big.NewInt(2))
	require.NoError(t, err)
	return st, big.NewInt(5)
}

func TestNewPairStatement(t *testing.T) {
	grp := toyGroup(t)
	one, zero, p := big.NewInt(1), big.NewInt(0), big.NewInt(13)

	_, err := NewPairStatement(grp, one, one, one)
	require.NoError(t, err)

	for name, args := range map[string][3]*big.Int{
		"zero base":  {zero, one, one},
		"base p":     {p, one, one},
		"nil y":      {one, nil, one},
		"zero z":     {one, one, zero},
		"z above p":  {one, one, big.NewInt(14)},
		"negative y": {one, big.NewInt(-1), one},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewPairStatement(grp, args[0], args[1], args[2])
			requireKind(t, err, ErrInvalidParameter)
		})
	}

	_, err = NewPairStatement(nil, one, one, one)
	requireKind(t, err, ErrInvalidParameter)
}

func TestCommitmentFromProof(t *testing.T) {
	grp := bigGroup(t)
	w, r, c := randomExp(t, grp), randomExp(t, grp), randomExp(t, grp)
	base, err := grp.ExpG(randomExp(t, grp))
	require.NoError(t, err)
	public, err := grp.Exp(base, w)
	require.NoError(t, err)

	s, err := grp.response(r, c, w)
	require.NoError(t, err)
	require.True(t, grp.IsExponent(s))

	expected, err := grp.Exp(base, r)
	require.NoError(t, err)
	actual, err := grp.commitmentFromProof(base, public, s, c)
	require.NoError(t, err)
	assert.Zero(t, expected.Cmp(actual))
}

func TestPairChallengeCoversTranscript(t *testing.T) {
	grp := bigGroup(t)
	x := randomExp(t, grp)
	st := randomPair(t, grp, x, x)
	d := ReducedChallenge{}

	t1, t2 := randomExp(t, grp), randomExp(t, grp)
	c, err := st.challenge(d, t1, t2)
	require.NoError(t, err)

	swapped := st
	swapped.Y, swapped.Z = st.Z, st.Y
	c2, err := swapped.challenge(d, t1, t2)
	require.NoError(t, err)
	assert.NotZero(t, c.Cmp(c2))

	c3, err := st.challenge(d, t2, t1)
	require.NoError(t, err)
	assert.NotZero(t, c.Cmp(c3))
}
