package schnorr

import (
	"testing"

	"github.com/privacybydesign/schnorr/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	grp := toyGroup(t)
	assert.Equal(t, int64(2), grp.G.Int64())
	assert.Equal(t, int64(13), grp.P.Int64())
	assert.Equal(t, int64(12), grp.Order.Int64())
	assert.False(t, grp.hasTable)

	assert.True(t, bigGroup(t).hasTable)
}

func TestNewGroupInvalid(t *testing.T) {
	cases := []struct {
		name string
		g, p *big.Int
	}{
		{"nil modulus", big.NewInt(2), nil},
		{"nil generator", nil, big.NewInt(13)},
		{"zero modulus", big.NewInt(1), big.NewInt(0)},
		{"unit modulus", big.NewInt(1), big.NewInt(1)},
		{"negative modulus", big.NewInt(2), big.NewInt(-13)},
		{"modulus two", big.NewInt(1), big.NewInt(2)},
		{"composite", big.NewInt(2), big.NewInt(15)},
		{"generator zero", big.NewInt(0), big.NewInt(13)},
		{"generator too large", big.NewInt(13), big.NewInt(13)},
		{"generator negative", big.NewInt(-2), big.NewInt(13)},
	}
	for _, c := range cases {
		_, err := NewGroup(c.name, c.g, c.p)
		requireKind(t, err, ErrInvalidParameter)
	}
}

func TestExpG(t *testing.T) {
	grp := toyGroup(t)
	r, err := grp.ExpG(big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), r.Int64())

	// exponents are taken modulo the order
	r, err = grp.ExpG(big.NewInt(-7))
	require.NoError(t, err)
	assert.Equal(t, int64(6), r.Int64())
	r, err = grp.ExpG(big.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, int64(6), r.Int64())
}

func TestExpGTable(t *testing.T) {
	grp := bigGroup(t)
	src := DefaultRandomSource()
	for i := 0; i < 50; i++ {
		e, err := src.Uniform(bigZERO, grp.Order)
		require.NoError(t, err)
		r, err := grp.ExpG(e)
		require.NoError(t, err)
		expected, err := ModExp(grp.G, e, grp.P)
		require.NoError(t, err)
		require.Zero(t, expected.Cmp(r), "2^%v", e)
	}
}

func TestStatement(t *testing.T) {
	grp := toyGroup(t)
	_, err := NewStatement(grp, big.NewInt(6))
	require.NoError(t, err)

	_, err = NewStatement(grp, big.NewInt(0))
	requireKind(t, err, ErrInvalidParameter)
	_, err = NewStatement(grp, big.NewInt(32))
	requireKind(t, err, ErrInvalidParameter)
	_, err = NewStatement(grp, nil)
	requireKind(t, err, ErrInvalidParameter)
	_, err = NewStatement(nil, big.NewInt(6))
	requireKind(t, err, ErrInvalidParameter)
}

func TestPublicValue(t *testing.T) {
	grp := toyGroup(t)
	_, err := PublicValue(grp, big.NewInt(0))
	requireKind(t, err, ErrInvalidParameter)
	_, err = PublicValue(grp, big.NewInt(12))
	requireKind(t, err, ErrInvalidParameter)
	y, err := PublicValue(grp, big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, int64(7), y.Int64())
}

func TestArithmeticExports(t *testing.T) {
	r, err := ModExp(big.NewInt(2), big.NewInt(10), big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(24), r.Int64())

	r, err = ModExp(big.NewInt(5), big.NewInt(0), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Int64())

	r, err = CanonicalMod(big.NewInt(-5), big.NewInt(13))
	require.NoError(t, err)
	assert.Equal(t, int64(8), r.Int64())

	_, err = ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	requireKind(t, err, ErrInvalidParameter)
}
