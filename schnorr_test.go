// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schnorr

import (
	stderrors "errors"
	"testing"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/schnorr/big"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// 2^255 - 19
const bigPrimeHex = "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed"

func init() {
	Logger.SetLevel(logrus.TraceLevel)
}

// fixedSource replays a list of values, checking that each lies in the requested range.
type fixedSource struct {
	t    *testing.T
	vals []int64
}

func (s *fixedSource) Uniform(low, high *big.Int) (*big.Int, error) {
	if len(s.vals) == 0 {
		return nil, errors.WrapPrefix(ErrRandomnessFailure, "fixed source exhausted", 0)
	}
	v := big.NewInt(s.vals[0])
	s.vals = s.vals[1:]
	require.True(s.t, v.Cmp(low) >= 0 && v.Cmp(high) < 0, "%v not in [%v, %v)", v, low, high)
	return v, nil
}

// rawSource returns val and err unchecked, for exercising misbehaving sources.
type rawSource struct {
	val *big.Int
	err error
}

func (s rawSource) Uniform(_, _ *big.Int) (*big.Int, error) {
	return s.val, s.err
}

// misbehavingSources covers a source that fails with an unclassified error and
// sources that return values outside the requested range.
func misbehavingSources(order *big.Int) map[string]Option {
	return map[string]Option{
		"plain error": WithRandomSource(rawSource{err: stderrors.New("entropy exhausted")}),
		"zero":        WithRandomSource(rawSource{val: big.NewInt(0)}),
		"order":       WithRandomSource(rawSource{val: new(big.Int).Set(order)}),
		"negative":    WithRandomSource(rawSource{val: big.NewInt(-1)}),
		"nil value":   WithRandomSource(rawSource{}),
	}
}

func fixed(t *testing.T, vals ...int64) Option {
	return WithRandomSource(&fixedSource{t: t, vals: vals})
}

func toyGroup(t *testing.T) *Group {
	grp, err := NewGroup("toy-13", big.NewInt(2), big.NewInt(13))
	require.NoError(t, err)
	return grp
}

func bigGroup(t *testing.T) *Group {
	p, ok := new(big.Int).SetString(bigPrimeHex, 16)
	require.True(t, ok)
	grp, err := NewGroup("p25519", big.NewInt(2), p)
	require.NoError(t, err)
	return grp
}

// toyStatement is g=2, p=13, x=5, y=6.
func toyStatement(t *testing.T) (Statement, *big.Int) {
	x := big.NewInt(5)
	y, err := PublicValue(toyGroup(t), x)
	require.NoError(t, err)
	require.Equal(t, int64(6), y.Int64())
	st, err := NewStatement(toyGroup(t), y)
	require.NoError(t, err)
	return st, x
}

func randomStatement(t *testing.T, grp *Group) (Statement, *big.Int) {
	x, err := DefaultRandomSource().Uniform(bigONE, grp.Order)
	require.NoError(t, err)
	y, err := PublicValue(grp, x)
	require.NoError(t, err)
	st, err := NewStatement(grp, y)
	require.NoError(t, err)
	return st, x
}

func requireKind(t *testing.T, err error, kind error) {
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
}
