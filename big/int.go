// Package big contains a mostly API-compatible "math/big".Int that JSON-marshals to and from Base64
// and CBOR-marshals to a byte string.
package big

import (
	cryptorand "crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/schnorr/cbor"
)

// Int is an API-compatible "math/big".Int that JSON-marshals to and from Base64.
// Only supports non-negative integers when marshaling.
type Int big.Int

// MarshalText implements encoding.TextMarshaler, returning the base64-encoding
// of i.Bytes().
func (i *Int) MarshalText() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errors.New("Marshaling negative integers is not supported")
	}
	bts := i.Bytes()
	enc := make([]byte, base64.StdEncoding.EncodedLen(len(bts)))
	base64.StdEncoding.Encode(enc, bts)
	return enc, nil
}

// UnmarshalJSON implements json.Unmarshaler. If the input is quoted it attempts a
// base64 -> []byte -> Int conversion using i.SetBytes(). Otherwise it attempts to
// unmarshal the input as a JSON base 10 big integer.
func (i *Int) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return errors.New("empty JSON value")
	}
	if b[0] != '"' { // Not a JSON string, try to decode an ordinarily base-10 encoded "math.big".Int
		return json.Unmarshal(b, i.Go())
	}
	if len(b) < 2 || b[len(b)-1] != '"' {
		return errors.New("unterminated JSON string")
	}

	bts := make([]byte, base64.StdEncoding.DecodedLen(len(b)-2))
	n, err := base64.StdEncoding.Decode(bts, b[1:len(b)-1]) // Skip quote characters
	i.SetBytes(bts[0:n])
	return err
}

// MarshalCBOR encodes i as a CBOR byte string holding its big-endian magnitude.
func (i *Int) MarshalCBOR() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errors.New("Marshaling negative integers is not supported")
	}
	return cbor.Marshal(i.Bytes())
}

// UnmarshalCBOR implements the inverse of MarshalCBOR.
func (i *Int) UnmarshalCBOR(data []byte) error {
	var bts []byte
	if err := cbor.Unmarshal(data, &bts); err != nil {
		return err
	}
	i.SetBytes(bts)
	return nil
}

// RandInt wraps "crypto/rand".Int:
// returns a uniform random value in [0, max). It panics if max <= 0.
func RandInt(rnd io.Reader, max *Int) (*Int, error) {
	i, err := cryptorand.Int(rnd, max.Go())
	return Convert(i), err
}

// Convert from a "math/big".Int
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Go converts to a "math/big".Int
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// "math/big".Int API, restricted to what modular group arithmetic needs.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Format(s fmt.State, ch rune)  { i.Go().Format(s, ch) }
func (i *Int) Bytes() []byte                { return i.Go().Bytes() }
func (i *Int) BitLen() int                  { return i.Go().BitLen() }
func (i *Int) Int64() int64                 { return i.Go().Int64() }
func (i *Int) Sign() int                    { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int               { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool     { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string               { return i.Go().String() }
func (i *Int) SetInt64(x int64) *Int        { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int      { return Convert(i.Go().SetUint64(x)) }
func (i *Int) Set(x *Int) *Int              { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Add(x, y *Int) *Int           { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int           { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int           { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int           { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) SetBytes(buf []byte) *Int     { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) Lsh(x *Int, n uint) *Int      { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Exp(x, y, m *Int) *Int        { return Convert(i.Go().Exp(x.Go(), y.Go(), m.Go())) }
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, b := i.Go().SetString(s, base)
	return Convert(z), b
}
