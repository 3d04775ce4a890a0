// Package cbor is the binary encoding used for proofs and protocol messages.
// It wraps github.com/fxamacker/cbor/v2 with Core Deterministic Encoding
// (RFC 8949 section 4.2.1), so that equal proofs always encode to equal bytes,
// and a decoder that rejects duplicate map keys and oversized containers.
package cbor

import (
	"github.com/fxamacker/cbor/v2" // imports as cbor
)

// Proofs and messages are a handful of fields; anything larger is hostile input.
const (
	MaxArrayElements = 1024
	MaxMapPairs      = 1024
)

var (
	// encOptions specifies how CBOR should be encoded.
	encOptions = cbor.EncOptions{
		// Enable encoding options required by Core Deterministic Encoding
		// See https://datatracker.ietf.org/doc/html/rfc8949#section-4.2.1
		InfConvert:    cbor.InfConvertFloat16,
		IndefLength:   cbor.IndefLengthForbidden,
		NaNConvert:    cbor.NaNConvert7e00,
		ShortestFloat: cbor.ShortestFloat16,
		Sort:          cbor.SortCoreDeterministic,

		// We don't use tags
		TagsMd: cbor.TagsForbidden,
	}

	// decOptions specifies how CBOR should be decoded.
	decOptions = cbor.DecOptions{
		// Core Deterministic decoding options
		IndefLength: cbor.IndefLengthForbidden,

		// Sanity checks on maps and arrays
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxArrayElements,
		MaxMapPairs:      MaxMapPairs,

		// We don't use tags
		TagsMd:  cbor.TagsForbidden,
		TimeTag: cbor.DecTagIgnored,

		// Don't set ExtraDecErrorUnknownField: we allow extra fields for forward compatibility
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into a CBOR-encoded byte slice.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes CBOR in data into dst.
func Unmarshal(data []byte, dst interface{}) error {
	return decMode.Unmarshal(data, dst)
}

// Valid reports whether data is a single well-formed CBOR data item.
func Valid(data []byte) error {
	return decMode.Valid(data)
}
