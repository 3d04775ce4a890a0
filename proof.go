package schnorr

import (
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/cbor"
	"github.com/privacybydesign/schnorr/internal/common"
)

type (
	// Proof is a non-interactive proof of knowledge: commitment T and response S.
	Proof struct {
		T *big.Int `json:"t"`
		S *big.Int `json:"s"`
	}

	// EqualityProof shows log_G(Y) = log_H(Z): challenge C and one shared response S.
	EqualityProof struct {
		C *big.Int `json:"c" cbor:"1,keyasint"`
		S *big.Int `json:"s" cbor:"2,keyasint"`
	}

	// ConjunctionProof shows knowledge of both log_G(Y) and log_H(Z).
	ConjunctionProof struct {
		C  *big.Int `json:"c" cbor:"1,keyasint"`
		S1 *big.Int `json:"s1" cbor:"2,keyasint"`
		S2 *big.Int `json:"s2" cbor:"3,keyasint"`
	}

	// DisjunctionProof shows knowledge of log_G(Y) or log_H(Z). The branch
	// challenges C1 and C2 add up to the transcript challenge modulo the order.
	DisjunctionProof struct {
		C1 *big.Int `json:"c1" cbor:"1,keyasint"`
		C2 *big.Int `json:"c2" cbor:"2,keyasint"`
		S1 *big.Int `json:"s1" cbor:"3,keyasint"`
		S2 *big.Int `json:"s2" cbor:"4,keyasint"`
	}
)

// Method-free copies for the cbor encoder, which otherwise calls MarshalBinary.
type (
	proofCBOR struct {
		T *big.Int `cbor:"1,keyasint"`
		S *big.Int `cbor:"2,keyasint"`
	}
	equalityProofCBOR    EqualityProof
	conjunctionProofCBOR ConjunctionProof
	disjunctionProofCBOR DisjunctionProof
)

func unmarshalProof(data []byte, dst interface{}) error {
	if err := cbor.Valid(data); err != nil {
		return common.InvalidParameter("malformed proof: %v", err)
	}
	return cbor.Unmarshal(data, dst)
}

// MarshalBinary encodes the proof as deterministic CBOR.
func (p *Proof) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(proofCBOR(*p))
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *Proof) UnmarshalBinary(data []byte) error {
	var tmp proofCBOR
	if err := unmarshalProof(data, &tmp); err != nil {
		return err
	}
	*p = Proof(tmp)
	return nil
}

func (p *EqualityProof) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*equalityProofCBOR)(p))
}

func (p *EqualityProof) UnmarshalBinary(data []byte) error {
	return unmarshalProof(data, (*equalityProofCBOR)(p))
}

func (p *ConjunctionProof) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*conjunctionProofCBOR)(p))
}

func (p *ConjunctionProof) UnmarshalBinary(data []byte) error {
	return unmarshalProof(data, (*conjunctionProofCBOR)(p))
}

func (p *DisjunctionProof) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*disjunctionProofCBOR)(p))
}

func (p *DisjunctionProof) UnmarshalBinary(data []byte) error {
	return unmarshalProof(data, (*disjunctionProofCBOR)(p))
}
