package schnorr

import "github.com/privacybydesign/schnorr/internal/common"

// Error kinds reported by this package and its subpackages; match with errors.Is.
// A proof that does not verify is never an error: verification then returns false.
const (
	// ErrInvalidParameter: bad domain parameters, malformed protocol values, or a
	// non-positive modulus given to the arithmetic routines.
	ErrInvalidParameter = common.ErrInvalidParameter
	// ErrProtocolState: an operation was invoked out of order, e.g. Response
	// before Commitment or a second Verify against one challenge.
	ErrProtocolState = common.ErrProtocolState
	// ErrRandomnessFailure: the random source could not produce output.
	ErrRandomnessFailure = common.ErrRandomnessFailure
	// ErrUnknownDomain: a group name is not present in a registry.
	ErrUnknownDomain = common.ErrUnknownDomain
)
