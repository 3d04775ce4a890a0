// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schnorr implements Schnorr proofs of knowledge of a discrete logarithm
// in the multiplicative group Z_p^* of a prime p: given public (G, P, Y) a prover
// convinces a verifier that it knows x with Y = G^x mod P, without revealing x.
//
// Two protocol shapes are offered. FiatShamir produces and verifies
// non-interactive proofs (T, S) whose challenge is derived from a hash of the
// transcript. InteractiveProver and InteractiveVerifier run the three-move
// commitment/challenge/response protocol as two small state machines.
//
// For a PairStatement (Y = G^x, Z = H^z) DLEQ proves x = z, Conjunction proves
// knowledge of both exponents and Disjunction of at least one of them.
//
// Named groups are available from the registry package; the session package
// hosts interactive verifiers for many concurrent provers.
package schnorr
