package registry

import (
	"strings"
	"sync"

	"github.com/privacybydesign/schnorr"
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
)

// Builtin group names.
const (
	Toy13    = "toy-13"
	Toy23    = "toy-23"
	MODP1536 = "modp-1536"
	MODP2048 = "modp-2048"
)

// RFC 3526 moduli, both with generator 2.
const (
	modp1536Hex = `
ffffffffffffffffc90fdaa22168c234c4c6628b80dc1cd129024e088a67cc74
020bbea63b139b22514a08798e3404ddef9519b3cd3a431b302b0a6df25f1437
4fe1356d6d51c245e485b576625e7ec6f44c42e9a637ed6b0bff5cb6f406b7ed
ee386bfb5a899fa5ae9f24117c4b1fe649286651ece45b3dc2007cb8a163bf05
98da48361c55d39a69163fa8fd24cf5f83655d23dca3ad961c62f356208552bb
9ed529077096966d670c354e4abc9804f1746c08ca237327ffffffffffffffff`

	modp2048Hex = `
ffffffffffffffffc90fdaa22168c234c4c6628b80dc1cd129024e088a67cc74
020bbea63b139b22514a08798e3404ddef9519b3cd3a431b302b0a6df25f1437
4fe1356d6d51c245e485b576625e7ec6f44c42e9a637ed6b0bff5cb6f406b7ed
ee386bfb5a899fa5ae9f24117c4b1fe649286651ece45b3dc2007cb8a163bf05
98da48361c55d39a69163fa8fd24cf5f83655d23dca3ad961c62f356208552bb
9ed529077096966d670c354e4abc9804f1746c08ca18217c32905e462e36ce3b
e39e772c180e86039b2783a2ec07a28fb5c55df06f4c52c9de2bcbf695581718
3995497cea956ae515d2261898fa051015728e5a8aacaa68ffffffffffffffff`
)

type builtinGroup struct {
	name    string
	g       int64
	modulus string
}

var builtinGroups = []builtinGroup{
	{Toy13, 2, "13"},
	{Toy23, 5, "23"},
	{MODP1536, 2, "0x" + strings.Join(strings.Fields(modp1536Hex), "")},
	{MODP2048, 2, "0x" + strings.Join(strings.Fields(modp2048Hex), "")},
}

// Builtin returns a new registry holding the builtin groups.
func Builtin() (*Registry, error) {
	r := New()
	for _, b := range builtinGroups {
		p, ok := new(big.Int).SetString(b.modulus, 0)
		if !ok {
			return nil, common.InvalidParameter("builtin group %q: malformed modulus", b.name)
		}
		grp, err := schnorr.NewGroup(b.name, big.NewInt(b.g), p)
		if err != nil {
			return nil, err
		}
		if err = r.Register(grp); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry of builtin groups. It is built on first
// use.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Builtin()
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
