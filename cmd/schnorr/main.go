package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/schnorr"
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/registry"
	"github.com/privacybydesign/schnorr/session"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

var errRejected = errors.New("proof rejected")

// Automatically set through -ldflags
var (
	version   = "master"
	gitCommit = "none"
)

var (
	groupFlag = &cli.StringFlag{
		Name:  "group",
		Usage: "Name of the group to work in",
		Value: registry.MODP2048,
	}
	groupsFileFlag = &cli.StringFlag{
		Name:  "groups-file",
		Usage: "TOML file with additional [[group]] definitions",
	}
	secretFlag = &cli.StringFlag{
		Name:     "secret",
		Usage:    "Witness x, decimal or 0x-prefixed hex",
		Required: true,
	}
	publicFlag = &cli.StringFlag{
		Name:     "public",
		Usage:    "Public value y = g^x mod p, decimal or 0x-prefixed hex",
		Required: true,
	}
	proofFlag = &cli.StringFlag{
		Name:     "proof",
		Usage:    "Proof as printed by prove: hex CBOR or JSON",
		Required: true,
	}
	hashFlag = &cli.StringFlag{
		Name:  "hash",
		Usage: "Hash for the Fiat-Shamir challenge (sha2-256, sha2-512, sha3-256)",
		Value: "sha2-256",
	}
	challengeFlag = &cli.StringFlag{
		Name:  "challenge",
		Usage: "Challenge derivation: reduced or bytesum",
		Value: "reduced",
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the proof as JSON instead of hex CBOR",
	}
	roundsFlag = &cli.IntFlag{
		Name:  "rounds",
		Usage: "Number of interactive rounds to run",
		Value: 1,
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log protocol steps",
	}
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "schnorr %v (commit %v)\n", version, gitCommit)
	}
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "schnorr",
		Version:  version,
		Usage:    "prove and verify knowledge of discrete logarithms",
		Flags:    []cli.Flag{verboseFlag, groupsFileFlag},
		Before:   setup,
		Commands: []*cli.Command{proveCmd, verifyCmd, interactiveCmd, groupsCmd},
	}
}

func setup(cctx *cli.Context) error {
	level := logrus.WarnLevel
	if cctx.Bool(verboseFlag.Name) {
		level = logrus.TraceLevel
	}
	schnorr.Logger.SetLevel(level)
	session.Logger.SetLevel(level)
	return nil
}

var proveCmd = &cli.Command{
	Name:  "prove",
	Usage: "produce a non-interactive proof of knowledge of the secret",
	Flags: []cli.Flag{groupFlag, secretFlag, hashFlag, challengeFlag, jsonFlag},
	Action: func(cctx *cli.Context) error {
		grp, err := lookupGroup(cctx)
		if err != nil {
			return err
		}
		x, err := parseInt(cctx.String(secretFlag.Name))
		if err != nil {
			return err
		}
		deriver, err := deriverFromFlags(cctx)
		if err != nil {
			return err
		}
		y, err := schnorr.PublicValue(grp, x)
		if err != nil {
			return err
		}
		st, err := schnorr.NewStatement(grp, y)
		if err != nil {
			return err
		}
		fs, err := schnorr.NewFiatShamir(st, x,
			schnorr.WithChallengeDeriver(deriver),
			schnorr.WithRandomSource(schnorr.SystemRandomSource()))
		if err != nil {
			return err
		}
		proof, err := fs.GenerateProof()
		if err != nil {
			return err
		}

		var encoded string
		if cctx.Bool(jsonFlag.Name) {
			bts, err := json.Marshal(proof)
			if err != nil {
				return err
			}
			encoded = string(bts)
		} else {
			bts, err := proof.MarshalBinary()
			if err != nil {
				return err
			}
			encoded = hex.EncodeToString(bts)
		}
		fmt.Fprintf(cctx.App.Writer, "public: %v\nproof: %s\n", y, encoded)
		return nil
	},
}

var verifyCmd = &cli.Command{
	Name:  "verify",
	Usage: "check a non-interactive proof against a public value",
	Flags: []cli.Flag{groupFlag, publicFlag, proofFlag, hashFlag, challengeFlag},
	Action: func(cctx *cli.Context) error {
		grp, err := lookupGroup(cctx)
		if err != nil {
			return err
		}
		y, err := parseInt(cctx.String(publicFlag.Name))
		if err != nil {
			return err
		}
		proof, err := parseProof(cctx.String(proofFlag.Name))
		if err != nil {
			return err
		}
		deriver, err := deriverFromFlags(cctx)
		if err != nil {
			return err
		}
		st, err := schnorr.NewStatement(grp, y)
		if err != nil {
			return err
		}
		fs, err := schnorr.NewFiatShamir(st, nil, schnorr.WithChallengeDeriver(deriver))
		if err != nil {
			return err
		}
		ok, err := fs.Verify(proof)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, ok)
		if !ok {
			return errRejected
		}
		return nil
	},
}

var interactiveCmd = &cli.Command{
	Name:  "interactive",
	Usage: "run the three-move protocol between an in-process prover and verifier",
	Flags: []cli.Flag{groupFlag, secretFlag, roundsFlag},
	Action: func(cctx *cli.Context) error {
		grp, err := lookupGroup(cctx)
		if err != nil {
			return err
		}
		x, err := parseInt(cctx.String(secretFlag.Name))
		if err != nil {
			return err
		}
		y, err := schnorr.PublicValue(grp, x)
		if err != nil {
			return err
		}
		st, err := schnorr.NewStatement(grp, y)
		if err != nil {
			return err
		}
		rnd := schnorr.WithRandomSource(schnorr.SystemRandomSource())
		prover, err := schnorr.NewInteractiveProver(st, x, rnd)
		if err != nil {
			return err
		}
		mgr, err := session.NewManager(session.Config{Options: []schnorr.Option{rnd}})
		if err != nil {
			return err
		}

		for i := 0; i < cctx.Int(roundsFlag.Name); i++ {
			t, err := prover.Commitment()
			if err != nil {
				return err
			}
			id, c, err := mgr.Open(st)
			if err != nil {
				return err
			}
			s, err := prover.Response(c)
			if err != nil {
				return err
			}
			ok, err := mgr.Verify(id, s, t)
			if err != nil {
				return err
			}
			fmt.Fprintf(cctx.App.Writer, "round %d: t=%v c=%v s=%v %v\n", i+1, t, c, s, ok)
			if !ok {
				return errRejected
			}
		}
		return nil
	},
}

var groupsCmd = &cli.Command{
	Name:  "groups",
	Usage: "list the known groups",
	Action: func(cctx *cli.Context) error {
		reg, err := loadRegistry(cctx)
		if err != nil {
			return err
		}
		for _, name := range reg.Names() {
			grp, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cctx.App.Writer, "%-12s %5d bits  g=%v\n", name, grp.P.BitLen(), grp.G)
		}
		return nil
	},
}

func loadRegistry(cctx *cli.Context) (*registry.Registry, error) {
	path := cctx.String(groupsFileFlag.Name)
	if path == "" {
		return registry.Default(), nil
	}
	reg, err := registry.Builtin()
	if err != nil {
		return nil, err
	}
	if err = reg.LoadFile(path); err != nil {
		return nil, err
	}
	return reg, nil
}

func lookupGroup(cctx *cli.Context) (*schnorr.Group, error) {
	reg, err := loadRegistry(cctx)
	if err != nil {
		return nil, err
	}
	return reg.Lookup(cctx.String(groupFlag.Name))
}

func deriverFromFlags(cctx *cli.Context) (schnorr.ChallengeDeriver, error) {
	h, err := schnorr.HashByName(cctx.String(hashFlag.Name))
	if err != nil {
		return nil, err
	}
	return schnorr.ChallengeByName(cctx.String(challengeFlag.Name), h)
}

func parseInt(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, errors.WrapPrefix(schnorr.ErrInvalidParameter, fmt.Sprintf("malformed integer %q", s), 0)
	}
	return i, nil
}

func parseProof(s string) (*schnorr.Proof, error) {
	s = strings.TrimSpace(s)
	proof := new(schnorr.Proof)
	if strings.HasPrefix(s, "{") {
		if err := json.Unmarshal([]byte(s), proof); err != nil {
			return nil, errors.WrapPrefix(err, "decoding JSON proof", 0)
		}
		return proof, nil
	}
	bts, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.WrapPrefix(err, "decoding hex proof", 0)
	}
	if err = proof.UnmarshalBinary(bts); err != nil {
		return nil, err
	}
	return proof, nil
}
