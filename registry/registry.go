// Package registry maps group names to validated domain parameters.
//
// A Registry starts out empty (New) or with the builtin groups (Builtin), and
// can be extended programmatically or from TOML files of the form
//
//	[[group]]
//	name = "toy-13"
//	generator = "2"
//	modulus = "13"
//
// where integers are decimal or 0x-prefixed hexadecimal strings.
package registry

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-errors/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/privacybydesign/schnorr"
	"github.com/privacybydesign/schnorr/big"
	"github.com/privacybydesign/schnorr/internal/common"
)

// Registry is a read-mostly, concurrency-safe map of named groups.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]*schnorr.Group
}

type (
	groupFile struct {
		Group []groupEntry `toml:"group"`
	}

	groupEntry struct {
		Name      string `toml:"name"`
		Generator string `toml:"generator"`
		Modulus   string `toml:"modulus"`
	}
)

// New returns an empty registry.
func New() *Registry {
	return &Registry{groups: make(map[string]*schnorr.Group)}
}

// Register adds grp under grp.Name. Names are unique.
func (r *Registry) Register(grp *schnorr.Group) error {
	if grp == nil || grp.Name == "" {
		return common.InvalidParameter("cannot register unnamed group")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[grp.Name]; ok {
		return common.InvalidParameter("group %q already registered", grp.Name)
	}
	r.groups[grp.Name] = grp
	return nil
}

// Lookup returns the group registered under name, or ErrUnknownDomain.
func (r *Registry) Lookup(name string) (*schnorr.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	grp, ok := r.groups[name]
	if !ok {
		return nil, common.Wrap(common.ErrUnknownDomain, "group %q", name)
	}
	return grp, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads TOML group definitions from rd and registers every valid one.
// All problems are collected and returned together.
func (r *Registry) Load(rd io.Reader) error {
	var file groupFile
	md, err := toml.NewDecoder(rd).Decode(&file)
	if err != nil {
		return errors.WrapPrefix(err, "parsing group file", 0)
	}

	var result *multierror.Error
	for _, key := range md.Undecoded() {
		result = multierror.Append(result, common.InvalidParameter("unknown key %q", key.String()))
	}
	for i, entry := range file.Group {
		grp, err := entry.build()
		if err != nil {
			result = multierror.Append(result, errors.WrapPrefix(err, fmt.Sprintf("group entry %d", i), 0))
			continue
		}
		if err = r.Register(grp); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// LoadFile is Load for the file at path.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapPrefix(err, "opening group file", 0)
	}
	defer common.Close(f)
	return r.Load(f)
}

func (e groupEntry) build() (*schnorr.Group, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, common.InvalidParameter("missing name")
	}
	g, err := parseInt(e.Generator)
	if err != nil {
		return nil, err
	}
	p, err := parseInt(e.Modulus)
	if err != nil {
		return nil, err
	}
	return schnorr.NewGroup(e.Name, g, p)
}

func parseInt(s string) (*big.Int, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return nil, common.InvalidParameter("missing integer")
	}
	i, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, common.InvalidParameter("malformed integer %q", s)
	}
	return i, nil
}
