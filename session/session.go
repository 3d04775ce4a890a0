// Package session hosts the verifier side of the interactive protocol for many
// concurrent provers. Each session holds one issued challenge, is addressed by a
// random ID and lives until it is verified, expires or is evicted.
package session

import (
	"sync"
	"time"

	"github.com/go-errors/errors"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/jonboulle/clockwork"
	"github.com/privacybydesign/schnorr"
	"github.com/privacybydesign/schnorr/big"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTTL         = 2 * time.Minute
	DefaultMaxSessions = 1024
)

// Logger receives session lifecycle events.
var Logger = logrus.StandardLogger()

type sessionError string

func (e sessionError) Error() string { return string(e) }

func (e sessionError) Unwrap() error { return schnorr.ErrProtocolState }

// Both errors also match schnorr.ErrProtocolState.
const (
	ErrUnknownSession = sessionError("unknown session")
	ErrSessionExpired = sessionError("session expired")
)

// ID identifies a session.
type ID = uuid.UUID

// Config parameterizes a Manager. Zero fields take their defaults.
type Config struct {
	TTL         time.Duration
	MaxSessions int
	Clock       clockwork.Clock
	// Options are passed to every InteractiveVerifier the manager creates.
	Options []schnorr.Option
}

type entry struct {
	verifier *schnorr.InteractiveVerifier
	expires  time.Time
}

// Manager keeps open sessions in an LRU cache. When full, the least recently
// used session is dropped.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	clock    clockwork.Clock
	opts     []schnorr.Option
	sessions *lru.Cache
}

// NewManager returns an empty manager. It fails with ErrInvalidParameter when
// TTL or MaxSessions is negative.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.TTL < 0 || cfg.MaxSessions < 0 {
		return nil, errors.WrapPrefix(schnorr.ErrInvalidParameter, "negative session limits", 0)
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSessions == 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	cache, err := lru.NewWithEvict(cfg.MaxSessions, func(key, _ interface{}) {
		Logger.WithField("session", key).Debug("session dropped")
	})
	if err != nil {
		return nil, err
	}
	return &Manager{
		ttl:      cfg.TTL,
		clock:    cfg.Clock,
		opts:     cfg.Options,
		sessions: cache,
	}, nil
}

// Open starts a session for st and returns its ID together with the challenge
// the prover has to answer.
func (m *Manager) Open(st schnorr.Statement) (ID, *big.Int, error) {
	v, err := schnorr.NewInteractiveVerifier(st, m.opts...)
	if err != nil {
		return uuid.Nil, nil, err
	}
	c, err := v.Challenge()
	if err != nil {
		return uuid.Nil, nil, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, nil, errors.WrapPrefix(schnorr.ErrRandomnessFailure, err.Error(), 0)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions.Add(id, &entry{verifier: v, expires: m.clock.Now().Add(m.ttl)})
	Logger.WithFields(logrus.Fields{"session": id, "group": st.Group.Name}).Debug("session opened")
	return id, c, nil
}

// Verify checks response s and commitment t against the challenge of session
// id. A well-formed response closes the session whatever its outcome; a
// malformed one is rejected with ErrInvalidParameter and leaves it open.
func (m *Manager) Verify(id ID, s, t *big.Int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	val, ok := m.sessions.Get(id)
	if !ok {
		return false, errors.WrapPrefix(ErrUnknownSession, id.String(), 0)
	}
	e := val.(*entry)
	if !m.clock.Now().Before(e.expires) {
		m.sessions.Remove(id)
		return false, errors.WrapPrefix(ErrSessionExpired, id.String(), 0)
	}

	valid, err := e.verifier.Verify(s, t)
	if err != nil {
		return false, err
	}
	m.sessions.Remove(id)
	Logger.WithFields(logrus.Fields{"session": id, "valid": valid}).Debug("session verified")
	return valid, nil
}

// Sweep drops every expired session and returns how many were dropped.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	n := 0
	for _, key := range m.sessions.Keys() {
		val, ok := m.sessions.Peek(key)
		if !ok {
			continue
		}
		if !now.Before(val.(*entry).expires) {
			m.sessions.Remove(key)
			n++
		}
	}
	return n
}

// Len returns the number of open sessions, expired ones included until swept.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
