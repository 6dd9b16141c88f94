package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/model"
	redisclient "github.com/openummah/masjidmap/internal/redis"
	"github.com/openummah/masjidmap/internal/sheet"
)

const snapshotTTL = 24 * time.Hour

// Manager keeps live sessions in memory and mirrors lightweight snapshots
// into Redis for introspection. The dataset is the one loaded at startup;
// sessions never re-fetch it.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	mosques []model.Mosque
	offsets sheet.Offsets
}

func NewManager(mosques []model.Mosque, offsets sheet.Offsets) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		mosques:  mosques,
		offsets:  offsets,
	}
}

// Create opens a new screen session and returns it.
func (m *Manager) Create() *Session {
	token := newToken()
	s := New(token, m.mosques, m.offsets, nil)

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()

	m.saveSnapshot(s)
	return s
}

func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

// Remove closes a session and drops its cached snapshot. Best effort on the
// Redis side: an unreachable cache leaves the snapshot to expire via TTL.
func (m *Manager) Remove(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisclient.DeleteSessionSnapshot(ctx, token); err != nil {
		log.Warn().Err(err).Str("token", token).Msg("failed to drop session snapshot")
	}
}

// Touch refreshes the Redis snapshot after a state change. Best effort:
// snapshot loss only affects the admin introspection endpoint.
func (m *Manager) Touch(s *Session) {
	m.saveSnapshot(s)
}

func (m *Manager) saveSnapshot(s *Session) {
	snap := s.Snapshot()
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Str("token", s.Token()).Msg("failed to marshal session snapshot")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisclient.SaveSessionSnapshot(ctx, s.Token(), payload, snapshotTTL); err != nil {
		log.Warn().Err(err).Str("token", s.Token()).Msg("failed to cache session snapshot")
	}
}

// LoadSnapshot reads a cached snapshot, live or expired-from-memory.
func LoadSnapshot(ctx context.Context, token string) (Snapshot, error) {
	payload, err := redisclient.GetSessionSnapshot(ctx, token)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func newToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
