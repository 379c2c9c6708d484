package services

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ai-resume-generator/internal/models"
)

// Slot identifies an independent extraction cache within a session.
type Slot string

const (
	SlotResume         Slot = "resume"
	SlotJobDescription Slot = "job_description"
)

// Fingerprint derives a content identifier from the uploaded bytes. A stable
// filename with changed bytes still yields a new fingerprint.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum[:])
}

type cacheEntry struct {
	fingerprint string
	text        string
}

// Session holds one user's interaction state: form field values, per-slot
// extraction caches, and the last generation outcome. It is never shared
// across sessions.
type Session struct {
	ID             uuid.UUID
	Candidate      models.CandidateInfo
	JobDescription string
	LastOutcome    *models.GenerationOutcome
	CreatedAt      time.Time

	lastSeen time.Time
	caches   map[Slot]cacheEntry
}

// CachedExtraction returns the cached text for the slot iff the fingerprint
// matches the last processed file.
func (s *Session) CachedExtraction(slot Slot, fingerprint string) (string, bool) {
	entry, ok := s.caches[slot]
	if !ok || entry.fingerprint != fingerprint {
		return "", false
	}
	return entry.text, true
}

// StoreExtraction replaces the slot's cache entry.
func (s *Session) StoreExtraction(slot Slot, fingerprint, text string) {
	s.caches[slot] = cacheEntry{fingerprint: fingerprint, text: text}
}

type SessionStore interface {
	Create() *Session
	Get(id uuid.UUID) (*Session, error)
	Start()
	Stop()
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	ttl           time.Duration
	sweepInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
	logger        *zap.Logger
}

func NewSessionStore(ttl, sweepInterval time.Duration, logger *zap.Logger) SessionStore {
	return &sessionStore{
		sessions:      make(map[uuid.UUID]*Session),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		stopChan:      make(chan struct{}),
		logger:        logger,
	}
}

// Create implements SessionStore.
func (st *sessionStore) Create() *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		lastSeen:  now,
		caches:    make(map[Slot]cacheEntry),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	st.logger.Debug("session created", zap.String("session_id", session.ID.String()))
	return session
}

// Get implements SessionStore.
func (st *sessionStore) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}

	session.lastSeen = time.Now()
	return session, nil
}

// Start launches the janitor that evicts sessions idle past the TTL.
func (st *sessionStore) Start() {
	st.wg.Add(1)
	go st.sweepLoop()
}

// Stop implements SessionStore.
func (st *sessionStore) Stop() {
	close(st.stopChan)
	st.wg.Wait()
}

func (st *sessionStore) sweepLoop() {
	defer st.wg.Done()

	ticker := time.NewTicker(st.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stopChan:
			return
		case <-ticker.C:
			expired := st.sweep(time.Now())
			if expired > 0 {
				st.logger.Info("expired idle sessions", zap.Int("count", expired))
			}
		}
	}
}

func (st *sessionStore) sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	expired := 0
	for id, session := range st.sessions {
		if now.Sub(session.lastSeen) > st.ttl {
			delete(st.sessions, id)
			expired++
		}
	}
	return expired
}
