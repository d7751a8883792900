package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"writeassess/internal/logger"
	"writeassess/models"
)

// CredentialSlot is the name of the durable slot holding the API key
const CredentialSlot = "openai_api_key"

// CredentialStore persists one API key per session. Load returns "" when the
// slot is empty.
type CredentialStore interface {
	Load(ctx context.Context, sessionID string) (string, error)
	Save(ctx context.Context, sessionID, apiKey string) error
	Clear(ctx context.Context, sessionID string) error
}

// Session is the state one browser works against: a credential, the
// selected text type, the grading orchestrator and practice mode.
type Session struct {
	ID         string
	Assessment *Assessment
	Practice   *Practice

	store CredentialStore

	mu       sync.RWMutex
	apiKey   string
	textType models.TextType
	lastSeen time.Time
}

// SessionSnapshot is what the presentation layer renders on load
type SessionSnapshot struct {
	ID         string              `json:"id"`
	HasAPIKey  bool                `json:"hasApiKey"`
	TextType   models.TextTypeInfo `json:"textType"`
	Assessment AssessmentSnapshot  `json:"assessment"`
	Practice   PracticeSnapshot    `json:"practice"`
}

func (s *Session) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

func (s *Session) HasAPIKey() bool {
	return s.APIKey() != ""
}

// SetAPIKey stores the trimmed key in memory and in the durable slot. An
// empty key clears the slot.
func (s *Session) SetAPIKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	var err error
	if apiKey == "" {
		err = s.store.Clear(ctx, s.ID)
	} else {
		err = s.store.Save(ctx, s.ID, apiKey)
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.apiKey = apiKey
	s.mu.Unlock()
	return nil
}

func (s *Session) ClearAPIKey(ctx context.Context) error {
	return s.SetAPIKey(ctx, "")
}

func (s *Session) TextType() models.TextType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textType
}

func (s *Session) SetTextType(t models.TextType) error {
	if !t.Valid() {
		return newError(KindInvalidInput, "Please choose a valid text type.")
	}
	s.mu.Lock()
	s.textType = t
	s.mu.Unlock()
	return nil
}

// Grade grades text as the session's selected text type
func (s *Session) Grade(ctx context.Context, text string) (*models.GradingResult, error) {
	return s.Assessment.Grade(ctx, s.APIKey(), s.TextType(), text)
}

// NewTopic asks practice mode for a topic fitting the selected text type
func (s *Session) NewTopic(ctx context.Context) (*models.PracticeTopic, error) {
	return s.Practice.NewTopic(ctx, s.APIKey(), s.TextType())
}

func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:         s.ID,
		HasAPIKey:  s.HasAPIKey(),
		TextType:   s.TextType().Info(),
		Assessment: s.Assessment.Snapshot(),
		Practice:   s.Practice.Snapshot(),
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

type ManagerOption func(*SessionManager)

// WithPicker overrides the random video picker
func WithPicker(pick func(n int) int) ManagerOption {
	return func(m *SessionManager) { m.pick = pick }
}

// WithClock overrides time.Now for idle tracking
func WithClock(now func() time.Time) ManagerOption {
	return func(m *SessionManager) { m.now = now }
}

// SessionManager owns every live session
type SessionManager struct {
	completer Completer
	store     CredentialStore
	notifier  Notifier
	log       *logger.Logger
	pick      func(n int) int
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(completer Completer, store CredentialStore, notifier Notifier, log *logger.Logger, opts ...ManagerOption) *SessionManager {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	m := &SessionManager{
		completer: completer,
		store:     store,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open returns the session for id, creating it when needed. An id that is
// not a UUID is replaced by a fresh one. A new session reads its API key from
// the credential store once; a store failure is logged and the session
// starts without a key.
func (m *SessionManager) Open(ctx context.Context, id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	m.mu.Lock()
	if s, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		s.touch(m.now())
		return s, false
	}
	m.mu.Unlock()

	apiKey, err := m.store.Load(ctx, id)
	if err != nil {
		m.log.Warn("failed to load stored credential", "session_id", id, "error", err.Error())
		apiKey = ""
	}
	s := m.newSession(id, apiKey)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		existing.touch(m.now())
		return existing, false
	}
	m.sessions[id] = s
	m.log.Info("session opened", "session_id", id, "credential_present", apiKey != "")
	return s, true
}

func (m *SessionManager) newSession(id, apiKey string) *Session {
	notify := func(n Notification) {
		if n.Timestamp.IsZero() {
			n.Timestamp = m.now()
		}
		m.notifier.Publish(id, n)
	}
	return &Session{
		ID:         id,
		Assessment: NewAssessment(m.completer, m.log.With("session_id", id), notify),
		Practice:   NewPractice(m.completer, m.log.With("session_id", id), notify, m.pick),
		store:      m.store,
		apiKey:     strings.TrimSpace(apiKey),
		textType:   models.DefaultTextType,
		lastSeen:   m.now(),
	}
}

// Get returns a live session without creating one
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		s.touch(m.now())
	}
	return s, ok
}

func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than idle. Their stored credentials
// are kept so a returning browser gets its key back.
func (m *SessionManager) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info("swept idle sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done
func (m *SessionManager) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(idle)
		}
	}
}
