package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"writeassess/models"
)

type fakeStore struct {
	mu      sync.Mutex
	keys    map[string]string
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{keys: make(map[string]string)}
}

func (f *fakeStore) Load(_ context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return "", f.loadErr
	}
	return f.keys[id], nil
}

func (f *fakeStore) Save(_ context.Context, id, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.keys[id] = key
	return nil
}

func (f *fakeStore) Clear(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, id)
	return nil
}

func TestOpenCreatesSession(t *testing.T) {
	store := newFakeStore()
	m := NewSessionManager(replyWith(""), store, nil, nil)

	s, created := m.Open(context.Background(), "")
	assert.True(t, created)
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.LabReport, s.TextType())
	assert.False(t, s.HasAPIKey())

	again, created := m.Open(context.Background(), s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)
	assert.Equal(t, 1, store.loads)
	assert.Equal(t, 1, m.Len())

	_, created = m.Open(context.Background(), "not-a-uuid")
	assert.True(t, created)
	assert.Equal(t, 2, m.Len())
}

func TestOpenRestoresStoredCredential(t *testing.T) {
	store := newFakeStore()
	id := uuid.NewString()
	store.keys[id] = "sk-stored"

	m := NewSessionManager(replyWith(""), store, nil, nil)
	s, created := m.Open(context.Background(), id)
	assert.True(t, created)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "sk-stored", s.APIKey())
}

func TestOpenSurvivesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("connection refused")
	m := NewSessionManager(replyWith(""), store, nil, nil)

	s, created := m.Open(context.Background(), "")
	assert.True(t, created)
	assert.False(t, s.HasAPIKey())
}

func TestSetAPIKey(t *testing.T) {
	store := newFakeStore()
	m := NewSessionManager(replyWith(""), store, nil, nil)
	s, _ := m.Open(context.Background(), "")

	require.NoError(t, s.SetAPIKey(context.Background(), "  sk-new \n"))
	assert.Equal(t, "sk-new", s.APIKey())
	assert.Equal(t, "sk-new", store.keys[s.ID])

	require.NoError(t, s.ClearAPIKey(context.Background()))
	assert.False(t, s.HasAPIKey())
	assert.NotContains(t, store.keys, s.ID)

	store.saveErr = errors.New("write failed")
	assert.Error(t, s.SetAPIKey(context.Background(), "sk-other"))
	assert.False(t, s.HasAPIKey())
}

func TestSetTextType(t *testing.T) {
	m := NewSessionManager(replyWith(""), newFakeStore(), nil, nil)
	s, _ := m.Open(context.Background(), "")

	require.NoError(t, s.SetTextType(models.ProgressReport))
	assert.Equal(t, models.ProgressReport, s.TextType())
	assert.True(t, IsKind(s.SetTextType("Essay"), KindInvalidInput))
	assert.Equal(t, models.ProgressReport, s.TextType())
}

func TestSessionGradeUsesSelection(t *testing.T) {
	stub := replyWith(gradingJSON(5, 5, 5))
	notifier := newRecordingNotifier()
	m := NewSessionManager(stub, newFakeStore(), notifier, nil)
	s, _ := m.Open(context.Background(), "")

	_, err := s.Grade(context.Background(), "memo text")
	assert.Equal(t, ErrMissingCredential, err)

	require.NoError(t, s.SetAPIKey(context.Background(), "sk-x"))
	require.NoError(t, s.SetTextType(models.ProgressReport))
	r, err := s.Grade(context.Background(), "memo text")
	require.NoError(t, err)
	assert.Equal(t, 15, r.TotalScore)

	_, req := stub.lastRequest()
	assert.Contains(t, req.User, "Progress Report")
	assert.Equal(t, []NotificationType{NotifyGradingSubmitted, NotifyGradingSucceeded}, notifier.types(s.ID))
	for _, n := range notifier.events[s.ID] {
		assert.False(t, n.Timestamp.IsZero())
	}

	snap := s.Snapshot()
	assert.True(t, snap.HasAPIKey)
	assert.Equal(t, "progress-report", snap.TextType.Slug)
	assert.Equal(t, StateSucceeded, snap.Assessment.State)
}

func TestSessionNewTopicUsesSelection(t *testing.T) {
	m := NewSessionManager(replyWith(topicJSON), newFakeStore(), nil, nil, WithPicker(fixedPick(0)))
	s, _ := m.Open(context.Background(), "")
	require.NoError(t, s.SetTextType(models.Instructions))

	topic, err := s.NewTopic(context.Background())
	require.NoError(t, err)
	require.NotNil(t, topic.Video)
	assert.Equal(t, "qFjnW3A4PpQ", topic.Video.ID)
}

func TestSweep(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := newFakeStore()
	m := NewSessionManager(replyWith(""), store, nil, nil, WithClock(clock))

	stale, _ := m.Open(context.Background(), "")
	require.NoError(t, stale.SetAPIKey(context.Background(), "sk-keep"))
	now = now.Add(2 * time.Hour)
	fresh, _ := m.Open(context.Background(), "")

	assert.Equal(t, 1, m.Sweep(time.Hour))
	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
	assert.Equal(t, "sk-keep", store.keys[stale.ID])

	back, created := m.Open(context.Background(), stale.ID)
	assert.True(t, created)
	assert.Equal(t, "sk-keep", back.APIKey())
}
