package services

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
)

// stubCompleter answers every request with respond and counts calls
type stubCompleter struct {
	calls   atomic.Int32
	mu      sync.Mutex
	last    CompletionRequest
	lastKey string
	respond func(req CompletionRequest) (string, error)
}

func (s *stubCompleter) Complete(_ context.Context, apiKey string, req CompletionRequest) (string, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.last = req
	s.lastKey = apiKey
	s.mu.Unlock()
	return s.respond(req)
}

func (s *stubCompleter) lastRequest() (string, CompletionRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastKey, s.last
}

func replyWith(content string) *stubCompleter {
	return &stubCompleter{respond: func(CompletionRequest) (string, error) { return content, nil }}
}

func failWith(err error) *stubCompleter {
	return &stubCompleter{respond: func(CompletionRequest) (string, error) { return "", err }}
}

func gradingJSON(content, structure, language int) string {
	payload := map[string]any{
		"contentScore":          content,
		"contentFeedback":       "Covers the task.",
		"contentStrengths":      []string{"All sections present"},
		"contentImprovements":   []string{"Add more detail"},
		"structureScore":        structure,
		"structureFeedback":     "Mostly in order.",
		"structureStrengths":    []string{"Clear headings"},
		"structureImprovements": []string{},
		"languageScore":         language,
		"languageFeedback":      "Some tense slips.",
		"languageStrengths":     []string{"Passive voice in Method"},
		"languageImprovements":  []string{"Check articles"},
		"totalScore":            content + structure + language,
		"overallFeedback":       "A solid report.",
		"wordCount":             212,
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events map[string][]Notification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{events: make(map[string][]Notification)}
}

func (r *recordingNotifier) Publish(sessionID string, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[sessionID] = append(r.events[sessionID], n)
}

func (r *recordingNotifier) types(sessionID string) []NotificationType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]NotificationType, 0, len(r.events[sessionID]))
	for _, n := range r.events[sessionID] {
		out = append(out, n.Type)
	}
	return out
}
