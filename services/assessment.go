package services

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"writeassess/internal/logger"
	"writeassess/models"
)

type AssessmentState string

const (
	StateIdle       AssessmentState = "idle"
	StateSubmitting AssessmentState = "submitting"
	StateSucceeded  AssessmentState = "succeeded"
	StateFailed     AssessmentState = "failed"
)

const gradeFallbackMessage = "Failed to grade text"

// ErrorView is the JSON form of a surfaced error
type ErrorView struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// AssessmentSnapshot is a consistent read of the orchestrator state
type AssessmentSnapshot struct {
	State  AssessmentState        `json:"state"`
	Result *models.GradingSummary `json:"result,omitempty"`
	Error  *ErrorView             `json:"error,omitempty"`
}

// Assessment drives one session's grading requests. At most one request is
// in flight; the current result is only replaced by a successfully parsed one.
type Assessment struct {
	completer Completer
	log       *logger.Logger
	notify    func(Notification)
	inFlight  *semaphore.Weighted

	mu      sync.Mutex
	state   AssessmentState
	result  *models.GradingResult
	lastErr *Error
}

func NewAssessment(completer Completer, log *logger.Logger, notify func(Notification)) *Assessment {
	if log == nil {
		log = logger.Nop()
	}
	if notify == nil {
		notify = func(Notification) {}
	}
	return &Assessment{
		completer: completer,
		log:       log,
		notify:    notify,
		inFlight:  semaphore.NewWeighted(1),
		state:     StateIdle,
	}
}

// Grade validates the submission, sends it to the model and stores the
// parsed result. Validation failures leave the state unchanged. A call made
// while another is pending fails with KindBusy without sending anything.
// The request is detached from ctx cancellation and always runs to completion.
func (a *Assessment) Grade(ctx context.Context, apiKey string, textType models.TextType, text string) (*models.GradingResult, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingCredential
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptySubmission
	}
	if !textType.Valid() {
		return nil, newError(KindInvalidInput, "Please choose a valid text type.")
	}
	if !a.inFlight.TryAcquire(1) {
		return nil, ErrGradingBusy
	}
	defer a.inFlight.Release(1)

	a.mu.Lock()
	a.state = StateSubmitting
	a.lastErr = nil
	a.mu.Unlock()

	words := CountWords(text)
	a.notify(Notification{
		Type:    NotifyGradingSubmitted,
		Payload: map[string]any{"textType": textType, "wordCount": words},
	})
	a.log.Info("grading submission", "text_type", textType, "words", words)

	system, user := BuildGradingPrompt(textType, text)
	content, err := a.completer.Complete(context.WithoutCancel(ctx), apiKey, CompletionRequest{
		System:      system,
		User:        user,
		Temperature: GradingTemperature,
	})
	var result *models.GradingResult
	if err == nil {
		result, err = DecodeGradingResult(content, a.log)
	}
	if err != nil {
		userErr := asUserError(err, gradeFallbackMessage)
		a.log.Warn("grading failed", "kind", userErr.Kind, "status", userErr.Status, "error", err.Error())

		a.mu.Lock()
		a.state = StateFailed
		a.lastErr = userErr
		a.mu.Unlock()

		a.notify(failureNotification(NotifyGradingFailed, userErr))
		return nil, userErr
	}

	a.mu.Lock()
	a.state = StateSucceeded
	a.result = result
	a.mu.Unlock()

	a.notify(Notification{Type: NotifyGradingSucceeded, Payload: result.Summarize()})
	return result, nil
}

// Result returns the current result, or nil
func (a *Assessment) Result() *models.GradingResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// Clear drops the current result and error. A pending request is not
// cancelled; its result will still be stored when it arrives.
func (a *Assessment) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.result = nil
	a.lastErr = nil
	if a.state != StateSubmitting {
		a.state = StateIdle
	}
}

func (a *Assessment) Snapshot() AssessmentSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := AssessmentSnapshot{State: a.state}
	if a.result != nil {
		summary := a.result.Summarize()
		snap.Result = &summary
	}
	if a.lastErr != nil {
		snap.Error = &ErrorView{Kind: a.lastErr.Kind, Message: a.lastErr.Message}
	}
	return snap
}
