package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a user can see
type ErrorKind string

const (
	KindMissingCredential    ErrorKind = "missing_credential"
	KindEmptySubmission      ErrorKind = "empty_submission"
	KindInvalidInput         ErrorKind = "invalid_input"
	KindTransport            ErrorKind = "transport_error"
	KindProvider             ErrorKind = "provider_error"
	KindMalformedResponse    ErrorKind = "malformed_response"
	KindBusy                 ErrorKind = "busy"
	KindConfirmationRequired ErrorKind = "confirmation_required"
	KindNotFound             ErrorKind = "not_found"
)

// Error is the typed failure surfaced to the presentation layer. Message is
// safe to show to the user as-is.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of err, or "" when err is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

var (
	ErrMissingCredential = newError(KindMissingCredential, "Please enter your OpenAI API key first.")
	ErrEmptySubmission   = newError(KindEmptySubmission, "Please enter your text to grade.")
	ErrGradingBusy       = newError(KindBusy, "A grading request is already in progress.")
	ErrTopicBusy         = newError(KindBusy, "A practice topic is already being generated.")
)

// asUserError makes sure err is an *Error and fills an empty provider
// message with fallback.
func asUserError(err error, fallback string) *Error {
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	if e.Message != "" {
		return e
	}
	out := *e
	out.Message = fallback
	return &out
}

func malformed(format string, args ...any) *Error {
	return &Error{Kind: KindMalformedResponse, Message: fmt.Sprintf(format, args...)}
}
