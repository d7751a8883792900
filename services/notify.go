package services

import "time"

type NotificationType string

const (
	NotifyGradingSubmitted NotificationType = "grading.submitted"
	NotifyGradingSucceeded NotificationType = "grading.succeeded"
	NotifyGradingFailed    NotificationType = "grading.failed"
	NotifyTopicGenerated   NotificationType = "topic.generated"
	NotifyTopicFailed      NotificationType = "topic.failed"
	NotifyVideoProgress    NotificationType = "video.progress"
)

// Notification is pushed to the presentation layer of one session
type Notification struct {
	Type      NotificationType `json:"type"`
	Kind      ErrorKind        `json:"kind,omitempty"`
	Message   string           `json:"message,omitempty"`
	Payload   any              `json:"payload,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Notifier delivers notifications to whoever listens on a session
type Notifier interface {
	Publish(sessionID string, n Notification)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, Notification) {}

func failureNotification(t NotificationType, err *Error) Notification {
	return Notification{Type: t, Kind: err.Kind, Message: err.Message}
}
