package services

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"writeassess/catalog"
	"writeassess/internal/logger"
	"writeassess/models"
)

var errNoVideo = newError(KindInvalidInput, "No video exercise is in progress.")

// PracticeSnapshot is a consistent read of practice mode
type PracticeSnapshot struct {
	Topic      *models.PracticeTopic `json:"topic,omitempty"`
	Video      *VideoExercise        `json:"video,omitempty"`
	Generating bool                  `json:"generating"`
}

// Practice produces practice topics for one session, either by asking the
// model or by drawing a video exercise from the catalog.
type Practice struct {
	completer Completer
	log       *logger.Logger
	notify    func(Notification)
	pick      func(n int) int
	busy      *semaphore.Weighted

	mu         sync.Mutex
	topic      *models.PracticeTopic
	video      *VideoExercise
	generating bool
}

// NewPractice builds practice mode. pick returns a uniform index in [0,n);
// nil uses math/rand/v2.
func NewPractice(completer Completer, log *logger.Logger, notify func(Notification), pick func(n int) int) *Practice {
	if log == nil {
		log = logger.Nop()
	}
	if notify == nil {
		notify = func(Notification) {}
	}
	if pick == nil {
		pick = rand.IntN
	}
	return &Practice{
		completer: completer,
		log:       log,
		notify:    notify,
		pick:      pick,
		busy:      semaphore.NewWeighted(1),
	}
}

// NewTopic picks the path that fits the text type: Instructions gets a video
// exercise, the other types a generated topic.
func (p *Practice) NewTopic(ctx context.Context, apiKey string, textType models.TextType) (*models.PracticeTopic, error) {
	if textType == models.Instructions {
		topic, _, err := p.StartVideoExercise()
		return topic, err
	}
	return p.GenerateTopic(ctx, apiKey, textType)
}

// GenerateTopic asks the model for a new practice topic. A failure leaves
// the current topic untouched; there is no retry.
func (p *Practice) GenerateTopic(ctx context.Context, apiKey string, textType models.TextType) (*models.PracticeTopic, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingCredential
	}
	prompt := BuildTopicPrompt(textType)
	if prompt == "" {
		return nil, newError(KindInvalidInput, "Topic generation is not available for this text type; use the video exercise.")
	}
	if !p.busy.TryAcquire(1) {
		return nil, ErrTopicBusy
	}
	defer p.busy.Release(1)

	p.setGenerating(true)
	defer p.setGenerating(false)

	content, err := p.completer.Complete(context.WithoutCancel(ctx), apiKey, CompletionRequest{
		System:      TopicSystemPrompt,
		User:        prompt,
		Temperature: TopicTemperature,
	})
	var topic *models.PracticeTopic
	if err == nil {
		topic, err = DecodePracticeTopic(content)
	}
	if err != nil {
		userErr := asUserError(err, statusFallback(err))
		p.log.Warn("topic generation failed", "text_type", textType, "kind", userErr.Kind, "error", err.Error())
		p.notify(failureNotification(NotifyTopicFailed, userErr))
		return nil, userErr
	}

	p.mu.Lock()
	p.topic = topic
	p.video = nil
	p.mu.Unlock()

	p.notify(Notification{Type: NotifyTopicGenerated, Payload: topic})
	return topic, nil
}

// StartVideoExercise draws a video uniformly at random and resets the
// viewer: zero views, empty notes, open.
func (p *Practice) StartVideoExercise() (*models.PracticeTopic, VideoExercise, error) {
	if !p.busy.TryAcquire(1) {
		return nil, VideoExercise{}, ErrTopicBusy
	}
	defer p.busy.Release(1)

	videos := catalog.Videos()
	v := videos[p.pick(len(videos))]
	topic := videoTopic(v)
	exercise := newVideoExercise(v)

	p.mu.Lock()
	p.topic = topic
	p.video = exercise
	snapshot := *exercise
	p.mu.Unlock()

	p.notify(Notification{Type: NotifyTopicGenerated, Payload: topic})
	return topic, snapshot, nil
}

// PlaybackEnded records one completed viewing of the current video
func (p *Practice) PlaybackEnded() (VideoProgress, error) {
	p.mu.Lock()
	if p.video == nil || !p.video.Open {
		p.mu.Unlock()
		return VideoProgress{}, errNoVideo
	}
	progress := p.video.recordPlayback()
	p.mu.Unlock()

	p.notify(Notification{Type: NotifyVideoProgress, Message: progress.Message, Payload: progress})
	return progress, nil
}

// CloseVideo closes the viewer; see VideoExercise.close
func (p *Practice) CloseVideo(confirm bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.video == nil || !p.video.Open {
		return errNoVideo
	}
	return p.video.close(confirm)
}

// SetNotes stores the student's notes for the current video exercise
func (p *Practice) SetNotes(notes string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.video == nil {
		return errNoVideo
	}
	p.video.Notes = notes
	return nil
}

func (p *Practice) Topic() *models.PracticeTopic {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.topic
}

func (p *Practice) Snapshot() PracticeSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := PracticeSnapshot{Topic: p.topic, Generating: p.generating}
	if p.video != nil {
		v := *p.video
		snap.Video = &v
	}
	return snap
}

func (p *Practice) setGenerating(v bool) {
	p.mu.Lock()
	p.generating = v
	p.mu.Unlock()
}
