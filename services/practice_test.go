package services

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"writeassess/catalog"
	"writeassess/models"
)

const topicJSON = `{"title":"Measuring Plant Growth","description":"Write a lab report on plant growth under different light.","context":"Biology lab","requirements":["Use past passive in Method"]}`

func fixedPick(i int) func(int) int {
	return func(int) int { return i }
}

func TestGenerateTopic(t *testing.T) {
	stub := replyWith(topicJSON)
	var events []Notification
	p := NewPractice(stub, nil, func(n Notification) { events = append(events, n) }, nil)

	topic, err := p.NewTopic(context.Background(), "sk-x", models.LabReport)
	require.NoError(t, err)
	assert.Equal(t, "Measuring Plant Growth", topic.Title)
	assert.Nil(t, topic.Video)

	_, req := stub.lastRequest()
	assert.Equal(t, TopicSystemPrompt, req.System)
	assert.Equal(t, BuildTopicPrompt(models.LabReport), req.User)
	assert.Equal(t, TopicTemperature, req.Temperature)

	assert.Same(t, topic, p.Topic())
	require.Len(t, events, 1)
	assert.Equal(t, NotifyTopicGenerated, events[0].Type)
}

func TestGenerateTopicRequiresCredential(t *testing.T) {
	stub := replyWith(topicJSON)
	p := NewPractice(stub, nil, nil, nil)
	_, err := p.NewTopic(context.Background(), " ", models.ProgressReport)
	assert.Equal(t, ErrMissingCredential, err)
	assert.Zero(t, stub.calls.Load())
}

func TestGenerateTopicRejectsInstructions(t *testing.T) {
	stub := replyWith(topicJSON)
	p := NewPractice(stub, nil, nil, nil)
	_, err := p.GenerateTopic(context.Background(), "sk-x", models.Instructions)
	assert.True(t, IsKind(err, KindInvalidInput))
	assert.Zero(t, stub.calls.Load())
}

func TestGenerateTopicFailure(t *testing.T) {
	stub := replyWith(topicJSON)
	p := NewPractice(stub, nil, nil, nil)
	first, err := p.GenerateTopic(context.Background(), "sk-x", models.ProgressReport)
	require.NoError(t, err)

	stub.respond = func(CompletionRequest) (string, error) {
		return "", &Error{Kind: KindProvider, Status: 429}
	}
	_, err = p.GenerateTopic(context.Background(), "sk-x", models.ProgressReport)
	assert.Equal(t, "API Error: 429 Too Many Requests", err.Error())
	assert.Same(t, first, p.Topic())

	stub.respond = func(CompletionRequest) (string, error) {
		return "", &Error{Kind: KindProvider, Status: 401, Message: "Invalid API key"}
	}
	_, err = p.GenerateTopic(context.Background(), "sk-x", models.ProgressReport)
	assert.Equal(t, "Invalid API key", err.Error())
	assert.EqualValues(t, 3, stub.calls.Load())
}

func TestGenerateTopicBusy(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	stub := &stubCompleter{respond: func(CompletionRequest) (string, error) {
		close(started)
		<-release
		return topicJSON, nil
	}}
	p := NewPractice(stub, nil, nil, fixedPick(0))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := p.GenerateTopic(context.Background(), "sk-x", models.LabReport)
		assert.NoError(t, err)
	}()
	<-started

	assert.True(t, p.Snapshot().Generating)
	_, err := p.GenerateTopic(context.Background(), "sk-x", models.LabReport)
	assert.Equal(t, ErrTopicBusy, err)
	_, _, err = p.StartVideoExercise()
	assert.Equal(t, ErrTopicBusy, err)

	close(release)
	wg.Wait()
	assert.EqualValues(t, 1, stub.calls.Load())
	assert.False(t, p.Snapshot().Generating)
}

func TestVideoExerciseTopic(t *testing.T) {
	stub := replyWith(topicJSON)
	p := NewPractice(stub, nil, nil, fixedPick(1))

	topic, err := p.NewTopic(context.Background(), "", models.Instructions)
	require.NoError(t, err)
	assert.Zero(t, stub.calls.Load())

	assert.Equal(t, "Write Instructions Based on Video", topic.Title)
	assert.Equal(t, `Watch the video "How to Tie a Tie" (2:30) twice, take notes, then write step-by-step instructions without referring back to the video.`, topic.Description)
	assert.Equal(t, "How to Tie a Tie", topic.VideoTitle)
	assert.Len(t, topic.Requirements, 6)
	require.NotNil(t, topic.Video)
	assert.Equal(t, "8SC_2pgByog", topic.Video.ID)

	snap := p.Snapshot()
	require.NotNil(t, snap.Video)
	assert.Zero(t, snap.Video.Views)
	assert.True(t, snap.Video.Open)
	assert.Empty(t, snap.Video.Notes)
	assert.Equal(t, "https://www.youtube.com/embed/8SC_2pgByog", snap.Video.EmbedURL)
	assert.Equal(t, "Instructions: How to Tie a Tie", snap.Video.WritingTopic.Title)
	assert.Equal(t, "Based on the video you watched", snap.Video.WritingTopic.Description)
	assert.Equal(t, "How to Tie a Tie", snap.Video.WritingTopic.VideoTitle)
}

func TestVideoDrawIsUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	p := NewPractice(nil, nil, nil, rng.IntN)

	const trials = 5000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		topic, _, err := p.StartVideoExercise()
		require.NoError(t, err)
		counts[topic.Video.ID]++
	}

	videos := catalog.Videos()
	require.Len(t, counts, len(videos))
	expected := trials / len(videos)
	for _, v := range videos {
		assert.InDelta(t, expected, counts[v.ID], float64(expected)/5, "video %s", v.ID)
	}
}

func TestPlaybackCounterCapsAtTwo(t *testing.T) {
	p := NewPractice(nil, nil, nil, fixedPick(0))
	_, _, err := p.StartVideoExercise()
	require.NoError(t, err)

	progress, err := p.PlaybackEnded()
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Views)
	assert.False(t, progress.Complete)
	assert.Equal(t, "Video ended. You can watch it one more time. After that, write your instructions from your notes!", progress.Message)

	progress, err = p.PlaybackEnded()
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Views)
	assert.True(t, progress.Complete)
	assert.Equal(t, "Second viewing complete! Now close the video and write your instructions using only your notes.", progress.Message)

	progress, err = p.PlaybackEnded()
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Views)

	_, _, err = p.StartVideoExercise()
	require.NoError(t, err)
	assert.Zero(t, p.Snapshot().Video.Views)
}

func TestCloseVideo(t *testing.T) {
	p := NewPractice(nil, nil, nil, fixedPick(2))
	assert.True(t, IsKind(p.CloseVideo(true), KindInvalidInput))

	_, _, err := p.StartVideoExercise()
	require.NoError(t, err)
	_, err = p.PlaybackEnded()
	require.NoError(t, err)

	err = p.CloseVideo(false)
	assert.True(t, IsKind(err, KindConfirmationRequired))
	assert.Equal(t, "You've only watched the video 1 time(s). Are you sure you want to close it? (Recommended: 2 viewings)", err.Error())
	assert.True(t, p.Snapshot().Video.Open)

	require.NoError(t, p.CloseVideo(true))
	assert.False(t, p.Snapshot().Video.Open)

	_, err = p.PlaybackEnded()
	assert.True(t, IsKind(err, KindInvalidInput))
}

func TestCloseVideoAfterTwoViews(t *testing.T) {
	p := NewPractice(nil, nil, nil, fixedPick(3))
	_, _, err := p.StartVideoExercise()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = p.PlaybackEnded()
		require.NoError(t, err)
	}
	assert.NoError(t, p.CloseVideo(false))
}

func TestSetNotes(t *testing.T) {
	p := NewPractice(nil, nil, nil, fixedPick(4))
	assert.True(t, IsKind(p.SetNotes("fold corners"), KindInvalidInput))

	_, _, err := p.StartVideoExercise()
	require.NoError(t, err)
	require.NoError(t, p.SetNotes("fold corners"))
	assert.Equal(t, "fold corners", p.Snapshot().Video.Notes)

	_, _, err = p.StartVideoExercise()
	require.NoError(t, err)
	assert.Empty(t, p.Snapshot().Video.Notes)
}

func TestGeneratedTopicReplacesVideo(t *testing.T) {
	p := NewPractice(replyWith(topicJSON), nil, nil, fixedPick(0))
	_, _, err := p.StartVideoExercise()
	require.NoError(t, err)

	_, err = p.GenerateTopic(context.Background(), "sk-x", models.LabReport)
	require.NoError(t, err)
	assert.Nil(t, p.Snapshot().Video)
}
