package services

import (
	"fmt"

	"writeassess/models"
)

// RecommendedViews is how many times a practice video should be watched
const RecommendedViews = 2

const (
	watchAgainMessage    = "Video ended. You can watch it one more time. After that, write your instructions from your notes!"
	viewingDoneMessage   = "Second viewing complete! Now close the video and write your instructions using only your notes."
	videoTopicTitle      = "Write Instructions Based on Video"
	videoTopicDescFormat = "Watch the video %q (%s) twice, take notes, then write step-by-step instructions without referring back to the video."
	writingTopicPrefix   = "Instructions: "
	writingTopicDesc     = "Based on the video you watched"
)

// VideoExercise is the state of the video viewer for the Instructions practice path
type VideoExercise struct {
	Video    models.Video `json:"video"`
	EmbedURL string       `json:"embedUrl"`
	Views    int          `json:"views"`
	Open     bool         `json:"open"`
	Notes    string       `json:"notes"`

	// WritingTopic is the short heading shown above the writing pane
	WritingTopic models.PracticeTopic `json:"writingTopic"`
}

// VideoProgress is reported after each completed playback
type VideoProgress struct {
	Views       int    `json:"views"`
	Recommended int    `json:"recommended"`
	Complete    bool   `json:"complete"`
	Message     string `json:"message"`
}

func newVideoExercise(v models.Video) *VideoExercise {
	return &VideoExercise{
		Video:    v,
		EmbedURL: v.EmbedURL(),
		Open:     true,
		WritingTopic: models.PracticeTopic{
			Title:       writingTopicPrefix + v.Title,
			Description: writingTopicDesc,
			VideoTitle:  v.Title,
		},
	}
}

// recordPlayback counts a finished playback. The counter stops at
// RecommendedViews until a new video is drawn.
func (e *VideoExercise) recordPlayback() VideoProgress {
	if e.Views < RecommendedViews {
		e.Views++
	}
	p := VideoProgress{Views: e.Views, Recommended: RecommendedViews, Complete: e.Views >= RecommendedViews}
	if p.Complete {
		p.Message = viewingDoneMessage
	} else {
		p.Message = watchAgainMessage
	}
	return p
}

// close shuts the viewer. Closing before the recommended number of views
// needs an explicit confirmation.
func (e *VideoExercise) close(confirm bool) error {
	if e.Views < RecommendedViews && !confirm {
		return newError(KindConfirmationRequired, closeWarning(e.Views))
	}
	e.Open = false
	return nil
}

func closeWarning(views int) string {
	return fmt.Sprintf("You've only watched the video %d time(s). Are you sure you want to close it? (Recommended: %d viewings)", views, RecommendedViews)
}

func videoTopic(v models.Video) *models.PracticeTopic {
	video := v
	return &models.PracticeTopic{
		Title:       videoTopicTitle,
		Description: fmt.Sprintf(videoTopicDescFormat, v.Title, v.Duration),
		VideoTitle:  v.Title,
		Requirements: []string{
			"Watch the video twice",
			"Take brief notes during viewing",
			"Write instructions from memory",
			"Use proper imperative mood",
			"Include all major steps",
			"Add at least one CAUTION/WARNING if applicable",
		},
		Video: &video,
	}
}
