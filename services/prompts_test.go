package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"writeassess/models"
)

func TestBuildGradingPrompt(t *testing.T) {
	text := "Measuring the Boiling Point of Water\n\nThe purpose of this experiment is to measure..."

	t.Run("lab report", func(t *testing.T) {
		system, user := BuildGradingPrompt(models.LabReport, text)
		assert.True(t, strings.HasPrefix(system, gradingBasePrompt+"\n\n"))
		assert.Contains(t, system, "TIMMRDC")
		assert.Contains(t, system, "past passive")
		assert.Equal(t, "Please grade the following Science Lab Report according to the GTS302 rubric:\n\n"+text, user)
	})

	t.Run("instructions", func(t *testing.T) {
		system, user := BuildGradingPrompt(models.Instructions, text)
		assert.Contains(t, system, "imperative mood")
		assert.NotContains(t, system, "TIMMRDC")
		assert.True(t, strings.HasPrefix(user, "Please grade the following Instructions according"))
	})

	t.Run("progress report", func(t *testing.T) {
		system, _ := BuildGradingPrompt(models.ProgressReport, text)
		assert.Contains(t, system, "memo format")
	})

	t.Run("deterministic", func(t *testing.T) {
		a, _ := BuildGradingPrompt(models.ProgressReport, text)
		b, _ := BuildGradingPrompt(models.ProgressReport, "something else")
		assert.Equal(t, a, b)
	})
}

func TestBuildTopicPrompt(t *testing.T) {
	assert.NotEmpty(t, BuildTopicPrompt(models.LabReport))
	assert.NotEmpty(t, BuildTopicPrompt(models.ProgressReport))
	assert.NotEqual(t, BuildTopicPrompt(models.LabReport), BuildTopicPrompt(models.ProgressReport))
	assert.Empty(t, BuildTopicPrompt(models.Instructions))
}
