package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextType(t *testing.T) {
	cases := map[string]TextType{
		"Science Lab Report": LabReport,
		"lab-report":         LabReport,
		" INSTRUCTIONS ":     Instructions,
		"progress report":    ProgressReport,
		"Progress-Report":    ProgressReport,
	}
	for raw, want := range cases {
		got, err := ParseTextType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseTextType("essay")
	assert.Error(t, err)
	assert.False(t, TextType("essay").Valid())
	assert.Equal(t, LabReport, DefaultTextType)
}

func TestParseRubricCategory(t *testing.T) {
	c, err := ParseRubricCategory("content")
	require.NoError(t, err)
	assert.Equal(t, CategoryContent, c)

	c, err = ParseRubricCategory("Content/Task")
	require.NoError(t, err)
	assert.Equal(t, CategoryContent, c)

	_, err = ParseRubricCategory("style")
	assert.Error(t, err)
}

func TestGradingResultPercentage(t *testing.T) {
	var r GradingResult
	require.NoError(t, json.Unmarshal([]byte(`{"contentScore":4,"structureScore":5,"languageScore":3,"totalScore":12}`), &r))

	assert.Equal(t, 12, r.SumScores())
	assert.Equal(t, "80.0%", r.PercentageString())
	assert.Equal(t, BandGood, r.Band())
}

func TestGradingResultBands(t *testing.T) {
	cases := []struct {
		total int
		band  ScoreBand
	}{
		{15, BandExcellent},
		{14, BandExcellent},
		{12, BandGood},
		{9, BandAverage},
		{8, BandPoor},
		{7, BandVeryPoor},
		{3, BandVeryPoor},
	}
	for _, tc := range cases {
		r := GradingResult{TotalScore: tc.total}
		assert.Equal(t, tc.band, r.Band(), "total %d", tc.total)
	}
}

func TestCategoriesOrder(t *testing.T) {
	r := GradingResult{ContentScore: 2, StructureScore: 3, LanguageScore: 4, LanguageStrengths: []string{"clear"}}
	cats := r.Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, CategoryContent, cats[0].Category)
	assert.Equal(t, 3, cats[1].Score)
	assert.Equal(t, []string{"clear"}, cats[2].Strengths)
}

func TestWordCountStatus(t *testing.T) {
	s := NewWordCountStatus(100)
	assert.Equal(t, 50, s.Remaining)
	assert.False(t, s.MinimumMet)

	s = NewWordCountStatus(200)
	assert.Equal(t, 0, s.Remaining)
	assert.True(t, s.MinimumMet)
}
