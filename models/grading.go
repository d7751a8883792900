package models

import "fmt"

// GradingResult is the per-category assessment returned by the model
type GradingResult struct {
	ContentScore        int      `json:"contentScore"`
	ContentFeedback     string   `json:"contentFeedback"`
	ContentStrengths    []string `json:"contentStrengths"`
	ContentImprovements []string `json:"contentImprovements"`

	StructureScore        int      `json:"structureScore"`
	StructureFeedback     string   `json:"structureFeedback"`
	StructureStrengths    []string `json:"structureStrengths"`
	StructureImprovements []string `json:"structureImprovements"`

	LanguageScore        int      `json:"languageScore"`
	LanguageFeedback     string   `json:"languageFeedback"`
	LanguageStrengths    []string `json:"languageStrengths"`
	LanguageImprovements []string `json:"languageImprovements"`

	TotalScore      int    `json:"totalScore"`
	OverallFeedback string `json:"overallFeedback"`
	WordCount       int    `json:"wordCount"`
}

// CategoryScore is one category of a result, flattened for display
type CategoryScore struct {
	Category     RubricCategory `json:"category"`
	Score        int            `json:"score"`
	Feedback     string         `json:"feedback"`
	Strengths    []string       `json:"strengths"`
	Improvements []string       `json:"improvements"`
}

// Categories returns the three category blocks in rubric order
func (r *GradingResult) Categories() []CategoryScore {
	return []CategoryScore{
		{CategoryContent, r.ContentScore, r.ContentFeedback, r.ContentStrengths, r.ContentImprovements},
		{CategoryStructure, r.StructureScore, r.StructureFeedback, r.StructureStrengths, r.StructureImprovements},
		{CategoryLanguage, r.LanguageScore, r.LanguageFeedback, r.LanguageStrengths, r.LanguageImprovements},
	}
}

// SumScores is the sum of the three category scores
func (r *GradingResult) SumScores() int {
	return r.ContentScore + r.StructureScore + r.LanguageScore
}

// Percentage is the total score as a percentage of the maximum
func (r *GradingResult) Percentage() float64 {
	return float64(r.TotalScore) / float64(MaxTotalScore) * 100
}

// PercentageString formats Percentage with one decimal, e.g. "80.0%"
func (r *GradingResult) PercentageString() string {
	return fmt.Sprintf("%.1f%%", r.Percentage())
}

// ScoreBand classifies a total score for display
type ScoreBand string

const (
	BandExcellent ScoreBand = "excellent"
	BandGood      ScoreBand = "good"
	BandAverage   ScoreBand = "average"
	BandPoor      ScoreBand = "poor"
	BandVeryPoor  ScoreBand = "very-poor"
)

// Band maps the percentage onto the display bands
func (r *GradingResult) Band() ScoreBand {
	p := r.Percentage()
	switch {
	case p >= 90:
		return BandExcellent
	case p >= 75:
		return BandGood
	case p >= 60:
		return BandAverage
	case p >= 50:
		return BandPoor
	default:
		return BandVeryPoor
	}
}

// GradingSummary is what the API returns alongside a result
type GradingSummary struct {
	Result     *GradingResult `json:"result"`
	Percentage string         `json:"percentage"`
	Band       ScoreBand      `json:"band"`
}

// Summarize builds the API view of a result
func (r *GradingResult) Summarize() GradingSummary {
	return GradingSummary{Result: r, Percentage: r.PercentageString(), Band: r.Band()}
}

// WordCountStatus reports a submission's length against MinWordCount
type WordCountStatus struct {
	Count      int  `json:"count"`
	Minimum    int  `json:"minimum"`
	Remaining  int  `json:"remaining"`
	MinimumMet bool `json:"minimumMet"`
}

// NewWordCountStatus derives the display status for a word count
func NewWordCountStatus(count int) WordCountStatus {
	remaining := MinWordCount - count
	if remaining < 0 {
		remaining = 0
	}
	return WordCountStatus{
		Count:      count,
		Minimum:    MinWordCount,
		Remaining:  remaining,
		MinimumMet: count >= MinWordCount,
	}
}
