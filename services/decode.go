package services

import (
	"encoding/json"
	"strings"

	"writeassess/internal/logger"
	"writeassess/models"
)

// gradingPayload mirrors models.GradingResult with pointer fields so that a
// missing key can be told apart from a zero value.
type gradingPayload struct {
	ContentScore        *int      `json:"contentScore"`
	ContentFeedback     *string   `json:"contentFeedback"`
	ContentStrengths    *[]string `json:"contentStrengths"`
	ContentImprovements *[]string `json:"contentImprovements"`

	StructureScore        *int      `json:"structureScore"`
	StructureFeedback     *string   `json:"structureFeedback"`
	StructureStrengths    *[]string `json:"structureStrengths"`
	StructureImprovements *[]string `json:"structureImprovements"`

	LanguageScore        *int      `json:"languageScore"`
	LanguageFeedback     *string   `json:"languageFeedback"`
	LanguageStrengths    *[]string `json:"languageStrengths"`
	LanguageImprovements *[]string `json:"languageImprovements"`

	TotalScore      *int    `json:"totalScore"`
	OverallFeedback *string `json:"overallFeedback"`
	WordCount       *int    `json:"wordCount"`
}

type fieldCheck struct {
	missing []string
}

func (f *fieldCheck) num(name string, v *int) int {
	if v == nil {
		f.missing = append(f.missing, name)
		return 0
	}
	return *v
}

func (f *fieldCheck) text(name string, v *string) string {
	if v == nil {
		f.missing = append(f.missing, name)
		return ""
	}
	return *v
}

func (f *fieldCheck) list(name string, v *[]string) []string {
	if v == nil {
		f.missing = append(f.missing, name)
		return nil
	}
	return *v
}

// DecodeGradingResult strictly parses the model's message content. Every
// field is required and category scores must lie in [1,5]. The total is
// recomputed from the category scores.
func DecodeGradingResult(content string, log *logger.Logger) (*models.GradingResult, error) {
	var p gradingPayload
	if err := json.Unmarshal([]byte(cleanModelOutput(content)), &p); err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Message: "The grading response was not valid JSON in the expected shape.", Err: err}
	}

	var f fieldCheck
	r := &models.GradingResult{
		ContentScore:        f.num("contentScore", p.ContentScore),
		ContentFeedback:     f.text("contentFeedback", p.ContentFeedback),
		ContentStrengths:    f.list("contentStrengths", p.ContentStrengths),
		ContentImprovements: f.list("contentImprovements", p.ContentImprovements),

		StructureScore:        f.num("structureScore", p.StructureScore),
		StructureFeedback:     f.text("structureFeedback", p.StructureFeedback),
		StructureStrengths:    f.list("structureStrengths", p.StructureStrengths),
		StructureImprovements: f.list("structureImprovements", p.StructureImprovements),

		LanguageScore:        f.num("languageScore", p.LanguageScore),
		LanguageFeedback:     f.text("languageFeedback", p.LanguageFeedback),
		LanguageStrengths:    f.list("languageStrengths", p.LanguageStrengths),
		LanguageImprovements: f.list("languageImprovements", p.LanguageImprovements),

		TotalScore:      f.num("totalScore", p.TotalScore),
		OverallFeedback: f.text("overallFeedback", p.OverallFeedback),
		WordCount:       f.num("wordCount", p.WordCount),
	}
	if len(f.missing) > 0 {
		return nil, malformed("The grading response is missing fields: %s.", strings.Join(f.missing, ", "))
	}

	for _, c := range r.Categories() {
		if c.Score < models.MinCategoryScore || c.Score > models.MaxCategoryScore {
			return nil, malformed("The grading response has an out-of-range %s score: %d.", c.Category, c.Score)
		}
	}
	if r.WordCount < 0 {
		return nil, malformed("The grading response has a negative word count.")
	}

	if sum := r.SumScores(); r.TotalScore != sum {
		if log != nil {
			log.Warn("model total score disagrees with category scores", "reported", r.TotalScore, "computed", sum)
		}
		r.TotalScore = sum
	}
	return r, nil
}

type topicPayload struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Context      string   `json:"context"`
	Requirements []string `json:"requirements"`
}

// DecodePracticeTopic strictly parses a generated topic. Title and
// description are required and must not be blank.
func DecodePracticeTopic(content string) (*models.PracticeTopic, error) {
	var p topicPayload
	if err := json.Unmarshal([]byte(cleanModelOutput(content)), &p); err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Message: "The topic response was not valid JSON in the expected shape.", Err: err}
	}

	var missing []string
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		missing = append(missing, "title")
	}
	if p.Description == nil || strings.TrimSpace(*p.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, malformed("The topic response is missing fields: %s.", strings.Join(missing, ", "))
	}

	return &models.PracticeTopic{
		Title:        strings.TrimSpace(*p.Title),
		Description:  strings.TrimSpace(*p.Description),
		Context:      strings.TrimSpace(p.Context),
		Requirements: p.Requirements,
	}, nil
}

// CountWords counts whitespace-delimited tokens
func CountWords(text string) int {
	return len(strings.Fields(text))
}
