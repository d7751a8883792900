package models

import (
	"fmt"
	"strings"
)

// RubricCategory is one of the three scored rubric categories
type RubricCategory string

const (
	CategoryContent   RubricCategory = "Content/Task"
	CategoryStructure RubricCategory = "Structure"
	CategoryLanguage  RubricCategory = "Language"
)

// RubricCategories lists the categories in grading order
var RubricCategories = []RubricCategory{CategoryContent, CategoryStructure, CategoryLanguage}

const (
	MinCategoryScore = 1
	MaxCategoryScore = 5
	MinTotalScore    = MinCategoryScore * 3
	MaxTotalScore    = MaxCategoryScore * 3
)

// MinWordCount is the recommended minimum length of a submission. It is
// informational only and never blocks grading.
const MinWordCount = 150

var categoryKeys = map[RubricCategory]string{
	CategoryContent:   "content",
	CategoryStructure: "structure",
	CategoryLanguage:  "language",
}

// Key returns the short identifier used in URLs and JSON field prefixes
func (c RubricCategory) Key() string {
	return categoryKeys[c]
}

// ParseRubricCategory accepts the display name or the short key
func ParseRubricCategory(raw string) (RubricCategory, error) {
	value := strings.TrimSpace(raw)
	for _, c := range RubricCategories {
		if strings.EqualFold(value, string(c)) || strings.EqualFold(value, c.Key()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown rubric category %q", raw)
}

// Criterion is one named question a grader asks within a category
type Criterion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DescriptorAspect is a per-criterion description inside a score descriptor
type DescriptorAspect struct {
	Criterion   string `json:"criterion"`
	Description string `json:"description"`
}

// ScoreDescriptor explains what a given score means for a category
type ScoreDescriptor struct {
	Score       int                `json:"score"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Aspects     []DescriptorAspect `json:"aspects,omitempty"`
}

// RubricCategoryInfo is the full descriptor table of one category
type RubricCategoryInfo struct {
	Category    RubricCategory    `json:"category"`
	Key         string            `json:"key"`
	MaxScore    int               `json:"maxScore"`
	Criteria    []Criterion       `json:"criteria"`
	Descriptors []ScoreDescriptor `json:"descriptors"`
}

// StructureSection is a named section with its requirements
type StructureSection struct {
	Name         string   `json:"name"`
	Required     bool     `json:"required"`
	Requirements []string `json:"requirements"`
}

// RecipeRequirements holds the extra expectations for recipe-style instructions
type RecipeRequirements struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
	Notes    string   `json:"notes"`
}

// TextTypeStructure is the structural reference data for one text type
type TextTypeStructure struct {
	TextType          TextType            `json:"textType"`
	Mnemonic          string              `json:"mnemonic,omitempty"`
	Format            string              `json:"format,omitempty"`
	MemoHeader        []string            `json:"memoHeader,omitempty"`
	Primary           []StructureSection  `json:"primaryStructure"`
	SecondaryNotes    []string            `json:"secondaryStructure,omitempty"`
	SecondarySections []StructureSection  `json:"secondarySections,omitempty"`
	Recipe            *RecipeRequirements `json:"recipeSpecific,omitempty"`
	StyleTips         []string            `json:"styleTips,omitempty"`
	CommonMistakes    []string            `json:"commonMistakes,omitempty"`
}
