// Package catalog holds the GTS302 rubric, the per-text-type structure
// rules and the practice video list. Every accessor builds a fresh value,
// so callers may modify what they get back.
package catalog

import "writeassess/models"

var scoreTitles = map[int]string{
	1: "Very Poor",
	2: "Poor",
	3: "Average",
	4: "Good",
	5: "Excellent",
}

// ScoreLabel returns the descriptor title for a category score. Scores
// outside the rubric range are labelled as the nearest bound.
func ScoreLabel(score int) string {
	if score >= models.MaxCategoryScore {
		return scoreTitles[models.MaxCategoryScore]
	}
	if score <= models.MinCategoryScore {
		return scoreTitles[models.MinCategoryScore]
	}
	return scoreTitles[score]
}

// Categories returns the descriptor tables of all three categories
func Categories() []models.RubricCategoryInfo {
	out := make([]models.RubricCategoryInfo, 0, len(models.RubricCategories))
	for _, c := range models.RubricCategories {
		out = append(out, Rubric(c))
	}
	return out
}

// Rubric returns the descriptor table of a category
func Rubric(category models.RubricCategory) models.RubricCategoryInfo {
	info := models.RubricCategoryInfo{
		Category: category,
		Key:      category.Key(),
		MaxScore: models.MaxCategoryScore,
	}
	switch category {
	case models.CategoryContent:
		info.Criteria = []models.Criterion{
			{Name: "content", Description: "Is everything included and is it relevant? Is minimum word count met?"},
			{Name: "format", Description: "How is the text organized visually in terms of whitespace/margins/graphics/layout?"},
			{Name: "task", Description: "Was the question answered properly? Is it the right type of text? Overall how well was it answered?"},
		}
		info.Descriptors = contentDescriptors()
	case models.CategoryStructure:
		info.Criteria = []models.Criterion{
			{Name: "primary", Description: "Is primary structure correct (minimum score of 3)?"},
			{Name: "secondary", Description: "Is secondary structure correct (if all correct 5)?"},
		}
		info.Descriptors = describe(
			"Serious errors in primary and secondary structure indicate a clear misunderstanding of this text type.",
			"Some understanding of text type is apparent, but at least one serious error in primary structure remains.",
			"Primary structure is correct or almost correct, but clear errors or inadequacies in secondary structure remain.",
			"Primary structure is correct. Some errors in secondary structure remain.",
			"Primary and secondary structure correct for this text type.",
		)
	case models.CategoryLanguage:
		info.Criteria = []models.Criterion{
			{Name: "meaning", Description: "Is everything understandable (minimum 3)?"},
			{Name: "accuracy", Description: "Number and type of grammar mistakes. How many mistakes are there? Are they major (tense/verb forms) or minor (plurals, prepositions, determiners)?"},
		}
		info.Descriptors = describe(
			"Poor level of English throughout such that meaning is generally unclear or indiscernible.",
			"Serious issues with English that sometimes interfere with meaning.",
			"Frequent issues with accuracy, but meaning is discernible throughout.",
			"A few issues with accuracy, and meaning is clear throughout.",
			"Meaning is fully clear, and accuracy is perfect or close to perfect.",
		)
	}
	return info
}

// describe builds descriptors 1..5 from one description per score
func describe(descriptions ...string) []models.ScoreDescriptor {
	out := make([]models.ScoreDescriptor, 0, len(descriptions))
	for i, d := range descriptions {
		score := i + 1
		out = append(out, models.ScoreDescriptor{Score: score, Title: scoreTitles[score], Description: d})
	}
	return out
}

func contentDescriptors() []models.ScoreDescriptor {
	aspects := [][3]string{
		{"Severely incomprehensive and/or irrelevant.", "Seriously incorrect.", "Clearly misunderstood / not achieved."},
		{"Significantly incomprehensive and/or irrelevant.", "Some obvious issues.", "Partially misunderstood/achieved."},
		{"Minor issues only with comprehensiveness and relevance.", "Adequate.", "Adequately understood / achieved."},
		{"Relevant and comprehensive.", "Correct or very minor issues.", "Well understood / achieved."},
		{"Fully relevant and comprehensive.", "Fully correct and very well executed.", "Very well understood / achieved."},
	}
	out := make([]models.ScoreDescriptor, 0, len(aspects))
	for i, a := range aspects {
		score := i + 1
		out = append(out, models.ScoreDescriptor{
			Score: score,
			Title: scoreTitles[score],
			Aspects: []models.DescriptorAspect{
				{Criterion: "content", Description: a[0]},
				{Criterion: "format", Description: a[1]},
				{Criterion: "task", Description: a[2]},
			},
		})
	}
	return out
}
