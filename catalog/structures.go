package catalog

import "writeassess/models"

// Structure returns the structural reference data of a text type
func Structure(t models.TextType) models.TextTypeStructure {
	switch t {
	case models.Instructions:
		return instructionsStructure()
	case models.ProgressReport:
		return progressReportStructure()
	default:
		return labReportStructure()
	}
}

func labReportStructure() models.TextTypeStructure {
	return models.TextTypeStructure{
		TextType: models.LabReport,
		Mnemonic: "TIMMRDC",
		Primary: []models.StructureSection{
			{Name: "Title", Required: true, Requirements: []string{
				"Never a complete sentence (must be a phrase)",
				"Articles (a, an, the) are usually omitted",
				"Use correct title case capitalization",
				"Clearly and briefly indicate what the report is about",
			}},
			{Name: "Introduction", Required: true, Requirements: []string{
				`Standard format: "The purpose of this experiment is {infinitive verb}..."`,
				"Use infinitive verb (to + verb) as the object",
				"Clearly state the experimental purpose",
			}},
			{Name: "Materials and Equipment", Required: true, Requirements: []string{
				"Write as a list of items (noun phrases)",
				"Be precise with measurements and specifications",
				"List items as noun phrases, not complete sentences",
				`Equipment NEVER has an "s" on the end`,
				"Use columns to save space if necessary",
			}},
			{Name: "Method", Required: true, Requirements: []string{
				"Include all information required for exact repetition",
				"Do NOT write instructions to the reader",
				"Use past tense (lab is already finished)",
				"Maintain objectivity using passive voice verbs",
				`Do NOT use "I" or "we"`,
				"Use precise measurements",
				"Formula: was/were + past participle",
			}},
			{Name: "Results", Required: true, Requirements: []string{
				"Focus on observable data only (the FACTS)",
				"Include graphics (tables, charts, diagrams) to show results",
				"Maintain objectivity - describe facts without bias or emotion",
				"NO interpretation in this section",
				"Results ≠ Conclusions",
			}},
			{Name: "Discussion", Required: true, Requirements: []string{
				"Include comments, explanation, and ideas about the results",
				"Explain WHY you got the results",
				"Compare results to existing theories",
				"Comment on the suitability of methods used",
				"Apply knowledge and reasoning to the evidence",
			}},
			{Name: "Conclusion", Required: true, Requirements: []string{
				"Link back to the purpose/introduction",
				"Interpret the data and explain what the facts mean",
				"Comment on success or lack of success of experiment",
				"State what scientific discoveries were made",
				"Explain what was learned",
				"Add closing thoughts or suggestions for further study",
			}},
		},
		SecondaryNotes: []string{
			"Proper use of past tense and passive voice in Method section",
			"Logical connections between sentences",
			"Proper paragraph structure",
			"Clear separation between observable results and interpretations",
			"Appropriate use of graphics and visual aids",
		},
		CommonMistakes: []string{
			"Using active voice or present tense in Method section",
			"Including interpretation in Results section",
			"Title as a complete sentence",
			`Using "I" or "we" in the report`,
			"Not linking Conclusion back to Introduction",
			"Confusing results with conclusions",
		},
	}
}

func instructionsStructure() models.TextTypeStructure {
	return models.TextTypeStructure{
		TextType: models.Instructions,
		Primary: []models.StructureSection{
			{Name: "Title", Required: true, Requirements: []string{
				"Simple and clear",
				"Tell the reader exactly what the instructions are about",
				`Two formats: "How to..." OR "Gerund (-ing) + Object"`,
			}},
			{Name: "Steps", Required: true, Requirements: []string{
				"Chronological order",
				"Use imperative mood (command verb + object)",
				"Start with imperative verb OR dependent clause/phrase + imperative",
				"One action per step (exception: two if simultaneous)",
				"Short sentences",
				"Include sufficient, precise details",
				"May include sub-steps if major step is too broad",
				"May include explanations after steps (why, what will happen, more details, what not to do, quick definitions)",
			}},
		},
		SecondarySections: []models.StructureSection{
			{Name: "Introduction", Requirements: []string{
				"Inform reader briefly about the process",
				"May include: background, purpose, scope, organization, advice",
				"Use words like: steps, procedure, process, directions, instructions",
			}},
			{Name: "Graphics", Requirements: []string{
				"Help readers do the steps",
				"Make each graphic correspond to specific step(s)",
				"Let reader know when to look at each graphic",
				"Place graphic next to the step or refer to it in text",
				"Include plenty of white space",
				"Do NOT include useless or confusing graphics",
			}},
			{Name: "Hazard Alerts", Requirements: []string{
				"CAUTION: Reader could damage equipment (place before dangerous step)",
				"WARNING: Reader could get hurt (place before dangerous step)",
				"DANGER: Life-threatening situations",
				"Write in ALL CAPS and BOLDFACE",
				"Place BEFORE the reader makes the mistake",
				"Explain WHY it is dangerous",
				"Use text boxes and white space",
				"Be clear and concise",
			}},
		},
		Recipe: &models.RecipeRequirements{
			Required: []string{"Ingredients list before steps"},
			Optional: []string{"Equipment list", "Introduction", "Graphics"},
			Notes:    "At least 8 steps, at least 2 explanations, at least 1 graphic, at least 1 CAUTION for recipe assignments",
		},
		CommonMistakes: []string{
			"Not using imperative mood in steps",
			"Including multiple actions in one step",
			"Confusing instructions with tips/advice",
			"Poor visual layout",
			"Missing or incorrectly placed hazard alerts",
			"Complicated safety information sentences",
		},
	}
}

func progressReportStructure() models.TextTypeStructure {
	return models.TextTypeStructure{
		TextType:   models.ProgressReport,
		Format:     "Memo format",
		MemoHeader: []string{"To:", "From:", "Date:", "Subject:"},
		Primary: []models.StructureSection{
			{Name: "Introduction", Required: true, Requirements: []string{
				"No heading for introduction",
				"State report topic",
				`Indicate which progress report this is (e.g., "third progress report")`,
				"Describe the project being reported on",
				"Give the reporting period",
				"State the purpose of the report",
				"Outline what the report will cover",
			}},
			{Name: "Work Completed", Required: true, Requirements: []string{
				`Include heading with report period (e.g., "WORK COMPLETED (September 1 – October 21, 2025)")`,
				"Cover what has been done during this reporting period",
				"Use past tense verbs (simple past or present perfect)",
				"Use subheadings if work falls under 2+ categories",
				"Be specific and clear with details",
			}},
			{Name: "Work Scheduled", Required: true, Requirements: []string{
				`Include heading: "WORK SCHEDULED"`,
				"Cover work yet to be done",
				"Use future tense verbs",
				"Describe next steps to finish the project",
				"Use subheadings if needed",
				"Be specific about planned activities",
			}},
			{Name: "Problems/Projections", Required: true, Requirements: []string{
				`Include heading: "PROBLEMS / PROJECTIONS"`,
				"Explain any difficulties that may affect the project",
				"Give revised completion date if problems caused delay",
				"MUST state estimated completion date of entire project in final sentence",
				"Describe actual or potential problems, delays, or changes",
				"Be honest about challenges faced",
			}},
		},
		SecondaryNotes: []string{
			"Proper use of white space and block paragraphs",
			"Use of subheadings to organize content",
			"Logical flow between sections",
			"Specific and clear details throughout",
			"Appropriate verb tenses for each section",
		},
		StyleTips: []string{
			`Be specific and clear (e.g., "Fill your tires to 32 pounds per square inch" not "Put enough air in your tires")`,
			"Provide enough detail (e.g., include department, model, price, date, purpose when mentioning equipment)",
			"Make it easy to understand, accurate, and include all important information",
		},
		CommonMistakes: []string{
			"Not using memo format",
			"Wrong verb tenses in sections",
			"Vague or unclear details",
			"Not stating completion date in Problems/Projections",
			"Missing reporting period in Work Completed heading",
			"Poor use of white space and formatting",
		},
	}
}
