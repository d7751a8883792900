package services

import (
	"fmt"

	"writeassess/models"
)

const gradingBasePrompt = `You are an expert grader for GTS302 Technical Writing course. Your task is to grade student writing according to the official course rubric.

The rubric has three main categories, each scored 1-5:
1. CONTENT/TASK (5 points): Comprehensiveness, relevance, format, task understanding
2. STRUCTURE (5 points): Primary and secondary structure correctness
3. LANGUAGE (5 points): Clarity of meaning and grammatical accuracy

TOTAL SCORE: Out of 15 points

For each category, provide:
- A score (1-5)
- Specific feedback explaining the score
- Strengths identified
- Areas for improvement

Your response MUST be a valid JSON object with this exact structure:
{
  "contentScore": number (1-5),
  "contentFeedback": "detailed feedback string",
  "contentStrengths": ["strength 1", "strength 2"],
  "contentImprovements": ["improvement 1", "improvement 2"],

  "structureScore": number (1-5),
  "structureFeedback": "detailed feedback string",
  "structureStrengths": ["strength 1", "strength 2"],
  "structureImprovements": ["improvement 1", "improvement 2"],

  "languageScore": number (1-5),
  "languageFeedback": "detailed feedback string",
  "languageStrengths": ["strength 1", "strength 2"],
  "languageImprovements": ["improvement 1", "improvement 2"],

  "totalScore": number (out of 15),
  "overallFeedback": "overall summary string",
  "wordCount": number
}`

const labReportPrompt = `
Text Type: Science Lab Report

REQUIRED PRIMARY STRUCTURE (TIMMRDC):
1. Title (phrase, not sentence; title case; no articles)
2. Introduction (format: "The purpose of this experiment is to {verb}...")
3. Materials and Equipment (list of noun phrases; precise measurements)
4. Method (past tense; passive voice; no "I/we"; precise)
5. Results (observable facts only; no interpretation; may include graphics)
6. Discussion (explain WHY; compare to theories; comment on methods)
7. Conclusion (link to purpose; interpret data; state discoveries)

CRITICAL REQUIREMENTS:
- Method section MUST use past passive voice (was/were + past participle)
- Results MUST be objective facts only (no bias, emotion, or interpretation)
- Results and Conclusions are DIFFERENT (results = what you see; conclusions = what it means)
- Title must be a phrase, NOT a sentence
- NO use of "I" or "we" anywhere

Grading Focus:
- Content: Are all sections present? Is content relevant? Minimum 150 words?
- Structure: Primary structure correct (at least 3/5)? Secondary structure (logical connections, proper paragraph structure)?
- Language: Past passive in Method? Clear meaning? Major errors (tense/verbs) vs minor (prepositions/articles)?`

const instructionsPrompt = `
Text Type: Instructions

REQUIRED PRIMARY STRUCTURE:
1. Title (simple, clear; "How to..." OR "Gerund + Object" format)
2. Steps (chronological; imperative mood; one action per step)

OPTIONAL SECONDARY STRUCTURE (improves content score):
- Introduction (brief, uses words: steps/procedure/process/directions)
- Graphics (correspond to steps; placed appropriately)
- Hazard Alerts (CAUTION/WARNING/DANGER in ALL CAPS BOLD before dangerous steps)

CRITICAL REQUIREMENTS for STEPS:
- Use imperative mood (command verb + object)
- Start with verb OR dependent clause/phrase + verb
- ONE action per step (unless simultaneous)
- Short sentences
- May include sub-steps if needed
- May include explanations after steps (why, what happens, details, what NOT to do)

For RECIPE type:
- MUST include ingredients list before steps
- Should have equipment list
- At least 8 steps expected
- At least 2 explanations expected
- At least 1 graphic expected
- At least 1 CAUTION expected

Grading Focus:
- Content: All elements included? Relevant? Good visual layout? Appropriate graphics?
- Structure: Primary correct? Steps in logical order? Proper use of sub-steps and explanations?
- Language: Imperative mood used correctly? Clear vocabulary? Grammar accuracy?`

const progressReportPrompt = `
Text Type: Progress Report

REQUIRED FORMAT: Memo format
- To: (recipients)
- From: (writer)
- Date: (report date)
- Subject: (report number and topic)

REQUIRED PRIMARY STRUCTURE:
1. Introduction (NO heading)
   - State report topic
   - Indicate which report number this is
   - Describe the project
   - Give reporting period
   - State purpose
   - Outline report

2. Work Completed (WITH heading including period: "WORK COMPLETED (dates)")
   - What has been done
   - Use PAST TENSE
   - Use subheadings if 2+ categories
   - Be specific and clear

3. Work Scheduled (WITH heading: "WORK SCHEDULED")
   - What needs to be done next
   - Use FUTURE TENSE
   - Be specific

4. Problems/Projections (WITH heading: "PROBLEMS / PROJECTIONS")
   - Explain difficulties
   - Give revised completion date if delayed
   - MUST state estimated completion date in final sentence

CRITICAL REQUIREMENTS:
- Must use memo format
- Correct verb tenses for each section (past for completed, future for scheduled)
- Must include reporting period in Work Completed heading
- Must state completion date in Problems/Projections
- Be specific and clear (not vague like "enough" or "new machine" but precise details)

Grading Focus:
- Content: Memo format? Sufficient specific details? Good use of white space?
- Structure: All four sections present? Correct headings? Proper subheadings if needed?
- Language: Correct verb tenses? Subject-verb agreement? Clear meaning? Grammar accuracy?`

var textTypePrompts = map[models.TextType]string{
	models.LabReport:      labReportPrompt,
	models.Instructions:   instructionsPrompt,
	models.ProgressReport: progressReportPrompt,
}

// BuildGradingPrompt returns the system and user instructions for grading a
// submission. The system instruction depends only on the text type.
func BuildGradingPrompt(textType models.TextType, text string) (system, user string) {
	system = gradingBasePrompt + "\n\n" + textTypePrompts[textType]
	user = fmt.Sprintf("Please grade the following %s according to the GTS302 rubric:\n\n%s", textType, text)
	return system, user
}

// TopicSystemPrompt is the persona used for practice topic generation
const TopicSystemPrompt = "You are a GTS302 Technical Writing instructor creating practice topics for students."

const progressReportTopicPrompt = `Generate a unique, realistic practice topic for a Progress Report in memo format.

The topic should be:
- About a project or initiative (NOT moving offices, as that's the example)
- Suitable for a university student to imagine and write about
- Specific enough to write 4 sections: Introduction, Work Completed, Work Scheduled, Problems/Projections
- Creative and engaging

Examples of good topics:
- Developing a mobile app for the university
- Organizing a campus sustainability initiative
- Planning a student exchange program
- Building a new campus recreation center
- Launching a student mentorship program

Return a JSON object with this structure:
{
  "title": "Concise title of the project",
  "description": "Brief description of what the project is about",
  "context": "Background information the student needs to know",
  "requirements": [
    "List of 4-5 specific things they should include",
    "E.g., mention specific deliverables",
    "E.g., include budget figures",
    "E.g., mention team members or departments"
  ]
}

Make it different from common examples!`

const labReportTopicPrompt = `Generate a unique, realistic practice topic for a Science Lab Report (TIMMRDC structure).

The topic should be:
- A simple experiment that a student could imagine conducting
- Not too complex or requiring specialized knowledge
- Suitable for demonstrating all TIMMRDC sections
- Different from plant growth experiments (that's the example)

Examples of good topics:
- Testing water temperature effects on sugar dissolution
- Investigating battery life of different brands
- Measuring sound insulation of different materials
- Testing pH levels of common household liquids
- Observing crystal formation in different solutions

Return a JSON object with this structure:
{
  "title": "Title of the experiment (as a phrase, not sentence)",
  "description": "Brief description of what the experiment investigates",
  "context": "Background information about the scientific concept",
  "requirements": [
    "What they should include in Materials",
    "What the Method should describe",
    "What kind of Results to expect",
    "What the Discussion should explain"
  ]
}

Make it creative and interesting!`

// BuildTopicPrompt returns the topic generation instruction for a text type.
// Instructions has none: it uses the video exercise instead.
func BuildTopicPrompt(textType models.TextType) string {
	switch textType {
	case models.ProgressReport:
		return progressReportTopicPrompt
	case models.LabReport:
		return labReportTopicPrompt
	default:
		return ""
	}
}
