package main

import (
	"fmt"
	"strings"

	"github.com/careerlytics/gapworker/internal/database"
)

func instruction() string {
	return `
	You are an expert AI career analyst. You evaluate resumes against a candidate's
stored profile and, when one is selected, a target career path.

Be concise and professional. Base all reasoning only on the provided material.
Do not make up data or assume experience not explicitly mentioned.
	`
}

func extractionPrompt() string {
	return `
	Extract all textual content from the attached resume document.

Return the plain text of the document only: every section, role, date, skill
and qualification you can read, in reading order. Do not summarize, do not
analyze, do not add commentary, and do not wrap the output in markdown.
	`
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none listed"
	}
	return strings.Join(items, ", ")
}

// analysisPrompt builds the single gap-analysis prompt: the extracted resume
// text verbatim, the profile fields, the career path fields (or an explicit
// general-analysis instruction when none is selected) and the exact output
// schema with its score ranges.
func analysisPrompt(resumeText string, talent database.Talent, careerPath *database.CareerPath) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following resume against the candidate's stored profile.\n\n")

	sb.WriteString("## Resume Text\n\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\n")

	sb.WriteString("## Candidate Profile\n\n")
	sb.WriteString(fmt.Sprintf("Career stage: %s\n", talent.CareerStage))
	sb.WriteString(fmt.Sprintf("Skills: %s\n", joinOrNone(talent.Skills)))
	sb.WriteString(fmt.Sprintf("Degrees: %s\n", joinOrNone(talent.Degrees)))
	sb.WriteString(fmt.Sprintf("Certifications: %s\n", joinOrNone(talent.Certifications)))
	sb.WriteString(fmt.Sprintf("Interests: %s\n", joinOrNone(talent.Interests)))
	sb.WriteString("\n")

	sb.WriteString("## Target Career Path\n\n")
	if careerPath != nil {
		sb.WriteString(fmt.Sprintf("Title: %s\n", careerPath.Title))
		sb.WriteString(fmt.Sprintf("Required skills: %s\n", joinOrNone(careerPath.RequiredSkills)))
		sb.WriteString(fmt.Sprintf("Required certifications: %s\n", joinOrNone(careerPath.RequiredCertifications)))
		sb.WriteString(fmt.Sprintf("Suggested degrees: %s\n", joinOrNone(careerPath.SuggestedDegrees)))
		sb.WriteString(fmt.Sprintf("Tools and technologies: %s\n", joinOrNone(careerPath.Tools)))
		sb.WriteString("\nScore careerAlignment against this target career path.\n")
	} else {
		sb.WriteString("The candidate has not selected a career path. Produce a general analysis: ")
		sb.WriteString("still return the full careerAlignment object, scored against the candidate's apparent field.\n")
	}
	sb.WriteString("\n")

	sb.WriteString(`Return your result as a single JSON object in exactly this format:

{
  "overallScore": number from 0 to 100,
  "strengths": [string],
  "weaknesses": [string],
  "profileVsGaps": {
    "missingFromResume": [items in the profile but absent from the resume],
    "missingFromProfile": [items in the resume but absent from the profile],
    "inconsistencies": [string]
  },
  "careerAlignment": {
    "alignmentScore": number from 0 to 100,
    "matchingSkills": [string],
    "missingSkills": [string],
    "matchingCertifications": [string],
    "missingCertifications": [string],
    "relevantExperience": [string],
    "additionalRequirements": [string]
  },
  "recommendations": [string],
  "nextSteps": [string],
  "marketability": {
    "marketabilityScore": number from 0 to 100,
    "summary": string,
    "competitiveAdvantages": [string],
    "areasForImprovement": [string]
  }
}

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.
Your response must be a single JSON object.
`)

	return sb.String()
}
