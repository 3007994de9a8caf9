package main

import (
	"fmt"
	"strings"

	"github.com/careerlytics/gapworker/internal/database"
)

// Fixed moderate scores used when the AI path is unavailable.
const (
	fallbackOverallScore       = 60
	fallbackMarketabilityScore = 55
)

// stageTemplate holds the career-stage-aware wording for fallback reports.
// "{stage}" in any template line is replaced with the profile's stage label.
type stageTemplate struct {
	Strengths         []string
	Weaknesses        []string
	Recommendations   []string
	NextSteps         []string
	Summary           string
	AlignmentBaseline int
}

var stageTemplates = map[string]stageTemplate{
	"early": {
		Strengths: []string{
			"Early-career momentum with room to shape a specialization",
			"Up-to-date foundational education and recent training",
		},
		Weaknesses: []string{
			"Limited professional track record to evidence listed skills",
		},
		Recommendations: []string{
			"Build a portfolio of concrete projects that demonstrate the skills in your profile",
			"Seek mentorship or internships aligned with your selected career path",
		},
		NextSteps: []string{
			"Re-upload your resume to retry the full AI analysis",
			"Add recent projects and coursework to your profile",
		},
		Summary:           "An {stage}-stage professional whose marketability will grow quickly with demonstrable project work.",
		AlignmentBaseline: 45,
	},
	"mid": {
		Strengths: []string{
			"Established {stage}-career experience base",
			"Breadth of skills accumulated across roles",
		},
		Weaknesses: []string{
			"Profile may understate leadership and ownership achievements",
		},
		Recommendations: []string{
			"Quantify achievements in your resume to match your experience level",
			"Close certification gaps for your selected career path",
		},
		NextSteps: []string{
			"Re-upload your resume to retry the full AI analysis",
			"Review your profile skills against current job postings",
		},
		Summary:           "A {stage}-career professional with a solid base; sharper positioning would lift marketability further.",
		AlignmentBaseline: 55,
	},
	"transition": {
		Strengths: []string{
			"Transferable skills from a prior career",
			"Demonstrated initiative by pursuing a career change",
		},
		Weaknesses: []string{
			"Direct experience in the target field may be limited",
		},
		Recommendations: []string{
			"Highlight transferable achievements prominently in your resume",
			"Prioritize the certifications your target career path requires",
		},
		NextSteps: []string{
			"Re-upload your resume to retry the full AI analysis",
			"Map each prior-career achievement to a target-field requirement",
		},
		Summary:           "A professional in {stage}, whose transferable background is a real asset once framed for the target field.",
		AlignmentBaseline: 40,
	},
}

var defaultStageTemplate = stageTemplate{
	Strengths: []string{
		"Maintains an active professional profile at the {stage} stage",
	},
	Weaknesses: []string{
		"Automated resume review was unavailable, so specific weaknesses could not be identified",
	},
	Recommendations: []string{
		"Keep your profile skills and certifications current",
		"Re-upload your resume to receive a full analysis",
	},
	NextSteps: []string{
		"Re-upload your resume to retry the full AI analysis",
	},
	Summary:           "A {stage} professional; a full marketability read requires the complete resume analysis.",
	AlignmentBaseline: 50,
}

func stageTemplateFor(stage string) stageTemplate {
	if tpl, ok := stageTemplates[strings.ToLower(strings.TrimSpace(stage))]; ok {
		return tpl
	}
	return defaultStageTemplate
}

func renderStage(lines []string, stage string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.ReplaceAll(line, "{stage}", stage)
	}
	return out
}

// BuildFallbackReport computes a contract-complete report from the profile
// and optional career path alone. It never calls the model and never fails.
func BuildFallbackReport(talent database.Talent, careerPath *database.CareerPath) AnalysisReport {
	stage := talent.CareerStage
	if stage == "" {
		stage = "unspecified"
	}
	tpl := stageTemplateFor(stage)

	report := AnalysisReport{
		OverallScore: fallbackOverallScore,
		Strengths:    renderStage(tpl.Strengths, stage),
		Weaknesses:   renderStage(tpl.Weaknesses, stage),
		ProfileVsGaps: ProfileVsGaps{
			MissingFromResume:  []string{"Detailed gap analysis unavailable: the resume could not be compared against your profile"},
			MissingFromProfile: []string{"Detailed gap analysis unavailable: the resume could not be compared against your profile"},
			Inconsistencies:    []string{"Consistency check unavailable without the full AI analysis"},
		},
		CareerAlignment: fallbackAlignment(talent, careerPath, tpl.AlignmentBaseline),
		Recommendations: renderStage(tpl.Recommendations, stage),
		NextSteps:       renderStage(tpl.NextSteps, stage),
		Marketability: Marketability{
			MarketabilityScore:    fallbackMarketabilityScore,
			Summary:               strings.ReplaceAll(tpl.Summary, "{stage}", stage),
			CompetitiveAdvantages: []string{fmt.Sprintf("Documented skill set: %s", joinOrNone(talent.Skills))},
			AreasForImprovement:   []string{"Complete AI analysis needed for a precise marketability read"},
		},
	}

	ClampReportScores(&report)
	return report
}

func fallbackAlignment(talent database.Talent, careerPath *database.CareerPath, baseline int) CareerAlignment {
	if careerPath == nil {
		return CareerAlignment{
			AlignmentScore:         0,
			MatchingSkills:         []string{},
			MissingSkills:          []string{},
			MatchingCertifications: []string{},
			MissingCertifications:  []string{},
			RelevantExperience:     []string{},
			AdditionalRequirements: []string{"No career path selected: choose a target career path to receive an alignment breakdown"},
		}
	}

	matchingSkills, missingSkills := intersectDiff(talent.Skills, careerPath.RequiredSkills)
	matchingCerts, missingCerts := intersectDiff(talent.Certifications, careerPath.RequiredCertifications)

	additional := []string{}
	if len(careerPath.Tools) > 0 {
		additional = append(additional, fmt.Sprintf("Familiarity with: %s", strings.Join(careerPath.Tools, ", ")))
	}
	if len(careerPath.SuggestedDegrees) > 0 {
		additional = append(additional, fmt.Sprintf("Suggested education: %s", strings.Join(careerPath.SuggestedDegrees, ", ")))
	}

	return CareerAlignment{
		AlignmentScore:         baseline,
		MatchingSkills:         matchingSkills,
		MissingSkills:          missingSkills,
		MatchingCertifications: matchingCerts,
		MissingCertifications:  missingCerts,
		RelevantExperience:     []string{},
		AdditionalRequirements: additional,
	}
}

// intersectDiff splits required into the items the talent already holds and
// the items still missing. Comparison is case-insensitive; returned values
// keep the career path's casing.
func intersectDiff(held, required []string) (matching, missing []string) {
	matching = []string{}
	missing = []string{}
	heldSet := make(map[string]bool, len(held))
	for _, h := range held {
		heldSet[strings.ToLower(strings.TrimSpace(h))] = true
	}
	for _, r := range required {
		if heldSet[strings.ToLower(strings.TrimSpace(r))] {
			matching = append(matching, r)
		} else {
			missing = append(missing, r)
		}
	}
	return matching, missing
}
