package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/careerlytics/gapworker/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTalent() database.Talent {
	return database.Talent{
		FullName:       "Ada Example",
		CareerStage:    "mid",
		Skills:         []string{"Go", "SQL"},
		Degrees:        []string{"BSc Computer Science"},
		Certifications: []string{"AWS SAA"},
		Interests:      []string{"distributed systems"},
	}
}

func testCareerPath() database.CareerPath {
	return database.CareerPath{
		Title:                  "Platform Engineer",
		RequiredSkills:         []string{"Go", "Kubernetes", "Rust"},
		RequiredCertifications: []string{"CKA", "AWS SAA"},
		SuggestedDegrees:       []string{"BSc Computer Science"},
		Tools:                  []string{"Terraform", "ArgoCD"},
	}
}

func TestAnalyzeResume_ParsesWellFormedResponse(t *testing.T) {
	model := &fakeModel{completeResp: validReportJSON(82)}

	report, err := AnalyzeResume(context.Background(), model, "resume text", testTalent(), nil)

	require.NoError(t, err)
	assert.Equal(t, 82, report.OverallScore)
	assert.Equal(t, []string{"Strong backend background"}, report.Strengths)
	assert.Equal(t, 70, report.CareerAlignment.AlignmentScore)
	assert.Equal(t, 65, report.Marketability.MarketabilityScore)
	assert.Equal(t, 1, model.completeCalls)
}

func TestAnalyzeResume_ClampsOutOfRangeScores(t *testing.T) {
	model := &fakeModel{completeResp: validReportJSON(150)}

	report, err := AnalyzeResume(context.Background(), model, "resume text", testTalent(), nil)

	require.NoError(t, err)
	assert.Equal(t, 100, report.OverallScore)
}

func TestAnalyzeResume_AcceptsFencedResponse(t *testing.T) {
	model := &fakeModel{completeResp: "```json\n" + validReportJSON(75) + "\n```"}

	report, err := AnalyzeResume(context.Background(), model, "resume text", testTalent(), nil)

	require.NoError(t, err)
	assert.Equal(t, 75, report.OverallScore)
}

func TestAnalyzeResume_MissingRequiredField(t *testing.T) {
	// Well-formed JSON without the marketability block cannot be trusted.
	truncated := `{
	  "overallScore": 80,
	  "strengths": [],
	  "weaknesses": [],
	  "profileVsGaps": {"missingFromResume": [], "missingFromProfile": [], "inconsistencies": []},
	  "careerAlignment": {"alignmentScore": 50},
	  "recommendations": [],
	  "nextSteps": []
	}`
	model := &fakeModel{completeResp: truncated}

	_, err := AnalyzeResume(context.Background(), model, "resume text", testTalent(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Contains(t, err.Error(), "marketability")
}

func TestAnalyzeResume_ModelError(t *testing.T) {
	model := &fakeModel{completeErr: errors.New("deadline exceeded")}

	_, err := AnalyzeResume(context.Background(), model, "resume text", testTalent(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestAnalyzeResume_UnparseableResponse(t *testing.T) {
	model := &fakeModel{completeResp: "I am unable to analyze this resume."}

	_, err := AnalyzeResume(context.Background(), model, "resume text", testTalent(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestAnalysisPrompt_EmbedsProfileAndResume(t *testing.T) {
	prompt := analysisPrompt("the extracted resume text", testTalent(), nil)

	assert.Contains(t, prompt, "the extracted resume text")
	assert.Contains(t, prompt, "Career stage: mid")
	assert.Contains(t, prompt, "Go, SQL")
	assert.Contains(t, prompt, "AWS SAA")
	assert.Contains(t, prompt, `"overallScore"`)
	assert.Contains(t, prompt, `"careerAlignment"`)
}

func TestAnalysisPrompt_PlaceholderForEmptyLists(t *testing.T) {
	talent := testTalent()
	talent.Skills = nil
	talent.Interests = nil

	prompt := analysisPrompt("resume text", talent, nil)

	assert.Contains(t, prompt, "Skills: none listed")
	assert.Contains(t, prompt, "Interests: none listed")
}

func TestAnalysisPrompt_CareerPathSection(t *testing.T) {
	path := testCareerPath()

	withPath := analysisPrompt("resume text", testTalent(), &path)
	withoutPath := analysisPrompt("resume text", testTalent(), nil)

	assert.Contains(t, withPath, "Platform Engineer")
	assert.Contains(t, withPath, "Go, Kubernetes, Rust")
	assert.Contains(t, withPath, "Terraform, ArgoCD")
	assert.NotContains(t, withPath, "has not selected a career path")

	// With no target the model is told explicitly to go general, the
	// section is never silently omitted.
	assert.Contains(t, withoutPath, "has not selected a career path")
	assert.True(t, strings.Contains(withoutPath, "general analysis"))
}
