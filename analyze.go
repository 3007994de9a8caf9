package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careerlytics/gapworker/internal/database"
)

// ErrAnalysisFailed means the model response could not be turned into a
// trustworthy report.
var ErrAnalysisFailed = errors.New("resume analysis failed")

// requiredReportFields are the top-level keys the model response must
// carry. A missing field means the response cannot be trusted at all;
// an out-of-range score is merely clamped.
var requiredReportFields = []string{
	"overallScore",
	"strengths",
	"weaknesses",
	"profileVsGaps",
	"careerAlignment",
	"recommendations",
	"nextSteps",
	"marketability",
}

// AnalyzeResume runs the structured gap analysis over previously extracted
// resume text. The model output is sanitized, checked for the required
// field set and score-clamped before it is returned.
func AnalyzeResume(ctx context.Context, model TextModel, resumeText string, talent database.Talent, careerPath *database.CareerPath) (AnalysisReport, error) {
	raw, err := model.Complete(ctx, analysisPrompt(resumeText, talent, careerPath))
	if err != nil {
		return AnalysisReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	parsed, err := SanitizeAndParse(raw)
	if err != nil {
		return AnalysisReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	for _, field := range requiredReportFields {
		if _, ok := parsed[field]; !ok {
			return AnalysisReport{}, fmt.Errorf("%w: response missing required field %q", ErrAnalysisFailed, field)
		}
	}

	buf, err := json.Marshal(parsed)
	if err != nil {
		return AnalysisReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	var report AnalysisReport
	if err := json.Unmarshal(buf, &report); err != nil {
		return AnalysisReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	ClampReportScores(&report)
	return report, nil
}
