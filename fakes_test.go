package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/careerlytics/gapworker/internal/database"
	"github.com/google/uuid"
)

// fakeModel scripts the two model calls the pipeline makes.
type fakeModel struct {
	fileResp        string
	fileErr         error
	completeResp    string
	completeErr     error
	panicOnComplete bool

	fileCalls     int
	completeCalls int
	lastMimeType  string
	lastPrompt    string
}

func (m *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	m.completeCalls++
	m.lastPrompt = prompt
	if m.panicOnComplete {
		panic("model exploded")
	}
	return m.completeResp, m.completeErr
}

func (m *fakeModel) CompleteWithFile(_ context.Context, prompt string, _ []byte, mimeType string) (string, error) {
	m.fileCalls++
	m.lastPrompt = prompt
	m.lastMimeType = mimeType
	return m.fileResp, m.fileErr
}

type fakeStore struct {
	talents map[uuid.UUID]database.Talent
	paths   map[uuid.UUID]database.CareerPath

	talentErr error
	pathErr   error

	talentCalls int
	pathCalls   int
}

func (s *fakeStore) GetTalentByID(_ context.Context, id uuid.UUID) (database.Talent, error) {
	s.talentCalls++
	if s.talentErr != nil {
		return database.Talent{}, s.talentErr
	}
	t, ok := s.talents[id]
	if !ok {
		return database.Talent{}, sql.ErrNoRows
	}
	return t, nil
}

func (s *fakeStore) GetCareerPathByID(_ context.Context, id uuid.UUID) (database.CareerPath, error) {
	s.pathCalls++
	if s.pathErr != nil {
		return database.CareerPath{}, s.pathErr
	}
	p, ok := s.paths[id]
	if !ok {
		return database.CareerPath{}, sql.ErrNoRows
	}
	return p, nil
}

type fakeBlob struct {
	stageErr error

	stageCalls   int
	releaseCalls int
	releasedKeys []string
}

func (b *fakeBlob) Stage(_ context.Context, _ []byte, fileName string) (string, error) {
	b.stageCalls++
	if b.stageErr != nil {
		return "", b.stageErr
	}
	return "staged/" + fileName, nil
}

func (b *fakeBlob) Release(_ context.Context, key string) error {
	b.releaseCalls++
	b.releasedKeys = append(b.releasedKeys, key)
	return nil
}

// validReportJSON is a well-formed model analysis response with the given
// overall score.
func validReportJSON(overallScore int) string {
	return fmt.Sprintf(`{
  "overallScore": %d,
  "strengths": ["Strong backend background"],
  "weaknesses": ["Sparse cloud experience"],
  "profileVsGaps": {
    "missingFromResume": ["Kubernetes"],
    "missingFromProfile": ["Terraform"],
    "inconsistencies": []
  },
  "careerAlignment": {
    "alignmentScore": 70,
    "matchingSkills": ["Go"],
    "missingSkills": ["Rust"],
    "matchingCertifications": [],
    "missingCertifications": ["CKA"],
    "relevantExperience": ["4 years as backend engineer"],
    "additionalRequirements": []
  },
  "recommendations": ["Add cloud projects"],
  "nextSteps": ["Schedule CKA exam"],
  "marketability": {
    "marketabilityScore": 65,
    "summary": "Solid profile with clear growth areas.",
    "competitiveAdvantages": ["Production Go experience"],
    "areasForImprovement": ["Cloud certifications"]
  }
}`, overallScore)
}
