package main

import (
	"context"
	"time"

	"github.com/careerlytics/gapworker/internal/database"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	Handler     *Handler
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
	AgentRunner *runner.Runner
	AgentName   string
}

// TalentStore is the slice of the database layer the pipeline reads from.
// *database.Queries satisfies it; tests use an in-memory fake.
type TalentStore interface {
	GetTalentByID(ctx context.Context, id uuid.UUID) (database.Talent, error)
	GetCareerPathByID(ctx context.Context, id uuid.UUID) (database.CareerPath, error)
}

// BlobStore stages the uploaded file for the lifetime of one invocation.
type BlobStore interface {
	Stage(ctx context.Context, data []byte, fileName string) (string, error)
	Release(ctx context.Context, key string) error
}

// TextModel is the generative capability used by both pipeline stages.
type TextModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithFile(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
}

// AnalyzeRequest is the payload carried by one queue message.
type AnalyzeRequest struct {
	TalentID string `json:"talentId"`
	FileData string `json:"fileData"`
	FileName string `json:"fileName"`
}

// AnalyzeResponse is the envelope returned for every invocation,
// including handled failures.
type AnalyzeResponse struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Analysis   *AnalysisReport `json:"analysis,omitempty"`
	Metadata   *ResultMetadata `json:"metadata,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type ResultMetadata struct {
	Talent        TalentMeta      `json:"talent"`
	CareerPath    *CareerPathMeta `json:"careerPath"`
	FileName      string          `json:"fileName"`
	AnalyzedAt    time.Time       `json:"analyzedAt"`
	ExecutionTime int64           `json:"executionTime"`
	UsedFallback  bool            `json:"usedFallback"`
}

type TalentMeta struct {
	ID          string `json:"id"`
	FullName    string `json:"fullname"`
	CareerStage string `json:"careerStage"`
}

type CareerPathMeta struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AnalysisReport is the output contract shared by the AI path and the
// fallback path. Every score is clamped to [0,100] before the report
// leaves the pipeline.
type AnalysisReport struct {
	OverallScore    int             `json:"overallScore"`
	Strengths       []string        `json:"strengths"`
	Weaknesses      []string        `json:"weaknesses"`
	ProfileVsGaps   ProfileVsGaps   `json:"profileVsGaps"`
	CareerAlignment CareerAlignment `json:"careerAlignment"`
	Recommendations []string        `json:"recommendations"`
	NextSteps       []string        `json:"nextSteps"`
	Marketability   Marketability   `json:"marketability"`
}

type ProfileVsGaps struct {
	MissingFromResume  []string `json:"missingFromResume"`
	MissingFromProfile []string `json:"missingFromProfile"`
	Inconsistencies    []string `json:"inconsistencies"`
}

type CareerAlignment struct {
	AlignmentScore         int      `json:"alignmentScore"`
	MatchingSkills         []string `json:"matchingSkills"`
	MissingSkills          []string `json:"missingSkills"`
	MatchingCertifications []string `json:"matchingCertifications"`
	MissingCertifications  []string `json:"missingCertifications"`
	RelevantExperience     []string `json:"relevantExperience"`
	AdditionalRequirements []string `json:"additionalRequirements"`
}

type Marketability struct {
	MarketabilityScore    int      `json:"marketabilityScore"`
	Summary               string   `json:"summary"`
	CompetitiveAdvantages []string `json:"competitiveAdvantages"`
	AreasForImprovement   []string `json:"areasForImprovement"`
}
