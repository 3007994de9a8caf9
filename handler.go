package main

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/careerlytics/gapworker/internal/database"
	"github.com/google/uuid"
)

// maxFileBytes bounds the decoded upload size, approximated from the
// base64-encoded length before decoding.
const maxFileBytes = 5 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

// Handler runs one analysis invocation end to end. Collaborators are
// injected once at process start; tests substitute fakes.
type Handler struct {
	Store TalentStore
	Blob  BlobStore
	Model TextModel
}

// Handle validates the request, loads the talent and optional career path,
// stages the file, runs extraction then analysis, and falls back to the
// locally computed report on any AI-path failure. Once the talent was
// found, the caller always gets success:true with a contract-complete
// report. No retries: a transient model failure goes straight to fallback.
func (h *Handler) Handle(ctx context.Context, req AnalyzeRequest) (resp AnalyzeResponse) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic analyzing talent %s: %v", req.TalentID, r)
			resp = errorResponse(500, "internal error")
		}
	}()

	if h.Store == nil || h.Model == nil {
		return errorResponse(500, "server configuration missing")
	}
	if err := validateRequest(req); err != nil {
		return errorResponse(400, err.Error())
	}
	fileBytes, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return errorResponse(400, "fileData is not valid base64")
	}

	// A talentId that is not a well-formed key cannot exist in the store.
	talentID, err := uuid.Parse(req.TalentID)
	if err != nil {
		return errorResponse(404, "talent not found")
	}
	talent, err := h.Store.GetTalentByID(ctx, talentID)
	if errors.Is(err, sql.ErrNoRows) {
		return errorResponse(404, "talent not found")
	}
	if err != nil {
		return errorResponse(500, fmt.Sprintf("talent lookup failed: %v", err))
	}

	// A missing career path downgrades the analysis, it never aborts it.
	var careerPath *database.CareerPath
	if talent.SelectedPathID.Valid {
		cp, err := h.Store.GetCareerPathByID(ctx, talent.SelectedPathID.UUID)
		if err != nil {
			log.Printf("career path %s lookup failed for talent %s: %v", talent.SelectedPathID.UUID, talent.ID, err)
		} else {
			careerPath = &cp
		}
	}

	var stagedKey string
	if h.Blob != nil {
		key, err := h.Blob.Stage(ctx, fileBytes, req.FileName)
		if err != nil {
			log.Printf("staging %s failed: %v", req.FileName, err)
		} else {
			stagedKey = key
		}
	}
	// The staged file must not outlive the invocation, whichever exit is
	// taken. Registered after the recover above so it also runs on panic.
	defer func() {
		if stagedKey == "" {
			return
		}
		if err := h.Blob.Release(ctx, stagedKey); err != nil {
			log.Printf("failed to release staged file %s: %v", stagedKey, err)
		}
	}()

	usedFallback := false
	report, err := h.runAIPath(ctx, fileBytes, req.FileName, talent, careerPath)
	if err != nil {
		log.Printf("AI analysis failed for talent %s, using fallback: %v", talent.ID, err)
		report = BuildFallbackReport(talent, careerPath)
		usedFallback = true
	}
	ClampReportScores(&report)

	meta := &ResultMetadata{
		Talent: TalentMeta{
			ID:          talent.ID.String(),
			FullName:    talent.FullName,
			CareerStage: talent.CareerStage,
		},
		FileName:      req.FileName,
		AnalyzedAt:    time.Now().UTC(),
		ExecutionTime: time.Since(start).Milliseconds(),
		UsedFallback:  usedFallback,
	}
	if careerPath != nil {
		meta.CareerPath = &CareerPathMeta{ID: careerPath.ID.String(), Title: careerPath.Title}
	}

	return AnalyzeResponse{
		Success:    true,
		StatusCode: 200,
		Analysis:   &report,
		Metadata:   meta,
	}
}

// runAIPath is the two-stage model pipeline. Analysis consumes extraction's
// output, so the stages run strictly in sequence.
func (h *Handler) runAIPath(ctx context.Context, fileBytes []byte, fileName string, talent database.Talent, careerPath *database.CareerPath) (AnalysisReport, error) {
	resumeText, err := ExtractText(ctx, h.Model, fileBytes, fileName)
	if err != nil {
		return AnalysisReport{}, err
	}
	return AnalyzeResume(ctx, h.Model, resumeText, talent, careerPath)
}

func validateRequest(req AnalyzeRequest) error {
	if strings.TrimSpace(req.TalentID) == "" {
		return errors.New("talentId is required")
	}
	if req.FileData == "" {
		return errors.New("fileData is required")
	}
	if req.FileName == "" {
		return errors.New("fileName is required")
	}
	if ext := strings.ToLower(filepath.Ext(req.FileName)); !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q", ext)
	}
	if len(req.FileData)/4*3 > maxFileBytes {
		return errors.New("file exceeds the 5 MB limit")
	}
	return nil
}

func errorResponse(statusCode int, msg string) AnalyzeResponse {
	return AnalyzeResponse{Success: false, StatusCode: statusCode, Error: msg}
}
