package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrExtractionFailed means the model could not produce usable text from
// the uploaded file.
var ErrExtractionFailed = errors.New("resume text extraction failed")

// minExtractedChars guards against the model returning a greeting or an
// apology instead of document content.
const minExtractedChars = 50

var mediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// MediaTypeForFile guesses the mime tag from the file extension. Unknown
// extensions get a generic binary tag and extraction is still attempted.
func MediaTypeForFile(fileName string) string {
	if mt, ok := mediaTypes[strings.ToLower(filepath.Ext(fileName))]; ok {
		return mt
	}
	return "application/octet-stream"
}

// ExtractText sends the raw file to the model with a fixed extraction
// instruction and returns the prose response. No JSON is involved here.
func ExtractText(ctx context.Context, model TextModel, data []byte, fileName string) (string, error) {
	text, err := model.CompleteWithFile(ctx, extractionPrompt(), data, MediaTypeForFile(fileName))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	text = strings.TrimSpace(text)
	if len(text) < minExtractedChars {
		return "", fmt.Errorf("%w: got %d characters from %s", ErrExtractionFailed, len(text), fileName)
	}
	return text, nil
}
