package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedResponse means the model output could not be coerced into
// valid JSON even after repair.
var ErrMalformedResponse = errors.New("malformed model response")

// CleanJSON strips markdown code fences the model wraps JSON in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ```json or ``` with optional newline
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	// Remove closing ``` unconditionally
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// jsonRepair is one pure text-to-text fix for near-JSON model output.
type jsonRepair struct {
	name  string
	apply func(string) string
}

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	singleQuoteRe   = regexp.MustCompile(`'([^']*)'`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// jsonRepairs run in order. Each repair is idempotent.
var jsonRepairs = []jsonRepair{
	{"trailing_commas", func(s string) string { return trailingCommaRe.ReplaceAllString(s, "$1") }},
	{"bare_keys", func(s string) string { return bareKeyRe.ReplaceAllString(s, `$1"$2":`) }},
	{"single_quotes", func(s string) string { return singleQuoteRe.ReplaceAllString(s, `"$1"`) }},
	{"collapse_whitespace", func(s string) string { return whitespaceRe.ReplaceAllString(s, " ") }},
}

// SanitizeJSON cuts the model output down to its outermost JSON object and
// applies the repair passes. The result is not guaranteed to parse; use
// SanitizeAndParse for that.
func SanitizeJSON(raw string) (string, error) {
	clean := CleanJSON(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 || start >= end {
		return "", fmt.Errorf("%w: no JSON object found in response", ErrMalformedResponse)
	}
	clean = clean[start : end+1]
	for _, repair := range jsonRepairs {
		clean = repair.apply(clean)
	}
	return clean, nil
}

// SanitizeAndParse repairs raw model output and parses it into a generic
// JSON object. Model responses only usually resemble valid JSON, so every
// failure mode maps to ErrMalformedResponse.
func SanitizeAndParse(raw string) (map[string]any, error) {
	repaired, err := SanitizeJSON(raw)
	if err != nil {
		return nil, err
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return parsed, nil
}
