package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampReportScores clips every score field into [0,100]. Out-of-range
// scores are a common, harmless model inaccuracy and never fail a report.
func ClampReportScores(report *AnalysisReport) {
	report.OverallScore = clamp(report.OverallScore, 0, 100)
	report.CareerAlignment.AlignmentScore = clamp(report.CareerAlignment.AlignmentScore, 0, 100)
	report.Marketability.MarketabilityScore = clamp(report.Marketability.MarketabilityScore, 0, 100)
}

// --- Blob staging ---

// R2Store stages uploaded files in an S3-compatible bucket for the lifetime
// of one invocation.
type R2Store struct {
	Client *s3.Client
	Bucket string
}

func (r *R2Store) Stage(ctx context.Context, data []byte, fileName string) (string, error) {
	key := fmt.Sprintf("staged/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(fileName)))
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(MediaTypeForFile(fileName)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return key, nil
}

func (r *R2Store) Release(ctx context.Context, key string) error {
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func publishAnalysisUpdate(rabbitConn *amqp.Connection, talentID string, update any) error {
	ch, err := rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("talent.%s", talentID)

	return ch.Publish(
		"analysis_updates", // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
