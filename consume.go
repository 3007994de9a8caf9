package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/careerlytics/gapworker/internal/database"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
)

// retry retries a function up to `attempts` times with backoff. Used for
// the persistence write only; the model pipeline itself is never retried.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// persistResult saves the successful envelope's report for later retrieval.
func persistResult(ctx context.Context, db *database.Queries, req AnalyzeRequest, resp AnalyzeResponse) error {
	if !resp.Success || resp.Analysis == nil || resp.Metadata == nil {
		return nil
	}
	talentID, err := uuid.Parse(resp.Metadata.Talent.ID)
	if err != nil {
		return fmt.Errorf("bad talent id in metadata: %w", err)
	}
	reportJSON, err := json.Marshal(resp.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = retry(3, func() (any, error) {
		return nil, db.UpsertAnalysisReport(ctx, database.UpsertAnalysisReportParams{
			Report:       reportJSON,
			FileName:     req.FileName,
			UsedFallback: resp.Metadata.UsedFallback,
			TalentID:     talentID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save analysis report after retries: %w", err)
	}
	return nil
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"analyses", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"analyses", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		req := AnalyzeRequest{}
		if err := json.Unmarshal(msg.Body, &req); err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			continue
		}
		log.Printf("Worker %d analyzing resume %s for talent %s", id+1, req.FileName, req.TalentID)

		update := map[string]any{
			"talent_id": req.TalentID,
			"status":    "processing",
			"message":   "analysis started",
			"timestamp": time.Now(),
		}
		if err := publishAnalysisUpdate(workerConfig.RabbitConn, req.TalentID, update); err != nil {
			log.Println("failed to publish update:", err)
		}

		resp := workerConfig.Handler.Handle(context.Background(), req)

		// The envelope itself is the terminal update, success or not.
		if err := publishAnalysisUpdate(workerConfig.RabbitConn, req.TalentID, resp); err != nil {
			log.Println("failed to publish result:", err)
		}

		if err := persistResult(context.Background(), workerConfig.DB, req, resp); err != nil {
			log.Printf("error persisting result for talent %s: %v", req.TalentID, err)
		}
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
