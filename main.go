package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/careerlytics/gapworker/internal/database"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

func main() {
	_ = godotenv.Load()
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal("empty RABBITMQ_URL in env")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}
	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID))
	})
	blob := &R2Store{Client: s3Client, Bucket: r2Config.Bucket}

	googleApiKey := os.Getenv("GOOGLE_API_KEY")
	if googleApiKey == "" {
		log.Fatal("empty GOOGLE_API_KEY in env")
	}
	// create agent and runner
	agentName := "gap analyzer"
	analyzer, err := GetAgent(googleApiKey, agentName)
	if err != nil {
		log.Fatalf("failed to create agent: %v", err)
	}

	inMemoryService := session.InMemoryService()

	r, err := runner.New(runner.Config{
		AppName:        analyzer.Name(),
		Agent:          analyzer,
		SessionService: inMemoryService,
	})
	if err != nil {
		log.Fatalf("failed to create runner: %v", err)
	}
	model := &AgentModel{
		Runner:   r,
		Sessions: inMemoryService,
		AppName:  analyzer.Name(),
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}

	handler := &Handler{
		Store: dbqueries,
		Blob:  blob,
		Model: model,
	}
	workerConfig := WorkerConfig{
		DB:          dbqueries,
		Handler:     handler,
		RabbitConn:  conn,
		RABBITMQUrl: rabbitmqUrl,
		AgentRunner: r,
		AgentName:   agentName,
	}

	fmt.Println("Starting 3 workers consumer pool ")
	workerConfig.StartConsumerWorkerPool(3)
}
