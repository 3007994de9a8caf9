package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

func GetAgent(apiKey, agentName string) (agent.Agent, error) {
	ctx := context.Background()
	model, err := gemini.NewModel(ctx, "gemini-2.5-pro", &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %v", err)
	}

	customAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Analyze resume against talent profile",
		Instruction: instruction(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %v", err)
	}

	return customAgent, err
}

// AgentModel implements TextModel over an adk runner. Each call runs in its
// own short-lived agent session, deleted before returning.
type AgentModel struct {
	Runner   *runner.Runner
	Sessions session.Service
	AppName  string
}

func (m *AgentModel) Complete(ctx context.Context, prompt string) (string, error) {
	return m.run(ctx, []*genai.Part{
		{Text: prompt},
	})
}

func (m *AgentModel) CompleteWithFile(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	return m.run(ctx, []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
		{Text: prompt},
	})
}

func (m *AgentModel) run(ctx context.Context, parts []*genai.Part) (string, error) {
	agentSession, err := m.Sessions.Create(ctx, &session.CreateRequest{
		AppName:   m.AppName,
		UserID:    "gapworker",
		SessionID: uuid.New().String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}
	defer func() {
		err := m.Sessions.Delete(ctx, &session.DeleteRequest{
			AppName:   agentSession.Session.AppName(),
			UserID:    agentSession.Session.UserID(),
			SessionID: agentSession.Session.ID(),
		})
		if err != nil {
			log.Printf("failed to delete agent session: %v", err)
		}
	}()

	stream := m.Runner.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
		Role:  "user",
		Parts: parts,
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}
	if output == "" {
		return "", fmt.Errorf("empty agent response")
	}
	return output, nil
}
