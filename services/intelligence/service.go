// Package ai powers the legal information chatbot.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"haki/models"
)

// Disclaimer is appended to every chatbot reply. The bot explains the law
// in plain language, it does not give legal advice.
const Disclaimer = "This is general legal information, not legal advice. " +
	"For advice on your specific situation, consult a verified lawyer."

const systemPrompt = `You are a legal information assistant for a Kenyan legal aid platform.
Explain laws, rights and court procedures in plain, simple language.
Answer in the language the user writes in (English or Kiswahili).
Never draft legal documents, never predict case outcomes, and never present
yourself as a lawyer. When a question needs professional judgement, say so
and suggest booking a consultation with a verified lawyer.`

// Generator produces a completion for a prompt. Satisfied by GeminiClient.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type AIService interface {
	Chat(ctx context.Context, userID string, req models.AIChatRequest) (*models.AIChatResponse, error)
	ClearContext(ctx context.Context, userID string) error
}

// DefaultAIService is the production implementation.
type DefaultAIService struct {
	Gen      Generator
	CtxStore *RedisContextStore
}

// Chat answers one user turn, threading the stored conversation history
// into the prompt and persisting the exchange afterwards.
func (s *DefaultAIService) Chat(ctx context.Context, userID string, req models.AIChatRequest) (*models.AIChatResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	aiCtx, err := s.CtxStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	reply, err := s.Gen.GenerateContent(ctx, buildPrompt(aiCtx, prompt))
	if err != nil {
		return nil, err
	}
	reply = strings.TrimSpace(reply)

	now := time.Now()
	aiCtx.Messages = append(aiCtx.Messages,
		models.AIMessage{Role: "user", Content: prompt, At: now},
		models.AIMessage{Role: "model", Content: reply, At: now},
	)
	if err := s.CtxStore.Set(ctx, userID, aiCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.AIChatResponse{Reply: reply, Disclaimer: Disclaimer}, nil
}

// ClearContext drops the user's conversation history.
func (s *DefaultAIService) ClearContext(ctx context.Context, userID string) error {
	return s.CtxStore.Clear(ctx, userID)
}

func buildPrompt(aiCtx *models.AIContext, prompt string) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	for _, msg := range aiCtx.Messages {
		sb.WriteString(msg.Role)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("user: ")
	sb.WriteString(prompt)
	sb.WriteString("\nmodel:")
	return sb.String()
}
