// models/ai.go
package models

import "time"

// AIMessage is one turn of a chatbot conversation.
type AIMessage struct {
	Role    string    `json:"role"` // "user" or "model"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// AIContext is the rolling conversation context stored per user.
type AIContext struct {
	Messages []AIMessage `json:"messages"`
}

// AIChatRequest is the chatbot request payload.
type AIChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// AIChatResponse is the chatbot reply.
type AIChatResponse struct {
	Reply      string `json:"reply"`
	Disclaimer string `json:"disclaimer"`
}
