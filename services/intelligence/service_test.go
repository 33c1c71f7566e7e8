package ai

import (
	"strings"
	"testing"
	"time"

	"haki/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptThreadsHistory(t *testing.T) {
	now := time.Now()
	aiCtx := &models.AIContext{
		Messages: []models.AIMessage{
			{Role: "user", Content: "What is bail?", At: now},
			{Role: "model", Content: "Bail is money paid so an accused person can stay free until trial.", At: now},
		},
	}

	prompt := buildPrompt(aiCtx, "How much does it usually cost?")

	assert.True(t, strings.HasPrefix(prompt, systemPrompt))
	assert.Contains(t, prompt, "user: What is bail?")
	assert.Contains(t, prompt, "model: Bail is money")
	assert.True(t, strings.HasSuffix(prompt, "user: How much does it usually cost?\nmodel:"))
}

func TestBuildPromptWithEmptyHistory(t *testing.T) {
	prompt := buildPrompt(&models.AIContext{}, "Nini maana ya dhamana?")

	assert.Contains(t, prompt, "user: Nini maana ya dhamana?")
	assert.NotContains(t, prompt, "model: \n")
}
