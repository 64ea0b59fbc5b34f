// Package llm provides TextGenerator adapters over LangchainGo model clients.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// googleAIGenerator implements domain.TextGenerator on the Gemini API.
type googleAIGenerator struct {
	model       *googleai.GoogleAI
	temperature float64
	timeout     time.Duration
}

// NewGoogleAIGenerator creates a Gemini-backed text generator.
func NewGoogleAIGenerator(ctx context.Context, apiKey, modelName string, temperature float64, timeout time.Duration) (domain.TextGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google AI API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("google AI model name cannot be empty")
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	logger.Get().Info("Initialized Google AI generator", zap.String("model", modelName))
	return &googleAIGenerator{model: model, temperature: temperature, timeout: timeout}, nil
}

// Generate implements domain.TextGenerator
func (g *googleAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(g.temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Get().Error("Google AI request timed out", zap.Error(err))
			return "", domain.NewLLMServiceError(err)
		}
		logger.Get().Error("Google AI request failed", zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}
	return response, nil
}

var _ domain.TextGenerator = (*googleAIGenerator)(nil)
