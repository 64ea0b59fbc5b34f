package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// ollamaGenerator implements domain.TextGenerator on a local Ollama server,
// used in development so no hosted API key is needed.
type ollamaGenerator struct {
	model       *ollama.LLM
	temperature float64
	timeout     time.Duration
}

// NewOllamaGenerator creates an Ollama-backed text generator.
func NewOllamaGenerator(serverURL, modelName string, temperature float64, timeout time.Duration) (domain.TextGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	model, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(modelName),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	logger.Get().Info("Initialized Ollama generator",
		zap.String("server_url", serverURL), zap.String("model", modelName))
	return &ollamaGenerator{model: model, temperature: temperature, timeout: timeout}, nil
}

// Generate implements domain.TextGenerator
func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(g.temperature),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Get().Error("Ollama request timed out", zap.Error(err))
			return "", domain.NewLLMServiceError(err)
		}
		logger.Get().Error("Ollama request failed", zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}
	return response, nil
}

var _ domain.TextGenerator = (*ollamaGenerator)(nil)
