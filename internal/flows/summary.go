package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/schema"
)

// SummaryInput is the caller-declared input of the material-summary flow.
type SummaryInput struct {
	Topic    string
	Material string
}

var summaryInputSchema = schema.New(FlowSummary,
	schema.String("topic", true, 3, 150),
	schema.String("material", true, 50, 20000),
)

func (in SummaryInput) Validate() error {
	errs := summaryInputSchema.Validate(map[string]interface{}{
		"topic":    in.Topic,
		"material": in.Material,
	})
	if errs != nil {
		return errs
	}
	return nil
}

const summaryPromptTemplate = `You are a study assistant for competitive-exam preparation.
Summarize the following material on the topic "%s" for quick revision.

Respond with ONLY a JSON object in this exact format:
{
  "summary": "a focused summary in under 250 words",
  "keyPoints": ["key point 1", "key point 2"]
}

Material:
%s`

type summaryPayload struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// SummarizeMaterial runs the study-material summarization flow.
func SummarizeMaterial(ctx context.Context, gen domain.TextGenerator, in SummaryInput) (*domain.Summary, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(summaryPromptTemplate, in.Topic, in.Material)

	doc, err := invoke(ctx, gen, FlowSummary, prompt)
	if err != nil {
		return nil, err
	}

	var payload summaryPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, domain.NewGenerationEmptyError(FlowSummary)
	}

	summary := strings.TrimSpace(payload.Summary)
	if summary == "" {
		return nil, domain.NewEmptyResultError(FlowSummary)
	}

	points := make([]string, 0, len(payload.KeyPoints))
	for _, p := range payload.KeyPoints {
		if strings.TrimSpace(p) != "" {
			points = append(points, strings.TrimSpace(p))
		}
	}

	return &domain.Summary{Topic: in.Topic, Summary: summary, KeyPoints: points}, nil
}
