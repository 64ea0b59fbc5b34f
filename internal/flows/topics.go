package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/schema"
)

// TopicsInput is the caller-declared input of the topic-suggestion flow.
type TopicsInput struct {
	ExamType string
}

var topicsInputSchema = schema.New(FlowTopics,
	schema.Enum("exam_type", true, ExamTypes),
)

func (in TopicsInput) Validate() error {
	errs := topicsInputSchema.Validate(map[string]interface{}{
		"exam_type": in.ExamType,
	})
	if errs != nil {
		return errs
	}
	return nil
}

const topicsPromptTemplate = `You are a mentor for %s aspirants.
Suggest 8 to 12 high-yield study topics an aspirant should focus on this month.

Respond with ONLY a JSON object in this exact format:
{
  "topics": ["topic 1", "topic 2"]
}`

type topicsPayload struct {
	Topics []string `json:"topics"`
}

// SuggestTopics runs the study-topic suggestion flow.
func SuggestTopics(ctx context.Context, gen domain.TextGenerator, in TopicsInput) (*domain.TopicSuggestions, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(topicsPromptTemplate, strings.ToUpper(in.ExamType))

	doc, err := invoke(ctx, gen, FlowTopics, prompt)
	if err != nil {
		return nil, err
	}

	var payload topicsPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, domain.NewGenerationEmptyError(FlowTopics)
	}

	topics := make([]string, 0, len(payload.Topics))
	for _, t := range payload.Topics {
		if strings.TrimSpace(t) != "" {
			topics = append(topics, strings.TrimSpace(t))
		}
	}
	if len(topics) == 0 {
		return nil, domain.NewEmptyResultError(FlowTopics)
	}

	return &domain.TopicSuggestions{ExamType: in.ExamType, Topics: topics}, nil
}
