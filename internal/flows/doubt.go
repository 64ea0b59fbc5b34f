package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/schema"
)

// DoubtInput is the caller-declared input of the doubt-solving flow.
type DoubtInput struct {
	Question string
	ExamType string
	Subject  string
}

var doubtInputSchema = schema.New(FlowDoubt,
	schema.String("question", true, 10, 2000),
	schema.Enum("exam_type", true, ExamTypes),
	schema.String("subject", false, 0, 100),
)

func (in DoubtInput) Validate() error {
	errs := doubtInputSchema.Validate(map[string]interface{}{
		"question":  in.Question,
		"exam_type": in.ExamType,
		"subject":   in.Subject,
	})
	if errs != nil {
		return errs
	}
	return nil
}

const doubtPromptTemplate = `You are a patient subject-matter tutor for %s aspirants.%s
Answer the student's doubt clearly, at exam level.

Respond with ONLY a JSON object in this exact format:
{
  "explanation": "a clear step-by-step explanation",
  "relatedTopics": ["related topic the student should revise"],
  "confidence": 0.0
}

confidence is a number between 0 and 1 expressing how certain you are.

Doubt: %s`

type doubtPayload struct {
	Explanation   string   `json:"explanation"`
	RelatedTopics []string `json:"relatedTopics"`
	Confidence    float64  `json:"confidence"`
}

// SolveDoubt runs the academic doubt-solving flow.
func SolveDoubt(ctx context.Context, gen domain.TextGenerator, in DoubtInput) (*domain.DoubtAnswer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	subjectLine := ""
	if strings.TrimSpace(in.Subject) != "" {
		subjectLine = fmt.Sprintf(" The doubt concerns %s.", in.Subject)
	}
	prompt := fmt.Sprintf(doubtPromptTemplate,
		strings.ToUpper(in.ExamType), subjectLine, in.Question)

	doc, err := invoke(ctx, gen, FlowDoubt, prompt)
	if err != nil {
		return nil, err
	}

	var payload doubtPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, domain.NewGenerationEmptyError(FlowDoubt)
	}

	explanation := strings.TrimSpace(payload.Explanation)
	if explanation == "" {
		return nil, domain.NewEmptyResultError(FlowDoubt)
	}

	return &domain.DoubtAnswer{
		Explanation:   explanation,
		RelatedTopics: trimNonEmpty(payload.RelatedTopics),
		Confidence:    clamp01(payload.Confidence),
	}, nil
}
