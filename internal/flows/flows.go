// Package flows implements the generation flow contracts: each flow declares
// an input schema, renders a prompt, invokes the text-generation port, and
// enforces the output schema with deterministic per-item repair. Model output
// is treated as untrusted; nothing leaves this package unvalidated.
package flows

import (
	"context"
	"errors"

	"studytrack/internal/domain"
)

// Flow names, used for cache keys, history records and error context.
const (
	FlowQuiz         = "quiz-generation"
	FlowSummary      = "material-summary"
	FlowTopics       = "topic-suggestions"
	FlowProductivity = "productivity-insights"
	FlowTranscript   = "transcript-notes"
	FlowDoubt        = "doubt-solver"
	FlowVocab        = "vocabulary-session"
)

// ExamTypes lists the competitive exams the flows know how to target.
var ExamTypes = []string{"upsc", "jee", "neet", "gate", "cat", "ssc", "banking", "other"}

// invoke performs the single outbound model call for a flow and extracts the
// JSON document from the raw response. No retry happens here; an empty or
// unparseable response surfaces as GENERATION_EMPTY for the caller to handle.
func invoke(ctx context.Context, gen domain.TextGenerator, flow, prompt string) ([]byte, error) {
	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewLLMServiceError(err)
	}

	doc, ok := extractJSON(raw)
	if !ok {
		return nil, domain.NewGenerationEmptyError(flow)
	}
	return []byte(doc), nil
}
