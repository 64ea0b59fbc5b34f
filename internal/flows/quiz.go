package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/schema"
)

// QuizInput is the caller-declared input of the quiz-generation flow.
type QuizInput struct {
	Topic        string
	Difficulty   string
	ExamType     string
	NumQuestions int
}

var quizInputSchema = schema.New(FlowQuiz,
	schema.String("topic", true, 3, 150),
	schema.Enum("difficulty", true, domain.Difficulties),
	schema.Enum("exam_type", true, ExamTypes),
	schema.Int("num_questions", true, domain.MinQuizQuestions, domain.MaxQuizQuestions),
)

func (in QuizInput) values() map[string]interface{} {
	return map[string]interface{}{
		"topic":         in.Topic,
		"difficulty":    in.Difficulty,
		"exam_type":     in.ExamType,
		"num_questions": in.NumQuestions,
	}
}

// Validate applies the declared input schema. Violations are caller errors
// and fail fast, before any model call.
func (in QuizInput) Validate() error {
	if errs := quizInputSchema.Validate(in.values()); errs != nil {
		return errs
	}
	return nil
}

const quizPromptTemplate = `You are an expert question setter for the %s exam.
Create a multiple-choice quiz of exactly %d questions on the topic "%s" at %s difficulty.

Respond with ONLY a JSON object in this exact format:
{
  "quizTitle": "a short descriptive title",
  "questions": [
    {
      "questionText": "the question",
      "options": ["option 1", "option 2", "option 3", "option 4"],
      "correctAnswerIndex": 0,
      "explanation": "why the correct option is right"
    }
  ]
}

Rules:
1. Every question must have 4 or 5 options.
2. correctAnswerIndex is the zero-based position of the correct option.
3. Explanations must be concise and factual.
4. Do not include any text outside the JSON object.`

type quizPayload struct {
	QuizTitle string `json:"quizTitle"`
	Questions []struct {
		QuestionText       string   `json:"questionText"`
		Options            []string `json:"options"`
		CorrectAnswerIndex int      `json:"correctAnswerIndex"`
		Explanation        string   `json:"explanation"`
	} `json:"questions"`
}

// GenerateQuiz runs the quiz-generation flow: validate input, render the
// prompt, call the model once, then enforce the output schema with per-item
// repair. The returned set satisfies every QuizQuestion invariant.
func GenerateQuiz(ctx context.Context, gen domain.TextGenerator, in QuizInput) (*domain.QuizSet, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(quizPromptTemplate,
		strings.ToUpper(in.ExamType), in.NumQuestions, in.Topic, in.Difficulty)

	doc, err := invoke(ctx, gen, FlowQuiz, prompt)
	if err != nil {
		return nil, err
	}

	var payload quizPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, domain.NewGenerationEmptyError(FlowQuiz)
	}

	raw := make([]domain.QuizQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		raw = append(raw, domain.QuizQuestion{
			Question:           strings.TrimSpace(q.QuestionText),
			Options:            q.Options,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        strings.TrimSpace(q.Explanation),
		})
	}

	questions := repairQuestions(FlowQuiz, raw)
	if len(questions) == 0 {
		return nil, domain.NewEmptyResultError(FlowQuiz)
	}

	title := strings.TrimSpace(payload.QuizTitle)
	if title == "" {
		title = "Quiz: " + in.Topic
	}

	return &domain.QuizSet{Title: title, Questions: questions}, nil
}
