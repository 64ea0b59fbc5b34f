package flows

import (
	"context"
	"testing"

	"studytrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuizInput() QuizInput {
	return QuizInput{
		Topic:        "Indian Polity",
		Difficulty:   "intermediate",
		ExamType:     "upsc",
		NumQuestions: 3,
	}
}

func TestQuizInputValidate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		assert.NoError(t, validQuizInput().Validate())
	})

	t.Run("short topic fails", func(t *testing.T) {
		in := validQuizInput()
		in.Topic = "ab"
		err := in.Validate()
		require.Error(t, err)
		var errs domain.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "topic", errs[0].Field)
	})

	t.Run("unknown difficulty fails", func(t *testing.T) {
		in := validQuizInput()
		in.Difficulty = "impossible"
		assert.Error(t, in.Validate())
	})

	t.Run("unknown exam type fails", func(t *testing.T) {
		in := validQuizInput()
		in.ExamType = "driving-license"
		assert.Error(t, in.Validate())
	})

	t.Run("question count out of range fails", func(t *testing.T) {
		in := validQuizInput()
		in.NumQuestions = 11
		assert.Error(t, in.Validate())

		in.NumQuestions = 2
		assert.Error(t, in.Validate())
	})
}

func TestGenerateQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid input never reaches the model", func(t *testing.T) {
		gen := stubGenerator{err: errGeneratorDown}
		in := validQuizInput()
		in.Topic = ""
		_, err := GenerateQuiz(ctx, gen, in)
		var errs domain.ValidationErrors
		assert.ErrorAs(t, err, &errs)
	})

	t.Run("out of range answer index is clamped to zero", func(t *testing.T) {
		gen := stubGenerator{output: `{
			"quizTitle": "Polity Basics",
			"questions": [
				{"questionText": "Q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 99, "explanation": "e1"},
				{"questionText": "Q2", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 2, "explanation": "e2"}
			]
		}`}

		quiz, err := GenerateQuiz(ctx, gen, validQuizInput())
		require.NoError(t, err)
		require.Len(t, quiz.Questions, 2)
		assert.Equal(t, 0, quiz.Questions[0].CorrectAnswerIndex)
		assert.Equal(t, 2, quiz.Questions[1].CorrectAnswerIndex)
	})

	t.Run("negative answer index is clamped to zero", func(t *testing.T) {
		gen := stubGenerator{output: `{
			"quizTitle": "T",
			"questions": [
				{"questionText": "Q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": -1, "explanation": "e"}
			]
		}`}

		quiz, err := GenerateQuiz(ctx, gen, validQuizInput())
		require.NoError(t, err)
		assert.Equal(t, 0, quiz.Questions[0].CorrectAnswerIndex)
	})

	t.Run("oversized option list is truncated", func(t *testing.T) {
		gen := stubGenerator{output: `{
			"quizTitle": "T",
			"questions": [
				{"questionText": "Q1", "options": ["a", "b", "c", "d", "e", "f", "g"], "correctAnswerIndex": 1, "explanation": "e"}
			]
		}`}

		quiz, err := GenerateQuiz(ctx, gen, validQuizInput())
		require.NoError(t, err)
		assert.Len(t, quiz.Questions[0].Options, domain.MaxQuizOptions)
	})

	t.Run("questions with too few options are dropped", func(t *testing.T) {
		gen := stubGenerator{output: `{
			"quizTitle": "T",
			"questions": [
				{"questionText": "Q1", "options": ["a", "b"], "correctAnswerIndex": 0, "explanation": "e"},
				{"questionText": "Q2", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 1, "explanation": "e"}
			]
		}`}

		quiz, err := GenerateQuiz(ctx, gen, validQuizInput())
		require.NoError(t, err)
		require.Len(t, quiz.Questions, 1)
		assert.Equal(t, "Q2", quiz.Questions[0].Question)
	})

	t.Run("all questions unrepairable is a hard failure", func(t *testing.T) {
		gen := stubGenerator{output: `{
			"quizTitle": "T",
			"questions": [
				{"questionText": "", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0, "explanation": "e"},
				{"questionText": "Q2", "options": ["a"], "correctAnswerIndex": 0, "explanation": "e"}
			]
		}`}

		_, err := GenerateQuiz(ctx, gen, validQuizInput())
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeEmptyResult, domainErr.Code)
	})

	t.Run("unparseable output is a generation-empty error", func(t *testing.T) {
		gen := stubGenerator{output: "I could not produce a quiz, sorry."}

		_, err := GenerateQuiz(ctx, gen, validQuizInput())
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationEmpty, domainErr.Code)
	})

	t.Run("backend failure surfaces as a service error", func(t *testing.T) {
		gen := stubGenerator{err: errGeneratorDown}

		_, err := GenerateQuiz(ctx, gen, validQuizInput())
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
	})

	t.Run("fenced JSON output is accepted", func(t *testing.T) {
		gen := stubGenerator{output: "```json\n{\"quizTitle\": \"T\", \"questions\": [{\"questionText\": \"Q1\", \"options\": [\"a\", \"b\", \"c\", \"d\"], \"correctAnswerIndex\": 1, \"explanation\": \"e\"}]}\n```"}

		quiz, err := GenerateQuiz(ctx, gen, validQuizInput())
		require.NoError(t, err)
		assert.Len(t, quiz.Questions, 1)
	})

	t.Run("missing title gets a topic fallback", func(t *testing.T) {
		gen := stubGenerator{output: `{
			"questions": [
				{"questionText": "Q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0, "explanation": "e"}
			]
		}`}

		quiz, err := GenerateQuiz(ctx, gen, validQuizInput())
		require.NoError(t, err)
		assert.Equal(t, "Quiz: Indian Polity", quiz.Title)
	})
}
