package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"studytrack/internal/config"
	"studytrack/internal/domain"
	"studytrack/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			QuizTTL:   6 * time.Hour,
			TopicsTTL: 24 * time.Hour,
		},
	}
}

const quizModelOutput = `{
	"quizTitle": "Polity Warmup",
	"questions": [
		{"questionText": "Q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 1, "explanation": "e1"}
	]
}`

func validQuizRequest() *dto.QuizRequest {
	return &dto.QuizRequest{
		Topic:        "Indian Polity",
		Difficulty:   "intermediate",
		ExamType:     "upsc",
		NumQuestions: 3,
	}
}

func TestGenerateQuizService(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss generates and stores", func(t *testing.T) {
		cacheMock := new(MockCache)
		history := new(MockHistoryRepository)
		svc := NewGenerationService(mockGenerator{output: quizModelOutput}, cacheMock, history, testConfig())

		cacheMock.On("Get", ctx, mock.Anything).Return("", domain.ErrCacheMiss)
		cacheMock.On("Set", ctx, mock.Anything, mock.Anything, 6*time.Hour).Return(nil)
		history.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := svc.GenerateQuiz(ctx, "user1", validQuizRequest())
		require.NoError(t, err)
		assert.Equal(t, "Polity Warmup", resp.QuizTitle)
		require.Len(t, resp.Questions, 1)
		cacheMock.AssertExpectations(t)
		history.AssertExpectations(t)
	})

	t.Run("cache hit skips the model", func(t *testing.T) {
		cached, _ := json.Marshal(&dto.QuizResponse{
			QuizTitle: "Cached Quiz",
			Questions: []dto.QuizQuestionResponse{
				{QuestionText: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 0},
			},
		})

		cacheMock := new(MockCache)
		svc := NewGenerationService(mockGenerator{err: errSomeBackend}, cacheMock, nil, testConfig())
		cacheMock.On("Get", ctx, mock.Anything).Return(string(cached), nil)

		resp, err := svc.GenerateQuiz(ctx, "user1", validQuizRequest())
		require.NoError(t, err)
		assert.Equal(t, "Cached Quiz", resp.QuizTitle)
	})

	t.Run("cache read failure falls through to generation", func(t *testing.T) {
		cacheMock := new(MockCache)
		svc := NewGenerationService(mockGenerator{output: quizModelOutput}, cacheMock, nil, testConfig())

		cacheMock.On("Get", ctx, mock.Anything).Return("", errSomeBackend)
		cacheMock.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.GenerateQuiz(ctx, "user1", validQuizRequest())
		require.NoError(t, err)
		assert.Equal(t, "Polity Warmup", resp.QuizTitle)
	})

	t.Run("history save failure does not fail the request", func(t *testing.T) {
		cacheMock := new(MockCache)
		history := new(MockHistoryRepository)
		svc := NewGenerationService(mockGenerator{output: quizModelOutput}, cacheMock, history, testConfig())

		cacheMock.On("Get", ctx, mock.Anything).Return("", domain.ErrCacheMiss)
		cacheMock.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		history.On("Save", ctx, mock.Anything).Return(errSomeBackend)

		_, err := svc.GenerateQuiz(ctx, "user1", validQuizRequest())
		assert.NoError(t, err)
	})

	t.Run("anonymous requests skip history", func(t *testing.T) {
		cacheMock := new(MockCache)
		history := new(MockHistoryRepository)
		svc := NewGenerationService(mockGenerator{output: quizModelOutput}, cacheMock, history, testConfig())

		cacheMock.On("Get", ctx, mock.Anything).Return("", domain.ErrCacheMiss)
		cacheMock.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := svc.GenerateQuiz(ctx, "", validQuizRequest())
		require.NoError(t, err)
		history.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid input fails before any dependency call", func(t *testing.T) {
		cacheMock := new(MockCache)
		svc := NewGenerationService(mockGenerator{err: errSomeBackend}, cacheMock, nil, testConfig())

		req := validQuizRequest()
		req.NumQuestions = 50
		_, err := svc.GenerateQuiz(ctx, "user1", req)
		var errs domain.ValidationErrors
		require.ErrorAs(t, err, &errs)
		cacheMock.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestSuggestTopicsService(t *testing.T) {
	ctx := context.Background()

	t.Run("caches suggestions per exam type", func(t *testing.T) {
		cacheMock := new(MockCache)
		svc := NewGenerationService(mockGenerator{output: `{"topics": ["Polity", "Economy", "Geography"]}`}, cacheMock, nil, testConfig())

		cacheMock.On("Get", ctx, "studytrack:generation:topics:upsc").Return("", domain.ErrCacheMiss)
		cacheMock.On("Set", ctx, "studytrack:generation:topics:upsc", mock.Anything, 24*time.Hour).Return(nil)

		resp, err := svc.SuggestTopics(ctx, "upsc")
		require.NoError(t, err)
		assert.Equal(t, "upsc", resp.ExamType)
		assert.NotEmpty(t, resp.Topics)
		cacheMock.AssertExpectations(t)
	})

	t.Run("rejects unknown exam type", func(t *testing.T) {
		svc := NewGenerationService(mockGenerator{}, nil, nil, testConfig())
		_, err := svc.SuggestTopics(ctx, "cooking")
		assert.Error(t, err)
	})
}

func TestGetHistoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored records", func(t *testing.T) {
		history := new(MockHistoryRepository)
		svc := NewGenerationService(mockGenerator{}, nil, history, testConfig())

		history.On("ListByUser", ctx, "user1", 20).Return([]*domain.GenerationRecord{
			{ID: "01H", UserID: "user1", Flow: "quiz-generation", Input: "Indian Polity"},
		}, nil)

		resp, err := svc.GetHistory(ctx, "user1", 20)
		require.NoError(t, err)
		require.Len(t, resp.Records, 1)
		assert.Equal(t, "quiz-generation", resp.Records[0].Flow)
	})

	t.Run("defaults an out-of-range limit", func(t *testing.T) {
		history := new(MockHistoryRepository)
		svc := NewGenerationService(mockGenerator{}, nil, history, testConfig())

		history.On("ListByUser", ctx, "user1", 20).Return([]*domain.GenerationRecord{}, nil)

		_, err := svc.GetHistory(ctx, "user1", -5)
		require.NoError(t, err)
		history.AssertExpectations(t)
	})
}
