package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"studytrack/internal/cache"
	"studytrack/internal/config"
	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/flows"
	"studytrack/internal/logger"
	"studytrack/internal/util"

	"go.uber.org/zap"
)

// GenerationService exposes the AI tools to the handlers. Each method wraps
// one flow contract; deterministic flows (quiz, topics) go through the result
// cache, and quiz/vocab results are persisted to the user's history.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, userID string, req *dto.QuizRequest) (*dto.QuizResponse, error)
	SummarizeMaterial(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error)
	SuggestTopics(ctx context.Context, examType string) (*dto.TopicsResponse, error)
	AnalyzeProductivity(ctx context.Context, req *dto.ProductivityRequest) (*dto.ProductivityResponse, error)
	ProcessTranscript(ctx context.Context, req *dto.TranscriptRequest) (*dto.TranscriptResponse, error)
	SolveDoubt(ctx context.Context, req *dto.DoubtRequest) (*dto.DoubtResponse, error)
	GenerateVocabularySession(ctx context.Context, userID string, req *dto.VocabRequest) (*dto.VocabResponse, error)
	GetHistory(ctx context.Context, userID string, limit int) (*dto.HistoryResponse, error)
}

type generationService struct {
	gen     domain.TextGenerator
	cache   domain.Cache
	history domain.GenerationHistoryRepository
	cfg     *config.Config
}

// NewGenerationService creates a new instance of generationService
func NewGenerationService(
	gen domain.TextGenerator,
	cacheAdapter domain.Cache,
	history domain.GenerationHistoryRepository,
	cfg *config.Config,
) GenerationService {
	return &generationService{
		gen:     gen,
		cache:   cacheAdapter,
		history: history,
		cfg:     cfg,
	}
}

// GenerateQuiz implements GenerationService
func (s *generationService) GenerateQuiz(ctx context.Context, userID string, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	in := flows.QuizInput{
		Topic:        strings.TrimSpace(req.Topic),
		Difficulty:   req.Difficulty,
		ExamType:     req.ExamType,
		NumQuestions: req.NumQuestions,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	cacheKey := cache.GenerateCacheKey("generation", "quiz",
		slugify(in.Topic), in.Difficulty, in.ExamType, strconv.Itoa(in.NumQuestions))

	if cached, ok := s.cacheLookup(ctx, cacheKey); ok {
		var resp dto.QuizResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			logger.Get().Info("Quiz served from cache", zap.String("cache_key", cacheKey))
			return &resp, nil
		}
	}

	quiz, err := flows.GenerateQuiz(ctx, s.gen, in)
	if err != nil {
		return nil, err
	}

	resp := toQuizResponse(quiz)
	s.cacheStore(ctx, cacheKey, resp, s.cfg.Cache.QuizTTL)
	s.saveHistory(ctx, userID, flows.FlowQuiz, fmt.Sprintf("%s (%s, %s)", in.Topic, in.Difficulty, in.ExamType), resp)
	return resp, nil
}

// SummarizeMaterial implements GenerationService
func (s *generationService) SummarizeMaterial(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error) {
	summary, err := flows.SummarizeMaterial(ctx, s.gen, flows.SummaryInput{
		Topic:    strings.TrimSpace(req.Topic),
		Material: req.Material,
	})
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		Topic:     summary.Topic,
		Summary:   summary.Summary,
		KeyPoints: summary.KeyPoints,
	}, nil
}

// SuggestTopics implements GenerationService
func (s *generationService) SuggestTopics(ctx context.Context, examType string) (*dto.TopicsResponse, error) {
	in := flows.TopicsInput{ExamType: examType}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	cacheKey := cache.GenerateCacheKey("generation", "topics", examType)
	if cached, ok := s.cacheLookup(ctx, cacheKey); ok {
		var resp dto.TopicsResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	suggestions, err := flows.SuggestTopics(ctx, s.gen, in)
	if err != nil {
		return nil, err
	}

	resp := &dto.TopicsResponse{ExamType: suggestions.ExamType, Topics: suggestions.Topics}
	s.cacheStore(ctx, cacheKey, resp, s.cfg.Cache.TopicsTTL)
	return resp, nil
}

// AnalyzeProductivity implements GenerationService
func (s *generationService) AnalyzeProductivity(ctx context.Context, req *dto.ProductivityRequest) (*dto.ProductivityResponse, error) {
	insights, err := flows.AnalyzeProductivity(ctx, s.gen, flows.ProductivityInput{
		TotalStudyHours:   req.TotalStudyHours,
		SessionsCompleted: req.SessionsCompleted,
		AvgSessionMinutes: req.AvgSessionMinutes,
		TasksCompleted:    req.TasksCompleted,
		TasksPlanned:      req.TasksPlanned,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductivityResponse{
		Insights:        insights.Insights,
		Recommendations: insights.Recommendations,
		FocusScore:      insights.FocusScore,
	}, nil
}

// ProcessTranscript implements GenerationService
func (s *generationService) ProcessTranscript(ctx context.Context, req *dto.TranscriptRequest) (*dto.TranscriptResponse, error) {
	notes, err := flows.ProcessTranscript(ctx, s.gen, flows.TranscriptInput{
		Transcript: req.Transcript,
		Context:    req.Context,
	})
	if err != nil {
		return nil, err
	}

	questions := make([]dto.QuizQuestionResponse, 0, len(notes.Questions))
	for _, q := range notes.Questions {
		questions = append(questions, toQuizQuestionResponse(q))
	}
	return &dto.TranscriptResponse{
		Title:       notes.Title,
		Summary:     notes.Summary,
		Notes:       notes.Notes,
		KeyConcepts: notes.KeyConcepts,
		Questions:   questions,
	}, nil
}

// SolveDoubt implements GenerationService
func (s *generationService) SolveDoubt(ctx context.Context, req *dto.DoubtRequest) (*dto.DoubtResponse, error) {
	answer, err := flows.SolveDoubt(ctx, s.gen, flows.DoubtInput{
		Question: strings.TrimSpace(req.Question),
		ExamType: req.ExamType,
		Subject:  req.Subject,
	})
	if err != nil {
		return nil, err
	}
	return &dto.DoubtResponse{
		Explanation:   answer.Explanation,
		RelatedTopics: answer.RelatedTopics,
		Confidence:    answer.Confidence,
	}, nil
}

// GenerateVocabularySession implements GenerationService
func (s *generationService) GenerateVocabularySession(ctx context.Context, userID string, req *dto.VocabRequest) (*dto.VocabResponse, error) {
	session, err := flows.GenerateVocabularySession(ctx, s.gen, flows.VocabInput{
		GameMode:      req.GameMode,
		NumChallenges: req.NumChallenges,
		PreviousWords: req.PreviousWords,
	})
	if err != nil {
		return nil, err
	}

	challenges := make([]dto.VocabChallengeResponse, 0, len(session.Challenges))
	for _, c := range session.Challenges {
		challenges = append(challenges, dto.VocabChallengeResponse{
			Word:     c.Word,
			Clue:     c.Clue,
			ClueType: string(c.ClueType),
			Options:  c.Options,
			Hint:     c.Hint,
		})
	}

	resp := &dto.VocabResponse{GameMode: string(session.Mode), Challenges: challenges}
	s.saveHistory(ctx, userID, flows.FlowVocab,
		fmt.Sprintf("%s x%d", req.GameMode, req.NumChallenges), resp)
	return resp, nil
}

// GetHistory implements GenerationService
func (s *generationService) GetHistory(ctx context.Context, userID string, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	records, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load generation history", err)
	}

	out := make([]dto.GenerationRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.GenerationRecordResponse{
			ID:        r.ID,
			Flow:      r.Flow,
			Input:     r.Input,
			Payload:   r.Payload,
			CreatedAt: r.CreatedAt,
		})
	}
	return &dto.HistoryResponse{Records: out}, nil
}

// cacheLookup treats any cache failure as a miss: generation must keep
// working when Redis is down.
func (s *generationService) cacheLookup(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Cache read failed", zap.String("cache_key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (s *generationService) cacheStore(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), ttl); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("cache_key", key), zap.Error(err))
	}
}

// saveHistory is best-effort: a history write failure must not fail the
// generation the user is waiting on.
func (s *generationService) saveHistory(ctx context.Context, userID, flow, input string, payload interface{}) {
	if s.history == nil || userID == "" {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	record := &domain.GenerationRecord{
		ID:      util.NewULID(),
		UserID:  userID,
		Flow:    flow,
		Input:   input,
		Payload: string(data),
	}
	if err := s.history.Save(ctx, record); err != nil {
		logger.Get().Warn("Failed to save generation history",
			zap.String("flow", flow), zap.String("user_id", userID), zap.Error(err))
	}
}

func toQuizQuestionResponse(q domain.QuizQuestion) dto.QuizQuestionResponse {
	return dto.QuizQuestionResponse{
		QuestionText:       q.Question,
		Options:            q.Options,
		CorrectAnswerIndex: q.CorrectAnswerIndex,
		Explanation:        q.Explanation,
	}
}

func toQuizResponse(quiz *domain.QuizSet) *dto.QuizResponse {
	questions := make([]dto.QuizQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, toQuizQuestionResponse(q))
	}
	return &dto.QuizResponse{QuizTitle: quiz.Title, Questions: questions}
}

// slugify lowercases a topic and joins its tokens for use in cache keys.
func slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
