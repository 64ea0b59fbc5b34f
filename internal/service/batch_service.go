package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"studytrack/internal/cache"
	"studytrack/internal/config"
	"studytrack/internal/dto"
	"studytrack/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchService pre-generates quizzes for a configured topic list so the
// first request for a popular topic is served from cache.
type BatchService interface {
	PreGenerateQuizzes(ctx context.Context) error
}

type batchService struct {
	generation GenerationService
	cfg        *config.Config
}

// NewBatchService creates a new instance of batchService
func NewBatchService(generation GenerationService, cfg *config.Config) BatchService {
	return &batchService{generation: generation, cfg: cfg}
}

// PreGenerateQuizzes runs one generation per configured topic, bounded by the
// configured concurrency. A failed topic is logged and skipped; the run only
// fails when every topic fails.
func (s *batchService) PreGenerateQuizzes(ctx context.Context) error {
	appLogger := logger.Get()
	topics := s.cfg.Batch.Topics
	if len(topics) == 0 {
		appLogger.Info("No batch topics configured, nothing to pre-generate")
		return nil
	}

	start := time.Now()
	appLogger.Info("Starting quiz pre-generation",
		zap.Int("topics", len(topics)),
		zap.String("exam_type", s.cfg.Batch.ExamType),
		zap.Int("concurrency", s.cfg.Batch.Concurrency))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Batch.Concurrency)

	succeeded := make([]bool, len(topics))
	for i, topic := range topics {
		i, topic := i, topic
		g.Go(func() error {
			req := &dto.QuizRequest{
				Topic:        topic,
				Difficulty:   s.cfg.Batch.Difficulty,
				ExamType:     s.cfg.Batch.ExamType,
				NumQuestions: s.cfg.Batch.NumQuestions,
			}
			if _, err := s.generation.GenerateQuiz(gctx, "", req); err != nil {
				appLogger.Warn("Pre-generation failed for topic",
					zap.String("topic", topic), zap.Error(err))
				return nil
			}
			succeeded[i] = true
			appLogger.Info("Pre-generated quiz",
				zap.String("topic", topic),
				zap.String("cache_key_hint", cache.GenerateCacheKey("generation", "quiz",
					slugify(topic), s.cfg.Batch.Difficulty, s.cfg.Batch.ExamType,
					strconv.Itoa(s.cfg.Batch.NumQuestions))))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ok := 0
	for _, done := range succeeded {
		if done {
			ok++
		}
	}
	appLogger.Info("Quiz pre-generation finished",
		zap.Int("succeeded", ok),
		zap.Int("failed", len(topics)-ok),
		zap.Duration("elapsed", time.Since(start)))

	if ok == 0 {
		return errors.New("quiz pre-generation failed for all topics")
	}
	return nil
}
