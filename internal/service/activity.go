package service

import (
	"context"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/logger"

	"go.uber.org/zap"
)

// ActivityService tracks daily interactions and decides whether the advanced
// vocabulary mode is unlocked for a user.
type ActivityService interface {
	RecordInteraction(ctx context.Context, userID string) (*dto.RecordInteractionResponse, error)
	GetUnlockStatus(ctx context.Context, userID string) (*dto.UnlockStatusResponse, error)
}

type activityService struct {
	repo domain.ActivityRepository
	now  func() time.Time
}

// NewActivityService creates a new instance of activityService
func NewActivityService(repo domain.ActivityRepository) ActivityService {
	return &activityService{repo: repo, now: time.Now}
}

// RecordInteraction marks today as an interaction day for the user. Calling
// it again on the same day is a no-op; the stored list stays deduplicated and
// capped at the most recent days.
func (s *activityService) RecordInteraction(ctx context.Context, userID string) (*dto.RecordInteractionResponse, error) {
	today := s.now()
	day := today.Format(domain.DateLayout)

	record, err := s.repo.GetActivity(ctx, userID)
	if err != nil {
		return nil, domain.NewActivityUnavailableError(err)
	}

	changed := !containsDate(record.InteractionDates, day)
	if changed {
		updated := domain.AppendInteractionDate(record.InteractionDates, today)
		if err := s.repo.SaveInteractionDates(ctx, userID, updated); err != nil {
			return nil, domain.NewActivityUnavailableError(err)
		}
		logger.Get().Info("Interaction recorded",
			zap.String("user_id", userID), zap.String("date", day))
	}

	return &dto.RecordInteractionResponse{Recorded: changed, Date: day}, nil
}

// GetUnlockStatus computes the unlock decision from the stored study streak
// and interaction dates. Storage failures never surface as errors here: the
// user sees a locked status with zero progress instead.
func (s *activityService) GetUnlockStatus(ctx context.Context, userID string) (*dto.UnlockStatusResponse, error) {
	record, err := s.repo.GetActivity(ctx, userID)
	if err != nil {
		logger.Get().Error("Failed to load activity, reporting locked",
			zap.String("user_id", userID), zap.Error(err))
		return toUnlockStatusResponse(domain.LockedUnlockStatus()), nil
	}

	streak, err := s.repo.GetStudyStreak(ctx, userID)
	if err != nil {
		logger.Get().Error("Failed to load study streak, reporting locked",
			zap.String("user_id", userID), zap.Error(err))
		return toUnlockStatusResponse(domain.LockedUnlockStatus()), nil
	}

	status := domain.ComputeUnlockStatus(streak.Current, record.InteractionDates, s.now())
	return toUnlockStatusResponse(status), nil
}

func containsDate(dates []string, day string) bool {
	for _, d := range dates {
		if d == day {
			return true
		}
	}
	return false
}

func toUnlockStatusResponse(status domain.UnlockStatus) *dto.UnlockStatusResponse {
	return &dto.UnlockStatusResponse{
		Unlocked: status.Unlocked,
		Progress: status.Progress,
		Target:   status.Target,
		Message:  status.Message,
		Reason:   string(status.Reason),
	}
}
