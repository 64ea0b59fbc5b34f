package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"studytrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestRecordInteraction(t *testing.T) {
	ctx := context.Background()

	t.Run("records a new day", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-10")}

		repo.On("GetActivity", ctx, "user1").Return(&domain.ActivityRecord{
			UserID:           "user1",
			InteractionDates: []string{"2025-03-09"},
		}, nil)
		repo.On("SaveInteractionDates", ctx, "user1", []string{"2025-03-09", "2025-03-10"}).Return(nil)

		resp, err := svc.RecordInteraction(ctx, "user1")
		require.NoError(t, err)
		assert.True(t, resp.Recorded)
		assert.Equal(t, "2025-03-10", resp.Date)
		repo.AssertExpectations(t)
	})

	t.Run("same day twice is a no-op", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-10")}

		repo.On("GetActivity", ctx, "user1").Return(&domain.ActivityRecord{
			UserID:           "user1",
			InteractionDates: []string{"2025-03-10"},
		}, nil)

		resp, err := svc.RecordInteraction(ctx, "user1")
		require.NoError(t, err)
		assert.False(t, resp.Recorded)
		repo.AssertNotCalled(t, "SaveInteractionDates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure surfaces as activity unavailable", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-10")}

		repo.On("GetActivity", ctx, "user1").Return(nil, errors.New("ORA-12541"))

		_, err := svc.RecordInteraction(ctx, "user1")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeActivityUnavailable, domainErr.Code)
	})
}

func TestGetUnlockStatus(t *testing.T) {
	ctx := context.Background()

	sevenDaysEnding := func(end string) []string {
		last, _ := time.Parse(domain.DateLayout, end)
		dates := make([]string, 0, 7)
		for i := 6; i >= 0; i-- {
			dates = append(dates, last.AddDate(0, 0, -i).Format(domain.DateLayout))
		}
		return dates
	}

	t.Run("unlocked by study streak", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-10")}

		repo.On("GetActivity", ctx, "user1").Return(&domain.ActivityRecord{
			UserID:           "user1",
			InteractionDates: []string{"2025-03-10"},
		}, nil)
		repo.On("GetStudyStreak", ctx, "user1").Return(&domain.StudyStreak{
			UserID: "user1", Current: 7,
		}, nil)

		resp, err := svc.GetUnlockStatus(ctx, "user1")
		require.NoError(t, err)
		assert.True(t, resp.Unlocked)
		assert.Equal(t, "study_streak", resp.Reason)
	})

	t.Run("unlocked by interaction streak", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-10")}

		repo.On("GetActivity", ctx, "user1").Return(&domain.ActivityRecord{
			UserID:           "user1",
			InteractionDates: sevenDaysEnding("2025-03-10"),
		}, nil)
		repo.On("GetStudyStreak", ctx, "user1").Return(&domain.StudyStreak{
			UserID: "user1", Current: 3,
		}, nil)

		resp, err := svc.GetUnlockStatus(ctx, "user1")
		require.NoError(t, err)
		assert.True(t, resp.Unlocked)
		assert.Equal(t, "interaction_streak", resp.Reason)
	})

	t.Run("activity read failure fails closed", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-10")}

		repo.On("GetActivity", ctx, "user1").Return(nil, errors.New("connection refused"))

		resp, err := svc.GetUnlockStatus(ctx, "user1")
		require.NoError(t, err)
		assert.False(t, resp.Unlocked)
		assert.Equal(t, 0, resp.Progress)
		assert.Equal(t, "none", resp.Reason)
	})

	t.Run("streak read failure fails closed", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-10")}

		repo.On("GetActivity", ctx, "user1").Return(&domain.ActivityRecord{
			UserID:           "user1",
			InteractionDates: sevenDaysEnding("2025-03-10"),
		}, nil)
		repo.On("GetStudyStreak", ctx, "user1").Return(nil, errors.New("timeout"))

		resp, err := svc.GetUnlockStatus(ctx, "user1")
		require.NoError(t, err)
		assert.False(t, resp.Unlocked)
		assert.Equal(t, 0, resp.Progress)
	})

	t.Run("yesterday's run without today reports zero progress", func(t *testing.T) {
		repo := new(MockActivityRepository)
		svc := &activityService{repo: repo, now: fixedClock("2025-03-11")}

		repo.On("GetActivity", ctx, "user1").Return(&domain.ActivityRecord{
			UserID:           "user1",
			InteractionDates: []string{"2025-03-08", "2025-03-09", "2025-03-10"},
		}, nil)
		repo.On("GetStudyStreak", ctx, "user1").Return(&domain.StudyStreak{
			UserID: "user1", Current: 0,
		}, nil)

		resp, err := svc.GetUnlockStatus(ctx, "user1")
		require.NoError(t, err)
		assert.False(t, resp.Unlocked)
		assert.Equal(t, 0, resp.Progress)
	})
}
