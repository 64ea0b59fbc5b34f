package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ActivityDatabaseAdapter implements domain.ActivityRepository using sqlx.DB
type ActivityDatabaseAdapter struct {
	db *sqlx.DB
}

// NewActivityDatabaseAdapter creates a new instance of ActivityDatabaseAdapter
func NewActivityDatabaseAdapter(db *sqlx.DB) domain.ActivityRepository {
	return &ActivityDatabaseAdapter{db: db}
}

// GetActivity implements domain.ActivityRepository. A user with no activity
// row yet gets an empty record, not an error.
func (a *ActivityDatabaseAdapter) GetActivity(ctx context.Context, userID string) (*domain.ActivityRecord, error) {
	var model models.UserActivity
	query := `SELECT
		user_id "user_id",
		interaction_dates "interaction_dates",
		created_at "created_at",
		updated_at "updated_at"
	FROM user_activity
	WHERE user_id = :1`

	err := a.db.GetContext(ctx, &model, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.ActivityRecord{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get user activity: %w", err)
	}

	return &domain.ActivityRecord{
		UserID:           model.UserID,
		InteractionDates: model.InteractionDates,
		UpdatedAt:        model.UpdatedAt,
	}, nil
}

// SaveInteractionDates implements domain.ActivityRepository with an upsert so
// the first interaction of a new user creates the row.
func (a *ActivityDatabaseAdapter) SaveInteractionDates(ctx context.Context, userID string, dates []string) error {
	query := `MERGE INTO user_activity ua
	USING (SELECT :1 user_id FROM dual) src
	ON (ua.user_id = src.user_id)
	WHEN MATCHED THEN
		UPDATE SET ua.interaction_dates = :2, ua.updated_at = :3
	WHEN NOT MATCHED THEN
		INSERT (user_id, interaction_dates, created_at, updated_at)
		VALUES (:4, :5, :6, :7)`

	now := time.Now()
	serialized, err := models.StringSlice(dates).Value()
	if err != nil {
		return fmt.Errorf("failed to serialize interaction dates: %w", err)
	}

	_, err = a.db.ExecContext(ctx, query,
		userID, serialized, now,
		userID, serialized, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save interaction dates: %w", err)
	}
	return nil
}

// GetStudyStreak implements domain.ActivityRepository. A missing row is a
// zero streak.
func (a *ActivityDatabaseAdapter) GetStudyStreak(ctx context.Context, userID string) (*domain.StudyStreak, error) {
	var model models.StudyStreak
	query := `SELECT
		user_id "user_id",
		current_streak "current_streak",
		longest_streak "longest_streak",
		last_check_in "last_check_in",
		updated_at "updated_at"
	FROM study_streaks
	WHERE user_id = :1`

	err := a.db.GetContext(ctx, &model, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.StudyStreak{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get study streak: %w", err)
	}

	streak := &domain.StudyStreak{
		UserID:  model.UserID,
		Current: model.CurrentStreak,
		Longest: model.LongestStreak,
	}
	if model.LastCheckIn.Valid {
		streak.LastCheckIn = model.LastCheckIn.String
	}
	return streak, nil
}

var _ domain.ActivityRepository = (*ActivityDatabaseAdapter)(nil)
