package domain

import (
	"context"
	"time"
)

// User is a registered account. OAuth identity comes from Google; the
// profile fields are whatever the provider returned at last login.
type User struct {
	ID           string
	GoogleID     string
	Email        string
	Name         string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GenerationRecord is one persisted flow result, kept so users can revisit
// previously generated content.
type GenerationRecord struct {
	ID        string
	UserID    string
	Flow      string
	Input     string
	Payload   string
	CreatedAt time.Time
}

// ActivityRepository reads and writes the per-user activity document.
type ActivityRepository interface {
	// GetActivity returns the user's record, or an empty record when the
	// user has no interactions yet.
	GetActivity(ctx context.Context, userID string) (*ActivityRecord, error)

	// SaveInteractionDates replaces the user's interaction-date set.
	SaveInteractionDates(ctx context.Context, userID string, dates []string) error

	// GetStudyStreak returns the externally maintained streak counter,
	// or a zero streak when none exists.
	GetStudyStreak(ctx context.Context, userID string) (*StudyStreak, error)
}

// UserRepository persists accounts for the auth service.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateRefreshToken(ctx context.Context, id string, refreshToken string) error
}

// GenerationHistoryRepository persists successful flow results.
type GenerationHistoryRepository interface {
	Save(ctx context.Context, record *GenerationRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*GenerationRecord, error)
}
