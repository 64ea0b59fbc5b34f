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

const userSelectColumns = `
	id "id",
	google_id "google_id",
	email "email",
	name "name",
	refresh_token "refresh_token",
	created_at "created_at",
	updated_at "updated_at"`

// UserDatabaseAdapter implements domain.UserRepository using sqlx.DB
type UserDatabaseAdapter struct {
	db *sqlx.DB
}

// NewUserDatabaseAdapter creates a new instance of UserDatabaseAdapter
func NewUserDatabaseAdapter(db *sqlx.DB) domain.UserRepository {
	return &UserDatabaseAdapter{db: db}
}

// GetByID implements domain.UserRepository
func (a *UserDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var model models.User
	query := `SELECT` + userSelectColumns + ` FROM users WHERE id = :1`

	err := a.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user not found: %s", id))
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&model), nil
}

// GetByGoogleID implements domain.UserRepository
func (a *UserDatabaseAdapter) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	var model models.User
	query := `SELECT` + userSelectColumns + ` FROM users WHERE google_id = :1`

	err := a.db.GetContext(ctx, &model, query, googleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}
	return toDomainUser(&model), nil
}

// Create implements domain.UserRepository
func (a *UserDatabaseAdapter) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, google_id, email, name, refresh_token, created_at, updated_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7)`

	now := time.Now()
	_, err := a.db.ExecContext(ctx, query,
		user.ID, user.GoogleID, user.Email, user.Name, user.RefreshToken, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// UpdateRefreshToken implements domain.UserRepository
func (a *UserDatabaseAdapter) UpdateRefreshToken(ctx context.Context, id string, refreshToken string) error {
	query := `UPDATE users SET refresh_token = :1, updated_at = :2 WHERE id = :3`

	_, err := a.db.ExecContext(ctx, query, refreshToken, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

func toDomainUser(model *models.User) *domain.User {
	user := &domain.User{
		ID:        model.ID,
		GoogleID:  model.GoogleID,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Name.Valid {
		user.Name = model.Name.String
	}
	if model.RefreshToken.Valid {
		user.RefreshToken = model.RefreshToken.String
	}
	return user
}

var _ domain.UserRepository = (*UserDatabaseAdapter)(nil)
