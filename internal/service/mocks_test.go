package service

import (
	"context"
	"errors"
	"time"

	"studytrack/internal/domain"

	"github.com/stretchr/testify/mock"
)

var errSomeBackend = errors.New("backend unavailable")

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) GetActivity(ctx context.Context, userID string) (*domain.ActivityRecord, error) {
	args := m.Called(ctx, userID)
	if rec, ok := args.Get(0).(*domain.ActivityRecord); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockActivityRepository) SaveInteractionDates(ctx context.Context, userID string, dates []string) error {
	args := m.Called(ctx, userID, dates)
	return args.Error(0)
}

func (m *MockActivityRepository) GetStudyStreak(ctx context.Context, userID string) (*domain.StudyStreak, error) {
	args := m.Called(ctx, userID)
	if streak, ok := args.Get(0).(*domain.StudyStreak); ok {
		return streak, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, id string, refreshToken string) error {
	args := m.Called(ctx, id, refreshToken)
	return args.Error(0)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Save(ctx context.Context, record *domain.GenerationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.GenerationRecord, error) {
	args := m.Called(ctx, userID, limit)
	if records, ok := args.Get(0).([]*domain.GenerationRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockGenerator returns a canned model response.
type mockGenerator struct {
	output string
	err    error
}

func (g mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.output, g.err
}
