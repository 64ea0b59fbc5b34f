package repository

import (
	"context"
	"fmt"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// GenerationHistoryDatabaseAdapter implements domain.GenerationHistoryRepository using sqlx.DB
type GenerationHistoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewGenerationHistoryDatabaseAdapter creates a new instance of GenerationHistoryDatabaseAdapter
func NewGenerationHistoryDatabaseAdapter(db *sqlx.DB) domain.GenerationHistoryRepository {
	return &GenerationHistoryDatabaseAdapter{db: db}
}

// Save implements domain.GenerationHistoryRepository
func (a *GenerationHistoryDatabaseAdapter) Save(ctx context.Context, record *domain.GenerationRecord) error {
	query := `INSERT INTO generation_history (id, user_id, flow, input_text, payload, created_at)
	VALUES (:1, :2, :3, :4, :5, :6)`

	now := time.Now()
	_, err := a.db.ExecContext(ctx, query,
		record.ID, record.UserID, record.Flow, record.Input, record.Payload, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save generation record: %w", err)
	}
	record.CreatedAt = now
	return nil
}

// ListByUser implements domain.GenerationHistoryRepository
func (a *GenerationHistoryDatabaseAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.GenerationRecord, error) {
	var rows []models.GenerationRecord
	query := `SELECT
		id "id",
		user_id "user_id",
		flow "flow",
		input_text "input_text",
		payload "payload",
		created_at "created_at"
	FROM generation_history
	WHERE user_id = :1
	ORDER BY created_at DESC
	FETCH FIRST :2 ROWS ONLY`

	if err := a.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list generation records: %w", err)
	}

	records := make([]*domain.GenerationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.GenerationRecord{
			ID:        row.ID,
			UserID:    row.UserID,
			Flow:      row.Flow,
			Input:     row.InputText,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return records, nil
}

var _ domain.GenerationHistoryRepository = (*GenerationHistoryDatabaseAdapter)(nil)
