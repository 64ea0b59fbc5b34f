package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupActivityTestDB creates a new sqlx.DB instance and sqlmock for activity repository testing.
func setupActivityTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestGetActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored record", func(t *testing.T) {
		db, mock := setupActivityTestDB(t)
		defer db.Close()
		repo := NewActivityDatabaseAdapter(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"user_id", "interaction_dates", "created_at", "updated_at"}).
			AddRow("user1", `["2025-03-09","2025-03-10"]`, now, now)
		mock.ExpectQuery(`SELECT(.|\n)+FROM user_activity`).
			WithArgs("user1").
			WillReturnRows(rows)

		record, err := repo.GetActivity(ctx, "user1")
		require.NoError(t, err)
		assert.Equal(t, "user1", record.UserID)
		assert.Equal(t, []string{"2025-03-09", "2025-03-10"}, []string(record.InteractionDates))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row yields an empty record", func(t *testing.T) {
		db, mock := setupActivityTestDB(t)
		defer db.Close()
		repo := NewActivityDatabaseAdapter(db)

		mock.ExpectQuery(`SELECT(.|\n)+FROM user_activity`).
			WithArgs("nobody").
			WillReturnError(sql.ErrNoRows)

		record, err := repo.GetActivity(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, "nobody", record.UserID)
		assert.Empty(t, record.InteractionDates)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		db, mock := setupActivityTestDB(t)
		defer db.Close()
		repo := NewActivityDatabaseAdapter(db)

		mock.ExpectQuery(`SELECT(.|\n)+FROM user_activity`).
			WithArgs("user1").
			WillReturnError(errors.New("ORA-12541: TNS:no listener"))

		_, err := repo.GetActivity(ctx, "user1")
		assert.Error(t, err)
	})
}

func TestSaveInteractionDates(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts the serialized date set", func(t *testing.T) {
		db, mock := setupActivityTestDB(t)
		defer db.Close()
		repo := NewActivityDatabaseAdapter(db)

		mock.ExpectExec(`MERGE INTO user_activity`).
			WithArgs("user1", `["2025-03-10"]`, sqlmock.AnyArg(),
				"user1", `["2025-03-10"]`, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveInteractionDates(ctx, "user1", []string{"2025-03-10"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure propagates", func(t *testing.T) {
		db, mock := setupActivityTestDB(t)
		defer db.Close()
		repo := NewActivityDatabaseAdapter(db)

		mock.ExpectExec(`MERGE INTO user_activity`).
			WillReturnError(errors.New("ORA-00001: unique constraint violated"))

		err := repo.SaveInteractionDates(ctx, "user1", []string{"2025-03-10"})
		assert.Error(t, err)
	})
}

func TestGetStudyStreak(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored streak", func(t *testing.T) {
		db, mock := setupActivityTestDB(t)
		defer db.Close()
		repo := NewActivityDatabaseAdapter(db)

		rows := sqlmock.NewRows([]string{"user_id", "current_streak", "longest_streak", "last_check_in", "updated_at"}).
			AddRow("user1", 5, 12, "2025-03-10", time.Now())
		mock.ExpectQuery(`SELECT(.|\n)+FROM study_streaks`).
			WithArgs("user1").
			WillReturnRows(rows)

		streak, err := repo.GetStudyStreak(ctx, "user1")
		require.NoError(t, err)
		assert.Equal(t, 5, streak.Current)
		assert.Equal(t, 12, streak.Longest)
		assert.Equal(t, "2025-03-10", streak.LastCheckIn)
	})

	t.Run("missing row yields a zero streak", func(t *testing.T) {
		db, mock := setupActivityTestDB(t)
		defer db.Close()
		repo := NewActivityDatabaseAdapter(db)

		mock.ExpectQuery(`SELECT(.|\n)+FROM study_streaks`).
			WithArgs("nobody").
			WillReturnError(sql.ErrNoRows)

		streak, err := repo.GetStudyStreak(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, 0, streak.Current)
	})
}
