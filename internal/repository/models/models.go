package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string list as a JSON document in a single column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// UserActivity mirrors the user_activity table: one row per user holding the
// deduplicated interaction-date set.
type UserActivity struct {
	UserID           string      `db:"user_id"`
	InteractionDates StringSlice `db:"interaction_dates"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}

// StudyStreak mirrors the study_streaks table. The increment path is owned
// by the check-in feature; this service only reads it.
type StudyStreak struct {
	UserID        string         `db:"user_id"`
	CurrentStreak int            `db:"current_streak"`
	LongestStreak int            `db:"longest_streak"`
	LastCheckIn   sql.NullString `db:"last_check_in"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// User mirrors the users table.
type User struct {
	ID           string         `db:"id"`
	GoogleID     string         `db:"google_id"`
	Email        string         `db:"email"`
	Name         sql.NullString `db:"name"`
	RefreshToken sql.NullString `db:"refresh_token"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// GenerationRecord mirrors the generation_history table. Payload is the
// validated result JSON exactly as returned to the caller.
type GenerationRecord struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Flow      string    `db:"flow"`
	InputText string    `db:"input_text"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}
