package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/godror/godror" // Oracle driver for the API's connection pool
)

// NewSQLXOracleDB opens the Oracle connection pool used by the API server.
func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("godror", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	return db, nil
}
