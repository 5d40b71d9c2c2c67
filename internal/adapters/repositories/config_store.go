package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresConfigStore reads runtime settings from the app_config table.
type PostgresConfigStore struct{ DB *sql.DB }

func NewPostgresConfigStore(db *sql.DB) *PostgresConfigStore {
	return &PostgresConfigStore{DB: db}
}

func (s *PostgresConfigStore) GetConfigValue(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("postgres config store: DB is nil")
	}

	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM app_config WHERE key = $1;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config value key=%s: %w", key, err)
	}

	return value, true, nil
}
