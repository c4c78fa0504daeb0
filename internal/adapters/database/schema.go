package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/postgres"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stalls (
		id TEXT PRIMARY KEY,
		stall_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		location TEXT,
		owner_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stalls_owner_id ON stalls (owner_id)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		options TEXT[] NOT NULL DEFAULT '{}',
		scope TEXT NOT NULL,
		target_stalls TEXT[] NOT NULL DEFAULT '{}',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_target_stalls ON questions USING GIN (target_stalls)`,
	`CREATE TABLE IF NOT EXISTS user_responses (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		question_id TEXT NOT NULL,
		stall_id TEXT,
		answer TEXT NOT NULL,
		submitted_at TIMESTAMPTZ,
		UNIQUE (user_id, question_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_responses_stall_id ON user_responses (stall_id)`,
}

// CreateSchema creates the survey tables and indexes when they do not exist
func CreateSchema(ctx context.Context, client *postgres.Client) error {
	for i, stmt := range schemaStatements {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	log.Info().Int("statements", len(schemaStatements)).Msg("Database schema ready")
	return nil
}
