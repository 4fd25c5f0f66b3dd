package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL is the relational schema for the three entity tables. The weak
// university reference is enforced here with ON DELETE SET NULL; the embedded
// backend enforces nothing.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS universities (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS students (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT,
	university_id INTEGER REFERENCES universities(id) ON DELETE SET NULL,
	skills JSONB NOT NULL DEFAULT '[]',
	certifications JSONB NOT NULL DEFAULT '[]',
	achievements JSONB NOT NULL DEFAULT '[]',
	experience_years NUMERIC NOT NULL DEFAULT 0,
	resume_text TEXT
);
CREATE TABLE IF NOT EXISTS jobs (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT,
	required_skills JSONB NOT NULL DEFAULT '[]',
	min_experience_years NUMERIC NOT NULL DEFAULT 0,
	description TEXT,
	type TEXT,
	location TEXT
);`

// EnsureSchema creates the entity tables if they do not exist. It is
// idempotent and safe to run on every boot.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
