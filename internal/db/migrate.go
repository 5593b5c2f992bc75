package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates from re-runs are tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		institution            TEXT NOT NULL,
		total_credits_required REAL NOT NULL DEFAULT 0,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS requirements (
		id               TEXT PRIMARY KEY,
		program_id       TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		category         TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		type             TEXT NOT NULL DEFAULT 'simple'
		                 CHECK(type IN ('simple','grouped')),
		credits_required REAL NOT NULL DEFAULT 0,
		position         INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_requirements_program ON requirements(program_id)`,

	`CREATE TABLE IF NOT EXISTS requirement_groups (
		id               TEXT PRIMARY KEY,
		requirement_id   TEXT NOT NULL REFERENCES requirements(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		courses_required INTEGER NOT NULL DEFAULT 0,
		credits_required REAL NOT NULL DEFAULT 0,
		position         INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_requirement_groups_requirement ON requirement_groups(requirement_id)`,

	`CREATE TABLE IF NOT EXISTS group_options (
		group_id     TEXT NOT NULL REFERENCES requirement_groups(id) ON DELETE CASCADE,
		course_code  TEXT NOT NULL,
		institution  TEXT NOT NULL DEFAULT '',
		is_preferred INTEGER NOT NULL DEFAULT 0,
		notes        TEXT NOT NULL DEFAULT '',
		position     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (group_id, course_code, institution)
	)`,

	`CREATE TABLE IF NOT EXISTS requirement_constraints (
		requirement_id TEXT NOT NULL REFERENCES requirements(id) ON DELETE CASCADE,
		type           TEXT NOT NULL,
		min_level      INTEGER NOT NULL DEFAULT 0,
		credits        REAL NOT NULL DEFAULT 0,
		tag            TEXT NOT NULL DEFAULT '',
		position       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (requirement_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		program_id TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'draft'
		           CHECK(status IN ('draft','active','complete')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_program ON plans(program_id)`,

	`CREATE TABLE IF NOT EXISTS plan_courses (
		id                   TEXT PRIMARY KEY,
		plan_id              TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		course_id            TEXT NOT NULL DEFAULT '',
		code                 TEXT NOT NULL,
		title                TEXT NOT NULL DEFAULT '',
		credits              REAL NOT NULL DEFAULT 0,
		institution          TEXT NOT NULL DEFAULT '',
		department           TEXT NOT NULL DEFAULT '',
		level                INTEGER NOT NULL DEFAULT 0,
		tag                  TEXT NOT NULL DEFAULT '',
		status               TEXT NOT NULL DEFAULT 'planned'
		                     CHECK(status IN ('planned','in_progress','completed')),
		requirement_category TEXT NOT NULL DEFAULT '',
		requirement_group_id TEXT,
		credits_override     REAL,
		term                 TEXT NOT NULL DEFAULT '',
		year                 INTEGER NOT NULL DEFAULT 0,
		notes                TEXT NOT NULL DEFAULT '',
		position             INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_courses_plan ON plan_courses(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_courses_status ON plan_courses(status)`,

	`CREATE TABLE IF NOT EXISTS catalog_courses (
		id          TEXT PRIMARY KEY,
		code        TEXT NOT NULL,
		title       TEXT NOT NULL,
		credits     REAL NOT NULL DEFAULT 0,
		institution TEXT NOT NULL DEFAULT '',
		department  TEXT NOT NULL DEFAULT '',
		level       INTEGER NOT NULL DEFAULT 0,
		tag         TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_catalog_courses_code ON catalog_courses(code)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_courses_institution ON catalog_courses(institution)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_catalog_courses_code_inst ON catalog_courses(code, institution)`,

	`CREATE TABLE IF NOT EXISTS equivalencies (
		institution TEXT NOT NULL,
		course_code TEXT NOT NULL,
		target_code TEXT NOT NULL,
		PRIMARY KEY (institution, course_code)
	)`,
}
