package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	tables := []string{
		"programs", "requirements", "requirement_groups", "group_options",
		"requirement_constraints", "plans", "plan_courses",
		"catalog_courses", "equivalencies",
	}
	for _, table := range tables {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running migrations on an already-migrated DB must not fail.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}
