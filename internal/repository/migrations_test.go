package repository

import (
	"fmt"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createStmt    = regexp.MustCompile(`(?i)CREATE\s+(UNIQUE\s+)?(TABLE|INDEX)\s+`)
	guardedCreate = regexp.MustCompile(`(?i)CREATE\s+(UNIQUE\s+)?(TABLE|INDEX)\s+IF\s+NOT\s+EXISTS`)
	addConstraint = regexp.MustCompile(`(?i)ADD\s+CONSTRAINT\s+(\w+)`)
)

// Миграция должна применяться повторно без ошибок.
func TestInitMigration_Idempotent(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)
	sql := string(raw)

	assert.Equal(t,
		len(createStmt.FindAllString(sql, -1)),
		len(guardedCreate.FindAllString(sql, -1)),
		"every CREATE must use IF NOT EXISTS",
	)

	constraints := addConstraint.FindAllStringSubmatch(sql, -1)
	require.NotEmpty(t, constraints)
	for _, m := range constraints {
		guard := fmt.Sprintf("SELECT 1 FROM pg_constraint WHERE conname = '%s'", m[1])
		assert.Contains(t, sql, guard, m[1])
	}
}
