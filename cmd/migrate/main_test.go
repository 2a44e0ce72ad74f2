package main

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE menus (id bigserial PRIMARY KEY);
ALTER TABLE menus ADD COLUMN name text;

-- +migrate Down
DROP TABLE menus;
`
	t.Run("Up", func(t *testing.T) {
		up := extractSection(content, "Up")
		assert.Contains(t, up, "CREATE TABLE menus")
		assert.Contains(t, up, "ALTER TABLE menus")
		assert.NotContains(t, up, "DROP TABLE menus")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Down", func(t *testing.T) {
		down := extractSection(content, "Down")
		assert.Contains(t, down, "DROP TABLE menus")
		assert.NotContains(t, down, "CREATE TABLE menus")
	})
}

func writeMigration(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestRun_Up(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	writeMigration(t, tmpDir, "0001_init.sql", "-- +migrate Up\nCREATE TABLE test (id int);")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("0001_init.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE test")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
		WithArgs("0001_init.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, run(db, "up", tmpDir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_Up_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	writeMigration(t, tmpDir, "0001_init.sql", "-- +migrate Up\nCREATE TABLE test (id int);")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("0001_init.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, run(db, "up", tmpDir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_Down(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	writeMigration(t, tmpDir, "0001_init.sql",
		"-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_init.sql"))
	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE test")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schema_migrations")).
		WithArgs("0001_init.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, run(db, "down", tmpDir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Error(t, run(db, "sideways", t.TempDir()))
}
