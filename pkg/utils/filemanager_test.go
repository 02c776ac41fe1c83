package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateArchiveName(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	name := GenerateArchiveName("SalesResults.txt", now)
	assert.Regexp(t, `^SalesResults_20240115_143022_[0-9a-f-]{36}\.txt$`, name)

	// The UUID keeps names unique even within one second.
	again := GenerateArchiveName("SalesResults.txt", now)
	assert.NotEqual(t, name, again)
}

func TestArchiveReport(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "SalesResults.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte("Total cost of sales: $40.00\n"), 0o644))

	archiveDir := filepath.Join(dir, "archive")

	first, err := ArchiveReport(reportPath, archiveDir)
	require.NoError(t, err)

	copied, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "Total cost of sales: $40.00\n", string(copied))

	// A second run lands alongside the first instead of replacing it.
	second, err := ArchiveReport(reportPath, archiveDir)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	entries, err := os.ReadDir(archiveDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestArchiveReportMissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := ArchiveReport(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "archive"))
	assert.Error(t, err)
}

func TestCleanOldArchives(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "SalesResults_old.txt")
	newFile := filepath.Join(dir, "SalesResults_new.txt")
	require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(newFile, []byte("new"), 0o644))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	removed, err := CleanOldArchives(dir, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
}

func TestGetFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	size, err := GetFileSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = GetFileSize(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
