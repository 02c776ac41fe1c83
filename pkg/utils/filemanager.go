// =============================================================================
// Compute Sales - File Manager Utility
// =============================================================================
//
// This module provides the file plumbing around the report artifact:
//   - Report archival (timestamped, uniquely named copies)
//   - Archive retention cleanup
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - The report file itself is overwritten on every run.
//   - When an archive directory is configured, each run's report is copied
//     there under a unique name before the next run overwrites it.
//   - Archives older than the configured retention age are removed after a
//     successful archival pass.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir, including parents, if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// REPORT ARCHIVAL
// =============================================================================

// GenerateArchiveName builds a unique archive file name from the report's
// base name.
//
// EXAMPLE:
//   base:   "SalesResults.txt"
//   output: "SalesResults_20240115_143022_a1b2c3d4-e5f6-7890-abcd-ef1234567890.txt"
func GenerateArchiveName(base string, now time.Time) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%s_%s%s", stem, now.Format("20060102_150405"), uuid.New().String(), ext)
}

// ArchiveReport copies the report file into archiveDir under a unique name.
//
// PARAMETERS:
//   - reportPath: The report file to archive.
//   - archiveDir: The directory receiving the copy; created if missing.
//
// RETURNS:
//   - The path to the archived copy.
//   - An error if the copy fails.
func ArchiveReport(reportPath, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	archivePath := filepath.Join(archiveDir, GenerateArchiveName(filepath.Base(reportPath), time.Now()))
	if err := copyFile(reportPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to copy report to archive: %w", err)
	}

	return archivePath, nil
}

// CleanOldArchives removes archive files older than maxAge.
//
// PARAMETERS:
//   - archiveDir: The archive directory to clean.
//   - maxAge: The maximum age of files to keep.
//
// RETURNS:
//   - The number of files removed.
//   - An error if cleaning fails.
func CleanOldArchives(archiveDir string, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	err := filepath.Walk(archiveDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				return err
			}
			removed++
		}

		return nil
	})

	if err != nil {
		return removed, fmt.Errorf("failed to clean archives: %w", err)
	}

	return removed, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	return destFile.Sync()
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
