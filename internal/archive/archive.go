package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveDataFile moves the deck file into an archive directory next to it,
// stamped with the current time, and returns the archived path. The next
// start then begins with an empty deck.
func ArchiveDataFile(dataFile string) (string, error) {
	info, err := os.Stat(dataFile)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("data file does not exist: %s", dataFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat data file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("data file is a directory: %s", dataFile)
	}

	archiveDir := filepath.Join(filepath.Dir(dataFile), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(dataFile)
	base := strings.TrimSuffix(filepath.Base(dataFile), ext)

	now := time.Now()
	archivePath := filepath.Join(archiveDir,
		fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405"), ext))

	// Check if archive already exists (two archives within one second)
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir,
			fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(dataFile, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive data file: %w", err)
	}

	return archivePath, nil
}
