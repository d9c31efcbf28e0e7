package archive

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"codeberg.org/snonux/hanzicards/internal/testutil"
)

func TestArchiveDataFile(t *testing.T) {
	tmpDir := t.TempDir()
	dataFile := filepath.Join(tmpDir, "flashcards.json")
	testutil.WriteDeckFile(t, dataFile, testutil.SampleCards())

	archivedPath, err := ArchiveDataFile(dataFile)
	if err != nil {
		t.Fatalf("ArchiveDataFile failed: %v", err)
	}

	testutil.AssertFileNotExists(t, dataFile)
	testutil.AssertFileExists(t, archivedPath)

	if filepath.Dir(archivedPath) != filepath.Join(tmpDir, "archive") {
		t.Errorf("Archive placed in wrong directory: %s", archivedPath)
	}

	// Verify name format flashcards-YYYYMMDD-HHMMSS.json
	name := filepath.Base(archivedPath)
	if !regexp.MustCompile(`^flashcards-\d{8}-\d{6}\.json$`).MatchString(name) {
		t.Errorf("Unexpected archive name: %s", name)
	}

	testutil.AssertDecksEqual(t, testutil.ReadDeckFile(t, archivedPath), testutil.SampleCards())
}

func TestArchiveDataFile_NonExistentFile(t *testing.T) {
	_, err := ArchiveDataFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveDataFile_Directory(t *testing.T) {
	if _, err := ArchiveDataFile(t.TempDir()); err == nil {
		t.Error("Expected error when archiving a directory")
	}
}

func TestArchiveDataFile_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()
	dataFile := filepath.Join(tmpDir, "flashcards.json")

	var archived []string
	for i := 0; i < 2; i++ {
		testutil.CreateTestFile(t, dataFile, []byte("[]"))

		path, err := ArchiveDataFile(dataFile)
		if err != nil {
			t.Fatalf("ArchiveDataFile failed on iteration %d: %v", i, err)
		}
		archived = append(archived, path)
	}

	if archived[0] == archived[1] {
		t.Error("Archive names are not unique")
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}
}
