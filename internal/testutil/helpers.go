package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/hanzicards/internal/deck"
)

// SampleCards returns a small deck with non-ASCII content
func SampleCards() deck.Deck {
	return deck.Deck{
		{Hanzi: "你好", Pinyin: "nǐ hǎo", English: "hello", Vietnamese: "xin chào"},
		{Hanzi: "谢谢", Pinyin: "xièxie", English: "thank you", Vietnamese: "cảm ơn"},
		{Hanzi: "猫", Pinyin: "māo", English: "cat", Vietnamese: "con mèo"},
		{Hanzi: "水", Pinyin: "shuǐ", English: "water", Vietnamese: "nước"},
	}
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteDeckFile writes cards to path in the on-disk JSON format
func WriteDeckFile(t *testing.T, path string, cards deck.Deck) {
	t.Helper()

	data, err := deck.Encode(cards)
	if err != nil {
		t.Fatalf("Failed to encode deck: %v", err)
	}
	CreateTestFile(t, path, data)
}

// ReadDeckFile decodes the JSON data file at path
func ReadDeckFile(t *testing.T, path string) deck.Deck {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read deck file %s: %v", path, err)
	}

	var cards deck.Deck
	if err := json.Unmarshal(data, &cards); err != nil {
		t.Fatalf("Failed to decode deck file %s: %v", path, err)
	}
	return cards
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// AssertDecksEqual compares two decks field for field
func AssertDecksEqual(t *testing.T, got, want deck.Deck) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("Deck length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Card %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
