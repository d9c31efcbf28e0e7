package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", DefaultFileName)
	return NewFileStore(path, zerolog.Nop()), path
}

func TestLoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d == nil || len(d) != 0 {
		t.Errorf("Load() = %#v, want empty non-nil deck", d)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		deck Deck
	}{
		{name: "empty deck", deck: Deck{}},
		{name: "single card", deck: Deck{
			{Hanzi: "你好", Pinyin: "nǐ hǎo", English: "hello", Vietnamese: "xin chào"},
		}},
		{name: "order and duplicates preserved", deck: Deck{
			{Hanzi: "猫", Pinyin: "māo", English: "cat", Vietnamese: "con mèo"},
			{Hanzi: "狗", Pinyin: "gǒu", English: "dog", Vietnamese: "con chó"},
			{Hanzi: "猫", Pinyin: "māo", English: "cat", Vietnamese: "con mèo"},
		}},
		{name: "whitespace-only field", deck: Deck{
			{Hanzi: "你好", Pinyin: "nǐ hǎo", English: " ", Vietnamese: "xin chào"},
		}},
		{name: "characters json would escape", deck: Deck{
			{Hanzi: "<大>", Pinyin: "dà & xiǎo", English: "\"big\"", Vietnamese: "to\\lớn"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)

			if err := store.Save(tt.deck); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(got) != len(tt.deck) {
				t.Fatalf("Load() returned %d cards, want %d", len(got), len(tt.deck))
			}
			for i := range tt.deck {
				if got[i] != tt.deck[i] {
					t.Errorf("card %d = %+v, want %+v", i, got[i], tt.deck[i])
				}
			}
		})
	}
}

func TestSaveFormat(t *testing.T) {
	store, path := newTestStore(t)

	err := store.Save(Deck{{Hanzi: "你好", Pinyin: "nǐ hǎo", English: "hello", Vietnamese: "xin chào"}})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}
	content := string(data)

	for _, want := range []string{`"hanzi": "你好"`, `"vietnamese": "xin chào"`, "\n        \"pinyin\""} {
		if !strings.Contains(content, want) {
			t.Errorf("data file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, `\u`) {
		t.Errorf("data file contains escaped unicode:\n%s", content)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the data file in %s, found %d entries", filepath.Dir(path), len(entries))
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)

	first := Deck{{Hanzi: "一", Pinyin: "yī", English: "one", Vietnamese: "một"}, {Hanzi: "二", Pinyin: "èr", English: "two", Vietnamese: "hai"}}
	if err := store.Save(first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(first[:1]); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].Hanzi != "一" {
		t.Errorf("Load() = %+v, want only 一", got)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated json", content: `[{"hanzi": "你好", "pinyin": "nǐ`},
		{name: "object instead of array", content: `{"hanzi": "你好"}`},
		{name: "wrong field type", content: `[{"hanzi": 1, "pinyin": "a", "english": "b", "vietnamese": "c"}]`},
		{name: "missing field", content: `[{"hanzi": "你好", "pinyin": "nǐ hǎo", "english": "hello"}]`},
		{name: "null field", content: `[{"hanzi": "你好", "pinyin": null, "english": "hello", "vietnamese": "xin chào"}]`},
		{name: "null record", content: `[null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestStore(t)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := store.Load()
			if !errors.Is(err, ErrStorageCorrupt) {
				t.Fatalf("Load() error = %v, want ErrStorageCorrupt", err)
			}
			var cerr *CorruptError
			if !errors.As(err, &cerr) || cerr.Path != path {
				t.Errorf("Load() error = %#v, want *CorruptError for %s", err, path)
			}
		})
	}
}

func TestLoadKeepsBlankFields(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	content := `[{"hanzi": "你好", "pinyin": "nǐ hǎo", "english": "", "vietnamese": "xin chào"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Card{Hanzi: "你好", Pinyin: "nǐ hǎo", English: "", Vietnamese: "xin chào"}
	if len(d) != 1 || d[0] != want {
		t.Errorf("Load() = %+v, want [%+v]", d, want)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	for _, content := range []string{"", "  \n", "null"} {
		store, path := newTestStore(t)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		d, err := store.Load()
		if err != nil {
			t.Errorf("Load(%q) error = %v", content, err)
		}
		if len(d) != 0 {
			t.Errorf("Load(%q) = %+v, want empty deck", content, d)
		}
	}
}

func TestSaveWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(filepath.Join(blocker, DefaultFileName), zerolog.Nop())
	err := store.Save(Deck{{Hanzi: "一", Pinyin: "yī", English: "one", Vietnamese: "một"}})
	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("Save() error = %v, want ErrStorageWrite", err)
	}
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Errorf("Save() error %T is not a *WriteError", err)
	}
}

func TestEncodeNilDeck(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Encode(nil) = %q, want []", data)
	}
}
