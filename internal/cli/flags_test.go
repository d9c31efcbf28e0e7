package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"DataFile", flags.DataFile, DefaultDataFile()},
		{"LogLevel", flags.LogLevel, "info"},
		{"DeckName", flags.DeckName, "Chinese Vocabulary"},
		{"SuggestProvider", flags.SuggestProvider, "openai"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"List", flags.List},
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"OutputPath", flags.OutputPath},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestActionCount(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  int
	}{
		{"none", Flags{}, 0},
		{"anki alone is not an action", Flags{GenerateAnki: true}, 0},
		{"list", Flags{List: true}, 1},
		{"batch and archive", Flags{BatchFile: "words.txt", Archive: true}, 2},
		{"all", Flags{List: true, BatchFile: "x", Archive: true, ListModels: true}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.ActionCount(); got != tt.want {
				t.Errorf("ActionCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckActions(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		wantErr bool
	}{
		{"gui", Flags{}, false},
		{"anki alone", Flags{GenerateAnki: true}, false},
		{"list then anki", Flags{List: true, GenerateAnki: true}, false},
		{"batch then anki", Flags{BatchFile: "words.txt", GenerateAnki: true}, false},
		{"list and batch", Flags{List: true, BatchFile: "words.txt"}, true},
		{"anki with archive", Flags{Archive: true, GenerateAnki: true}, true},
		{"anki with list-models", Flags{ListModels: true, GenerateAnki: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.CheckActions()
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckActions() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
