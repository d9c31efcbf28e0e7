package cli

import (
	"errors"

	"github.com/spf13/viper"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	DataFile string
	LogLevel string

	// One-shot actions
	List         bool
	BatchFile    string
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	OutputPath   string
	Archive      bool
	ListModels   bool

	// Suggestion flags
	SuggestProvider string
	OpenAIModel     string
	GeminiModel     string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DataFile:        DefaultDataFile(),
		LogLevel:        "info",
		DeckName:        "Chinese Vocabulary",
		SuggestProvider: "openai",
		OpenAIModel:     "gpt-4o-mini",
		GeminiModel:     "gemini-2.0-flash",
	}
}

// Resolve overlays config file and environment values for every flag the
// user did not set explicitly. Call it after InitConfig.
func (f *Flags) Resolve() {
	f.DataFile = viper.GetString("data.file")
	f.LogLevel = viper.GetString("log.level")
	f.DeckName = viper.GetString("export.deck_name")
	f.SuggestProvider = viper.GetString("suggest.provider")
	f.OpenAIModel = viper.GetString("suggest.openai_model")
	f.GeminiModel = viper.GetString("suggest.gemini_model")
}

// ActionCount returns how many mutually exclusive one-shot actions are set
func (f *Flags) ActionCount() int {
	n := 0
	for _, set := range []bool{f.List, f.BatchFile != "", f.Archive, f.ListModels} {
		if set {
			n++
		}
	}
	return n
}

// CheckActions rejects flag combinations that cannot run together. --anki
// may follow --list or --batch, or run on its own.
func (f *Flags) CheckActions() error {
	if f.ActionCount() > 1 {
		return errors.New("--list, --batch, --archive and --list-models cannot be combined")
	}
	if f.GenerateAnki && (f.Archive || f.ListModels) {
		return errors.New("--anki cannot be combined with --archive or --list-models")
	}
	return nil
}
