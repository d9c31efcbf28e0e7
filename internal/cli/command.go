package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hanzicards/internal"
	"codeberg.org/snonux/hanzicards/internal/deck"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hanzicards",
		Short: "Chinese Vocabulary Flashcards",
		Long: `hanzicards is a flashcard trainer for Chinese vocabulary.

Each card carries the hanzi, its pinyin and English and Vietnamese
meanings. Cards are stored in a single JSON file that is rewritten
after every change.

Examples:
  hanzicards                          # Launch the flashcard window (default)
  hanzicards --list                   # Print every card
  hanzicards --batch words.txt        # Import "hanzi | pinyin | english | vietnamese" lines
  hanzicards --anki -o hsk1.apkg      # Export the deck as an Anki package
  hanzicards --archive                # Move the data file away and start fresh`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

// DefaultDataFile returns the data file used when none is configured
func DefaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return deck.DefaultFileName
	}
	return filepath.Join(home, ".local", "state", "hanzicards", deck.DefaultFileName)
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hanzicards.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVarP(&flags.DataFile, "data", "d", flags.DataFile, "Flashcard data file (JSON)")
	cmd.Flags().BoolVar(&flags.List, "list", false, "Print all cards and exit")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Import cards from file (hanzi | pinyin | english | vietnamese per line)")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output file for --anki (default: <deck-name>.apkg, or anki_import.csv with --anki-csv, next to the data file)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the data file into the archive directory and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable for suggestions")

	// Suggestion flags
	cmd.Flags().StringVar(&flags.SuggestProvider, "suggest-provider", flags.SuggestProvider, "Field suggestion provider: openai, gemini or none")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for suggestions")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for suggestions")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("data.file", cmd.Flags().Lookup("data"))
	viper.BindPFlag("export.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("suggest.provider", cmd.Flags().Lookup("suggest-provider"))
	viper.BindPFlag("suggest.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("suggest.gemini_model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hanzicards" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hanzicards")
	}

	// Environment variables, e.g. HANZICARDS_DATA_FILE
	viper.SetEnvPrefix("HANZICARDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.gemini_key")
}
