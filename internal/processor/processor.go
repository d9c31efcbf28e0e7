package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/hanzicards/internal"
	"codeberg.org/snonux/hanzicards/internal/anki"
	"codeberg.org/snonux/hanzicards/internal/archive"
	"codeberg.org/snonux/hanzicards/internal/batch"
	"codeberg.org/snonux/hanzicards/internal/cli"
	"codeberg.org/snonux/hanzicards/internal/deck"
	"codeberg.org/snonux/hanzicards/internal/gui"
	"codeberg.org/snonux/hanzicards/internal/models"
	"codeberg.org/snonux/hanzicards/internal/session"
	"codeberg.org/snonux/hanzicards/internal/suggest"
)

// Processor runs the action selected on the command line
type Processor struct {
	flags *cli.Flags
	log   zerolog.Logger
	out   io.Writer
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, log zerolog.Logger) *Processor {
	return &Processor{
		flags: flags,
		log:   log,
		out:   os.Stdout,
	}
}

// SetOutput redirects progress and summary messages
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

func (p *Processor) store() *deck.FileStore {
	return deck.NewFileStore(p.flags.DataFile, p.log)
}

func (p *Processor) openSession() (*session.Controller, error) {
	return session.New(p.store(), session.WithLogger(p.log))
}

// ListCards prints every card of the deck in storage order
func (p *Processor) ListCards(w io.Writer) error {
	store := p.store()
	cards, err := store.Load()
	if err != nil {
		return err
	}

	if len(cards) == 0 {
		fmt.Fprintf(w, "No cards in %s\n", store.Path())
		return nil
	}

	width := len(fmt.Sprint(len(cards)))
	for i, c := range cards {
		fmt.Fprintf(w, "%*d. %s (%s) - %s / %s\n", width, i+1, c.Hanzi, c.Pinyin, c.English, c.Vietnamese)
	}
	fmt.Fprintf(w, "\n%d card(s) in %s\n", len(cards), store.Path())
	return nil
}

// ImportBatch appends the cards of the batch file to the deck. Lines that
// do not parse or validate are reported and skipped, cards whose hanzi and
// pinyin are already in the deck are skipped as well.
func (p *Processor) ImportBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	var skippedLines *batch.SkippedLinesError
	if errors.As(err, &skippedLines) {
		for _, le := range skippedLines.Errors {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", le)
		}
	} else if err != nil {
		return err
	}

	ctrl, err := p.openSession()
	if err != nil {
		return err
	}

	existing := make(map[string]bool, ctrl.Len())
	for _, c := range ctrl.Cards() {
		existing[c.Hanzi+"\x00"+c.Pinyin] = true
	}

	added, duplicates, invalid := 0, 0, 0
	for _, entry := range entries {
		c := entry.Card
		key := c.Hanzi + "\x00" + c.Pinyin
		if existing[key] {
			fmt.Fprintf(p.out, "  ✓ Skipping '%s' - already in the deck\n", c.Hanzi)
			duplicates++
			continue
		}

		err := ctrl.AddCard(c.Hanzi, c.Pinyin, c.English, c.Vietnamese)
		if errors.Is(err, deck.ErrValidation) {
			fmt.Fprintf(os.Stderr, "Warning: line %d: %v\n", entry.Line, err)
			invalid++
			continue
		}
		if err != nil {
			return fmt.Errorf("import stopped at line %d after %d card(s): %w", entry.Line, added, err)
		}

		existing[key] = true
		added++
		p.log.Debug().Str("hanzi", c.Hanzi).Int("line", entry.Line).Msg("card imported")
	}

	fmt.Fprintf(p.out, "\n=== Batch Import Summary ===\n")
	fmt.Fprintf(p.out, "Lines with cards: %d\n", len(entries))
	fmt.Fprintf(p.out, "Added: %d\n", added)
	fmt.Fprintf(p.out, "Skipped (already in deck): %d\n", duplicates)
	if n := invalid + len(linesOf(skippedLines)); n > 0 {
		fmt.Fprintf(p.out, "Skipped (invalid): %d\n", n)
	}
	fmt.Fprintf(p.out, "Deck now has %d card(s)\n", ctrl.Len())

	return nil
}

func linesOf(e *batch.SkippedLinesError) []*batch.LineError {
	if e == nil {
		return nil
	}
	return e.Errors
}

// ankiOutputPath returns --output or a default next to the data file
func (p *Processor) ankiOutputPath() string {
	if p.flags.OutputPath != "" {
		return p.flags.OutputPath
	}
	dir := filepath.Dir(p.flags.DataFile)
	if p.flags.AnkiCSV {
		return filepath.Join(dir, anki.DefaultGeneratorOptions().OutputPath)
	}

	name := internal.SanitizeFilename(strings.TrimSpace(p.flags.DeckName))
	if name == "" {
		name = "hanzicards"
	}
	return filepath.Join(dir, name+".apkg")
}

// GenerateAnkiFile exports the deck and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	store := p.store()
	cards, err := store.Load()
	if err != nil {
		return "", err
	}
	if len(cards) == 0 {
		return "", fmt.Errorf("no cards to export in %s", store.Path())
	}

	outputPath := p.ankiOutputPath()
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})
	gen.AddDeck(cards)

	if p.flags.AnkiCSV {
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	fmt.Fprintf(p.out, "  Exported %d cards\n", len(gen.Cards()))
	return outputPath, nil
}

// ArchiveData moves the data file into the archive directory
func (p *Processor) ArchiveData() error {
	archivedPath, err := archive.ArchiveDataFile(p.flags.DataFile)
	if err != nil {
		return fmt.Errorf("failed to archive data file: %w", err)
	}
	fmt.Fprintf(p.out, "Data file archived to: %s\n", archivedPath)
	return nil
}

// ListModels prints the OpenAI chat models usable for suggestions
func (p *Processor) ListModels() error {
	return models.NewLister(cli.GetOpenAIKey()).ListAvailableModels(context.Background(), p.out)
}

// SuggestProvider builds the configured suggestion provider. It returns nil
// when suggestions are disabled or no API key is available.
func (p *Processor) SuggestProvider() suggest.Provider {
	name := strings.ToLower(strings.TrimSpace(p.flags.SuggestProvider))
	if name == "" || name == "none" {
		return nil
	}

	config := suggest.DefaultProviderConfig()
	config.Provider = name
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = p.flags.OpenAIModel
	config.GeminiKey = cli.GetGeminiKey()
	config.GeminiModel = p.flags.GeminiModel
	config.Logger = p.log

	provider, err := suggest.NewProvider(config)
	if err != nil {
		p.log.Info().Err(err).Str("provider", name).Msg("field suggestions disabled")
		return nil
	}
	return provider
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	ctrl, err := p.openSession()
	if err != nil {
		return err
	}

	app := gui.New(gui.NewFyneApp(), ctrl, &gui.Config{
		Suggester:      p.SuggestProvider(),
		SuggestTimeout: suggest.DefaultTimeout,
		Logger:         p.log,
	})
	app.Run()

	return nil
}
