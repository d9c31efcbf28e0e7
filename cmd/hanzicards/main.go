package main

import (
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/hanzicards/internal/cli"
	"codeberg.org/snonux/hanzicards/internal/deck"
	"codeberg.org/snonux/hanzicards/internal/logging"
	"codeberg.org/snonux/hanzicards/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, deck.ErrStorageCorrupt) {
			fmt.Fprintln(os.Stderr, "The data file is not a valid card list. Repair it, or move it away with --archive to start a new deck.")
		}
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	// Config file and environment fill in what was not given on the command line
	flags.Resolve()

	log, err := logging.NewStderr(flags.LogLevel)
	if err != nil {
		return err
	}

	if err := flags.CheckActions(); err != nil {
		return err
	}

	proc := processor.NewProcessor(flags, log)

	switch {
	case flags.Archive:
		return proc.ArchiveData()

	case flags.ListModels:
		return proc.ListModels()

	case flags.List:
		if err := proc.ListCards(os.Stdout); err != nil {
			return err
		}

	case flags.BatchFile != "":
		if err := proc.ImportBatch(); err != nil {
			return err
		}

	case !flags.GenerateAnki:
		// No action given - launch GUI mode by default
		return proc.RunGUIMode()
	}

	// Generate Anki file if requested
	if flags.GenerateAnki {
		fmt.Printf("\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			return fmt.Errorf("failed to generate Anki file: %w", err)
		}
		fmt.Printf("Anki file created: %s\n", outputPath)
	}

	return nil
}
