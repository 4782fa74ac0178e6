package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"note/internal/adapters/editor"
	"note/internal/adapters/jsonindex"
	"note/internal/adapters/term"
	"note/internal/application/commands"
	"note/internal/config"
)

var deps commands.Deps

var rootCmd = &cobra.Command{
	Use:   "note <selector> ...",
	Short: "Tiny note-taking tool backed by a directory of text files",
	Long: `note keeps small text notes as files in a single directory, with a JSON
index (db.json) tracking title, tags, serial number and last modification.

Possible selectors:
  q - quick note: create a note from the command line. A title can be added anywhere /like that/
  n - new note: create and edit a note in the editor. The optional content of the command line is the title
  e - edit: see all notes and choose the one to edit
  s - search: find notes that have any of the command line keywords in their title or tags
  d - delete: see all notes and choose the one to delete

Environment:
  NOTE_LOCATION  notes directory (default: <home>/Note)
  NOTE_EDITOR    editor binary (default: vi, notepad.exe on Windows)
  NOTE_LOGLEVEL  DEBUG, INFO, WARNING, ERROR or CRITICAL (default: INFO)`,
	// unknown selectors fall through to the root command, which only
	// prints help: no error, matching the original tool
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(cfg.LogLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})

		if _, err := os.Stat(cfg.NotesDir); os.IsNotExist(err) {
			logger.Warnf("notes location does not exist, creating %s", cfg.NotesDir)
		}
		if err := os.MkdirAll(cfg.NotesDir, 0o755); err != nil {
			return fmt.Errorf("create notes directory: %w", err)
		}
		logger.Debugf("working directory: %s", cfg.NotesDir)

		deps = commands.Deps{
			Index:     jsonindex.NewStore(cfg.NotesDir, logger),
			Editor:    editor.NewOpener(cfg.Editor),
			Prompter:  term.NewPrompter(),
			Presenter: term.NewPresenter(os.Stdout, time.Now),
			Log:       logger,
			Dir:       cfg.NotesDir,
			Now:       time.Now,
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
