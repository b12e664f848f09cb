// Package main provides the CLI entrypoint for hangman.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hangman/internal/config"
	"github.com/verte-zerg/hangman/internal/console"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/generator"
	"github.com/verte-zerg/hangman/internal/logger"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/render"
	"github.com/verte-zerg/hangman/internal/session"
	"github.com/verte-zerg/hangman/internal/tui"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

const version = "0.1.0"

var (
	playGuesses  int
	playFile     string
	playPlain    bool
	playLogLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hangman",
		Short:         "Plays a game of hangman",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.PersistentFlags().IntVarP(&playGuesses, "guesses", "g", model.DefaultTotalGuesses, "number of wrong guesses a player can make before losing the game")
	rootCmd.PersistentFlags().StringVarP(&playFile, "file", "f", "", "file to load secret word from (default: built-in words)")
	rootCmd.PersistentFlags().StringVar(&playLogLevel, "log-level", logger.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "use line-based input instead of the full-screen UI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

// resolveOptions layers flags over environment over the config file over defaults.
func resolveOptions(cmd *cobra.Command) (model.Options, error) {
	settings, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return model.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "guesses", &playGuesses, settings.Guesses)
	applyStringConfig(cmd, "file", &playFile, settings.File)
	applyBoolConfig(cmd, "plain", &playPlain, settings.Plain)
	applyStringConfig(cmd, "log-level", &playLogLevel, settings.LogLevel)

	opts := model.Options{
		Game: model.Config{
			TotalGuesses: playGuesses,
			Source:       wordlist.BuiltIn(),
		},
		Plain:    playPlain,
		LogLevel: playLogLevel,
	}
	if strings.TrimSpace(playFile) != "" {
		opts.Game.Source = wordlist.FromFile(playFile)
	}
	return opts, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(cmd.ErrOrStderr(), opts.LogLevel)
	if err != nil {
		return err
	}

	g, err := startGame(opts.Game, log)
	if err != nil {
		return err
	}

	if opts.Plain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		log.Debug().Msg("using line mode")
		if err := console.Run(cmd.InOrStdin(), cmd.OutOrStdout(), g, log); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("game abandoned: %w", err)
			}
			return err
		}
		return nil
	}

	program := tea.NewProgram(tui.NewModel(g), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if g.Status() == game.InProgress {
		log.Info().Msg("game quit before it ended")
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), render.Render(g)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func startGame(cfg model.Config, log zerolog.Logger) (*game.Game, error) {
	log.Debug().
		Stringer("source", cfg.Source).
		Int("guesses", cfg.TotalGuesses).
		Msg("starting game")
	g, err := session.Start(cfg, generator.New())
	if err != nil {
		return nil, err
	}
	log.Debug().Int("secret_len", len([]rune(g.Secret()))).Msg("secret chosen")
	return g, nil
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Print the valid words of the configured word source",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(cmd.ErrOrStderr(), opts.LogLevel)
	if err != nil {
		return err
	}
	words, err := wordlist.LoadWords(opts.Game.Source)
	if err != nil {
		return fmt.Errorf("failed to load words from %s: %w", opts.Game.Source, err)
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	log.Info().Stringer("source", opts.Game.Source).Int("words", len(words)).Msg("loaded words")
	if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "%d valid words in %s\n", len(words), opts.Game.Source); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(words) == 0 {
		return wordlist.ErrEmptyWordList
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hangman configuration
# Uncomment a value to enable it. Environment variables (%sGUESSES,
# %sFILE, %sPLAIN, %sLOG_LEVEL) override this file; CLI flags override both.

[game]
# guesses = %d             # Wrong guesses allowed before losing
# file = "/path/to/words.txt"  # One word per line; default is the built-in list

[ui]
# plain = false           # Line-based input instead of the full-screen UI

[log]
# level = %q           # debug, info, warn, error
`,
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix,
		model.DefaultTotalGuesses,
		logger.DefaultLevel,
	)
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
