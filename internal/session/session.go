// Package session turns a round configuration into a playable game.
package session

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

// ErrInvalidGuesses is returned when the wrong-guess budget is not positive.
var ErrInvalidGuesses = errors.New("total guesses must be > 0")

// Validate checks cfg before any words are loaded.
func Validate(cfg model.Config) error {
	if cfg.TotalGuesses <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidGuesses, cfg.TotalGuesses)
	}
	if cfg.Source.Kind == wordlist.KindFile && cfg.Source.Path == "" {
		return fmt.Errorf("word file path is empty")
	}
	return nil
}

// Start validates cfg, chooses a secret, and returns a fresh game. No game is
// returned when any step fails.
func Start(cfg model.Config, rnd wordlist.Rand) (*game.Game, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	secret, err := wordlist.ChooseSecret(cfg.Source, rnd)
	if err != nil {
		return nil, fmt.Errorf("failed to choose secret from %s: %w", cfg.Source, err)
	}
	return game.New(secret, cfg.TotalGuesses), nil
}
