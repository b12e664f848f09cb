// Package model defines shared data structures.
package model

import "github.com/verte-zerg/hangman/internal/wordlist"

// DefaultTotalGuesses is the wrong-guess budget used when none is configured.
const DefaultTotalGuesses = 7

// Config defines the settings for one round.
type Config struct {
	TotalGuesses int
	Source       wordlist.Source
}

// DefaultConfig returns a round using the built-in words and default budget.
func DefaultConfig() Config {
	return Config{
		TotalGuesses: DefaultTotalGuesses,
		Source:       wordlist.BuiltIn(),
	}
}

// Options holds the resolved CLI settings around a round.
type Options struct {
	Game     Config
	Plain    bool
	LogLevel string
}
