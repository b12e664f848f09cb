package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/generator"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

func TestStartBuiltIn(t *testing.T) {
	g, err := Start(model.DefaultConfig(), generator.NewSeeded(1))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if g.Status() != game.InProgress {
		t.Fatalf("expected in progress, got %v", g.Status())
	}
	if g.Remaining() != model.DefaultTotalGuesses {
		t.Fatalf("expected %d remaining, got %d", model.DefaultTotalGuesses, g.Remaining())
	}
	found := false
	for _, word := range wordlist.BuiltInWords() {
		if g.Secret() == word {
			found = true
		}
	}
	if !found {
		t.Fatalf("secret %q not in built-in list", g.Secret())
	}
}

func TestStartFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("123\nZaphod\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	cfg := model.Config{TotalGuesses: 3, Source: wordlist.FromFile(path)}
	g, err := Start(cfg, generator.NewSeeded(1))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if g.Secret() != "Zaphod" {
		t.Fatalf("expected Zaphod, got %q", g.Secret())
	}
}

func TestStartRejectsInvalidBudget(t *testing.T) {
	for _, n := range []int{0, -1} {
		cfg := model.Config{TotalGuesses: n, Source: wordlist.BuiltIn()}
		g, err := Start(cfg, generator.NewSeeded(1))
		if !errors.Is(err, ErrInvalidGuesses) {
			t.Fatalf("budget %d: expected ErrInvalidGuesses, got %v", n, err)
		}
		if g != nil {
			t.Fatalf("budget %d: expected no game", n)
		}
	}
}

func TestStartPropagatesSourceErrors(t *testing.T) {
	missing := model.Config{TotalGuesses: 7, Source: wordlist.FromFile(filepath.Join(t.TempDir(), "none.txt"))}
	_, err := Start(missing, generator.NewSeeded(1))
	var srcErr *wordlist.SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("!!!\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	empty := model.Config{TotalGuesses: 7, Source: wordlist.FromFile(path)}
	if _, err := Start(empty, generator.NewSeeded(1)); !errors.Is(err, wordlist.ErrEmptyWordList) {
		t.Fatalf("expected ErrEmptyWordList, got %v", err)
	}
}

func TestValidateRejectsEmptyPath(t *testing.T) {
	cfg := model.Config{TotalGuesses: 7, Source: wordlist.FromFile("")}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
