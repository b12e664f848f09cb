// Package console runs a round over plain line-based input and output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/render"
)

// Prompt is written before every read.
const Prompt = "Please enter your guess: "

var (
	// ErrNotSingleLetter rejects input that is not exactly one character.
	ErrNotSingleLetter = errors.New("guesses should only contain one letter")
	// ErrNotASCIILetter rejects a single character that is not an ASCII letter.
	ErrNotASCIILetter = errors.New("only ASCII letters are supported")
)

// ParseGuess validates one line of input as a guess.
func ParseGuess(line string) (rune, error) {
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) != 1 {
		return 0, ErrNotSingleLetter
	}
	r, _ := utf8.DecodeRuneInString(line)
	if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
		return 0, ErrNotASCIILetter
	}
	return r, nil
}

// Run plays g to completion reading guesses from in and writing the transcript
// to out. It returns io.ErrUnexpectedEOF (wrapped) when input ends mid-round.
func Run(in io.Reader, out io.Writer, g *game.Game, log zerolog.Logger) error {
	scanner := bufio.NewScanner(in)
	if _, err := io.WriteString(out, render.Render(g)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for g.Status() == game.InProgress {
		if _, err := io.WriteString(out, Prompt); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read guess: %w", err)
			}
			return fmt.Errorf("input closed before the game ended: %w", io.ErrUnexpectedEOF)
		}
		guess, err := ParseGuess(scanner.Text())
		if err != nil {
			if _, werr := fmt.Fprintln(out, err.Error()); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
			continue
		}
		if err := g.Guess(guess); err != nil {
			log.Debug().Str("guess", string(guess)).Err(err).Msg("guess rejected")
			if _, werr := fmt.Fprintln(out, rejectionMessage(guess, err)); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
			continue
		}
		log.Debug().
			Str("guess", string(guess)).
			Int("remaining", g.Remaining()).
			Stringer("status", g.Status()).
			Msg("guess accepted")
		if _, err := io.WriteString(out, render.Render(g)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func rejectionMessage(guess rune, err error) string {
	switch {
	case errors.Is(err, game.ErrAlreadyGuessed):
		return fmt.Sprintf("You have already guessed %q", guess)
	case errors.Is(err, game.ErrGameOver):
		return "The game is already over"
	default:
		return err.Error()
	}
}
