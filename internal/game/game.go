// Package game implements the rules of a single hangman round.
package game

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrGameOver is returned when a guess is made after the round has ended.
	ErrGameOver = errors.New("game is over")
	// ErrAlreadyGuessed is returned when a letter is submitted a second time.
	ErrAlreadyGuessed = errors.New("letter already guessed")
)

// Status is the derived state of a round.
type Status int

const (
	// InProgress means the round accepts guesses.
	InProgress Status = iota
	// Won means every letter of the secret has been guessed.
	Won
	// Lost means the wrong-guess budget is exhausted.
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game tracks the secret, the accepted guesses, and the remaining attempts.
type Game struct {
	secret    string
	total     int
	remaining int
	guesses   []rune
}

// New starts a round for secret allowing totalGuesses wrong guesses.
// Negative budgets are treated as zero.
func New(secret string, totalGuesses int) *Game {
	if totalGuesses < 0 {
		totalGuesses = 0
	}
	return &Game{
		secret:    secret,
		total:     totalGuesses,
		remaining: totalGuesses,
	}
}

// Status derives the round state. Loss is checked before win.
func (g *Game) Status() Status {
	if g.remaining == 0 {
		return Lost
	}
	for _, r := range g.secret {
		if !g.Revealed(r) {
			return InProgress
		}
	}
	return Won
}

// Guess submits a letter. Accepted letters are recorded in sorted order and
// a letter missing from the secret costs one attempt.
func (g *Game) Guess(letter rune) error {
	if g.Status() != InProgress {
		return ErrGameOver
	}
	idx, found := g.search(letter)
	if found {
		return ErrAlreadyGuessed
	}
	g.guesses = append(g.guesses, 0)
	copy(g.guesses[idx+1:], g.guesses[idx:])
	g.guesses[idx] = letter
	if !strings.ContainsRune(g.secret, letter) {
		g.remaining--
	}
	return nil
}

// Revealed reports whether letter has been guessed.
func (g *Game) Revealed(letter rune) bool {
	_, found := g.search(letter)
	return found
}

// Secret returns the word being guessed.
func (g *Game) Secret() string {
	return g.secret
}

// Guesses returns a sorted copy of the accepted guesses.
func (g *Game) Guesses() []rune {
	return append([]rune(nil), g.guesses...)
}

// Remaining returns how many more wrong guesses are allowed.
func (g *Game) Remaining() int {
	return g.remaining
}

// TotalGuesses returns the wrong-guess budget the round started with.
func (g *Game) TotalGuesses() int {
	return g.total
}

// WrongGuesses returns the number of accepted guesses absent from the secret.
func (g *Game) WrongGuesses() int {
	return g.total - g.remaining
}

func (g *Game) search(letter rune) (int, bool) {
	idx := sort.Search(len(g.guesses), func(i int) bool {
		return g.guesses[i] >= letter
	})
	return idx, idx < len(g.guesses) && g.guesses[idx] == letter
}
