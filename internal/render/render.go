// Package render turns game state into console text.
package render

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/hangman/internal/game"
)

const hiddenRune = '_'

// Render describes the current state of g. Finished rounds reveal the secret.
func Render(g *game.Game) string {
	switch g.Status() {
	case game.Won:
		return WonMessage(g.Secret())
	case game.Lost:
		return LostMessage(g.Secret())
	default:
		return InProgressMessage(g)
	}
}

// WonMessage congratulates the player and reveals secret.
func WonMessage(secret string) string {
	return fmt.Sprintf("Well done, you guessed the secret (%s)\nNow all of your hopes and dreams will come true\n", secret)
}

// LostMessage commiserates and reveals secret.
func LostMessage(secret string) string {
	return fmt.Sprintf("You failed to guess the secret (%s)\nNever mind, we can't all be winners.\n", secret)
}

// InProgressMessage shows the gallows, the obscured secret, the sorted guesses,
// and the remaining attempts.
func InProgressMessage(g *game.Game) string {
	var b strings.Builder
	for _, line := range Gallows(g.WrongGuesses(), g.TotalGuesses()) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\n            %s\n", ObscuredSecret(g))
	fmt.Fprintf(&b, "Guesses   : %s\n", FormatGuesses(g.Guesses()))
	fmt.Fprintf(&b, "Remaining : %d\n", g.Remaining())
	return b.String()
}

// ObscuredSecret shows guessed letters of the secret and blanks for the rest,
// separated by spaces.
func ObscuredSecret(g *game.Game) string {
	secret := []rune(g.Secret())
	parts := make([]string, len(secret))
	for i, r := range secret {
		if g.Revealed(r) {
			parts[i] = string(r)
		} else {
			parts[i] = string(hiddenRune)
		}
	}
	return strings.Join(parts, " ")
}

// FormatGuesses joins guesses with commas.
func FormatGuesses(guesses []rune) string {
	parts := make([]string, len(guesses))
	for i, r := range guesses {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
