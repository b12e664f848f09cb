package tui

import (
	"strings"

	"github.com/verte-zerg/hangman/internal/game"
)

const hiddenRune = '_'

// buildSecretRunes styles each rune of the secret. Guessed runes use the
// correct style; the rest stay hidden while the round runs and are shown in the
// incorrect style once it is lost.
func buildSecretRunes(g *game.Game) []string {
	status := g.Status()
	secret := []rune(g.Secret())
	out := make([]string, 0, len(secret))
	for _, r := range secret {
		switch {
		case g.Revealed(r):
			out = append(out, correctStyle.Render(string(r)))
		case status == game.Lost:
			out = append(out, incorrectStyle.Render(string(r)))
		default:
			out = append(out, pendingStyle.Render(string(hiddenRune)))
		}
	}
	return out
}

func renderSecret(g *game.Game) string {
	return strings.Join(buildSecretRunes(g), " ")
}

// buildGuessRunes styles accepted guesses as hits or misses.
func buildGuessRunes(g *game.Game) []string {
	guesses := g.Guesses()
	out := make([]string, 0, len(guesses))
	for _, r := range guesses {
		if strings.ContainsRune(g.Secret(), r) {
			out = append(out, correctStyle.Render(string(r)))
		} else {
			out = append(out, incorrectStyle.Render(string(r)))
		}
	}
	return out
}
