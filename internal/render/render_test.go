package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hangman/internal/game"
)

func TestRenderWon(t *testing.T) {
	g := game.New("a", 1)
	_ = g.Guess('a')
	out := Render(g)
	if !strings.Contains(out, "you guessed the secret (a)") {
		t.Fatalf("expected win message, got %q", out)
	}
}

func TestRenderLost(t *testing.T) {
	g := game.New("a", 1)
	_ = g.Guess('z')
	out := Render(g)
	if !strings.Contains(out, "You failed to guess the secret (a)") {
		t.Fatalf("expected loss message, got %q", out)
	}
}

func TestRenderInProgress(t *testing.T) {
	g := game.New("secret", 3)
	_ = g.Guess('t')
	_ = g.Guess('e')
	_ = g.Guess('z')
	out := Render(g)
	for _, want := range []string{"_ e _ _ e t", "Guesses   : e, t, z", "Remaining : 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "secret") {
		t.Fatalf("in-progress render leaked the secret: %q", out)
	}
}

func TestObscuredSecret(t *testing.T) {
	g := game.New("secret", 2)
	if got := ObscuredSecret(g); got != "_ _ _ _ _ _" {
		t.Fatalf("expected all blanks, got %q", got)
	}
	_ = g.Guess('f')
	if got := ObscuredSecret(g); got != "_ _ _ _ _ _" {
		t.Fatalf("wrong guess revealed letters: %q", got)
	}
	_ = g.Guess('e')
	if got := ObscuredSecret(g); got != "_ e _ _ e _" {
		t.Fatalf("expected e revealed, got %q", got)
	}
}

func TestFormatGuesses(t *testing.T) {
	cases := []struct {
		in   []rune
		want string
	}{
		{nil, ""},
		{[]rune("a"), "a"},
		{[]rune("aez"), "a, e, z"},
	}
	for _, tc := range cases {
		if got := FormatGuesses(tc.in); got != tc.want {
			t.Errorf("FormatGuesses(%q) = %q, want %q", string(tc.in), got, tc.want)
		}
	}
}

func TestGallowsStage(t *testing.T) {
	last := len(gallowsStages) - 1
	cases := []struct {
		wrong, total, want int
	}{
		{0, 7, 0},
		{1, 7, 1},
		{7, 7, last},
		{1, 2, 3},
		{2, 2, last},
		{1, 100, 1},
		{0, 0, last},
	}
	for _, tc := range cases {
		if got := GallowsStage(tc.wrong, tc.total); got != tc.want {
			t.Errorf("GallowsStage(%d, %d) = %d, want %d", tc.wrong, tc.total, got, tc.want)
		}
	}
}

func TestGallowsLinesShareWidth(t *testing.T) {
	for wrong := 0; wrong <= 7; wrong++ {
		lines := Gallows(wrong, 7)
		width := runewidth.StringWidth(lines[0])
		for _, line := range lines {
			if w := runewidth.StringWidth(line); w != width {
				t.Fatalf("stage %d: line %q width %d, want %d", wrong, line, w, width)
			}
		}
	}
}
