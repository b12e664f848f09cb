package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var gallowsStages = [][]string{
	{
		"",
		"",
		"",
		"",
		"",
		"═══════",
	},
	{
		"  ┌───┐",
		"  │",
		"  │",
		"  │",
		"  │",
		"══╧════",
	},
	{
		"  ┌───┐",
		"  │   O",
		"  │",
		"  │",
		"  │",
		"══╧════",
	},
	{
		"  ┌───┐",
		"  │   O",
		"  │   │",
		"  │",
		"  │",
		"══╧════",
	},
	{
		"  ┌───┐",
		"  │   O",
		"  │  /│",
		"  │",
		"  │",
		"══╧════",
	},
	{
		"  ┌───┐",
		"  │   O",
		"  │  /│\\",
		"  │",
		"  │",
		"══╧════",
	},
	{
		"  ┌───┐",
		"  │   O",
		"  │  /│\\",
		"  │  /",
		"  │",
		"══╧════",
	},
	{
		"  ┌───┐",
		"  │   O",
		"  │  /│\\",
		"  │  / \\",
		"  │",
		"══╧════",
	},
}

// GallowsStage maps wrong guesses out of total onto a drawing stage, so the
// figure is complete exactly when the budget runs out.
func GallowsStage(wrong, total int) int {
	last := len(gallowsStages) - 1
	if total <= 0 || wrong >= total {
		return last
	}
	if wrong <= 0 {
		return 0
	}
	stage := wrong * last / total
	if stage == 0 {
		stage = 1
	}
	return stage
}

// Gallows returns the drawing for wrong out of total, every line padded to the
// same display width.
func Gallows(wrong, total int) []string {
	stage := gallowsStages[GallowsStage(wrong, total)]
	width := 0
	for _, line := range stage {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	lines := make([]string, len(stage))
	for i, line := range stage {
		lines[i] = runewidth.FillRight(line, width)
	}
	return lines
}

// GallowsBlock joins the drawing into a single block of text.
func GallowsBlock(wrong, total int) string {
	return strings.Join(Gallows(wrong, total), "\n")
}
