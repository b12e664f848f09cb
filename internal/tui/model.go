// Package tui provides the Bubble Tea hangman interface.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hangman/internal/console"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/render"
)

// Model implements the Bubble Tea hangman UI.
type Model struct {
	game  *game.Game
	input textinput.Model

	notice string

	width  int
	height int
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	gallowsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	wonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	lostStyle      = incorrectStyle.Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a hangman TUI model for g.
func NewModel(g *game.Game) *Model {
	input := textinput.New()
	input.Prompt = "Guess: "
	input.Placeholder = "a-z"
	input.CharLimit = 1
	input.Width = 2
	input.Focus()
	return &Model{
		game:  g,
		input: input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		if m.game.Status() != game.InProgress {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			m.submit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// Notice returns the feedback shown for the last submission.
func (m *Model) Notice() string {
	return m.notice
}

func (m *Model) submit() {
	value := m.input.Value()
	m.input.SetValue("")
	guess, err := console.ParseGuess(value)
	if err != nil {
		m.notice = err.Error()
		return
	}
	if err := m.game.Guess(guess); err != nil {
		switch {
		case errors.Is(err, game.ErrAlreadyGuessed):
			m.notice = fmt.Sprintf("You have already guessed %q", guess)
		default:
			m.notice = err.Error()
		}
		return
	}
	if strings.ContainsRune(m.game.Secret(), guess) {
		m.notice = fmt.Sprintf("%q is in the secret", guess)
	} else {
		m.notice = fmt.Sprintf("%q is not in the secret", guess)
	}
}

func (m *Model) renderBody() string {
	gallows := gallowsStyle.Render(render.GallowsBlock(m.game.WrongGuesses(), m.game.TotalGuesses()))
	lines := []string{
		titleStyle.Render("Hangman"),
		"",
		gallows,
		"",
		renderSecret(m.game),
		"",
	}
	switch m.game.Status() {
	case game.Won:
		lines = append(lines, wonStyle.Render(strings.TrimSpace(render.WonMessage(m.game.Secret()))))
	case game.Lost:
		lines = append(lines, lostStyle.Render(strings.TrimSpace(render.LostMessage(m.game.Secret()))))
	default:
		lines = append(lines,
			fmt.Sprintf("Guesses   : %s", strings.Join(buildGuessRunes(m.game), ", ")),
			fmt.Sprintf("Remaining : %d", m.game.Remaining()),
			"",
			m.input.View(),
		)
		if m.notice != "" {
			lines = append(lines, pendingStyle.Render(m.notice))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderFooter() string {
	if m.game.Status() != game.InProgress {
		return footerStyle.Render("Press any key to exit")
	}
	return footerStyle.Render("Enter to guess · Esc to quit")
}
