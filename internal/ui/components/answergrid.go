package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesninja/internal/ui/theme"
)

// AnswerGrid is a numbered answer selector for a multiplication question.
// Options are already shuffled; the grid only tracks selection and the
// post-answer reveal state.
type AnswerGrid struct {
	Options      []int
	CorrectValue int
	Selected     int
	Revealed     bool
	ChosenIndex  int
}

// NewAnswerGrid creates a grid over shuffled answer options.
func NewAnswerGrid(options []int, correctValue int) AnswerGrid {
	return AnswerGrid{
		Options:      options,
		CorrectValue: correctValue,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// MoveUp moves the selection cursor up.
func (g *AnswerGrid) MoveUp() {
	if !g.Revealed && g.Selected > 0 {
		g.Selected--
	}
}

// MoveDown moves the selection cursor down.
func (g *AnswerGrid) MoveDown() {
	if !g.Revealed && g.Selected < len(g.Options)-1 {
		g.Selected++
	}
}

// Choose locks in the option at index and returns its value.
// Returns false if the index is out of range or the grid is already revealed.
func (g *AnswerGrid) Choose(index int) (int, bool) {
	if g.Revealed || index < 0 || index >= len(g.Options) {
		return 0, false
	}
	g.Revealed = true
	g.ChosenIndex = index
	return g.Options[index], true
}

// Reveal shows the correct answer without a chosen option (timeout).
func (g *AnswerGrid) Reveal() {
	g.Revealed = true
}

// View renders the numbered options.
func (g AnswerGrid) View() string {
	var s string
	for i, opt := range g.Options {
		prefix := "  "
		if i == g.Selected && !g.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, opt)

		if g.Revealed {
			switch {
			case opt == g.CorrectValue:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == g.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == g.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}
