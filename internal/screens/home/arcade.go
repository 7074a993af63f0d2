package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/ui/components"
	"github.com/abhisek/timesninja/internal/ui/theme"
)

// Block-letter title, two rows so it fits the cabinet width.
const arcadeTitleFull = `████████╗██╗███╗   ███╗███████╗███████╗
╚══██╔══╝██║████╗ ████║██╔════╝██╔════╝
   ██║   ██║██╔████╔██║█████╗  ███████╗
   ██║   ██║██║╚██╔╝██║██╔══╝  ╚════██║
   ██║   ██║██║ ╚═╝ ██║███████╗███████║
   ╚═╝   ╚═╝╚═╝     ╚═╝╚══════╝╚══════╝
███╗   ██╗██╗███╗   ██╗     ██╗ █████╗
████╗  ██║██║████╗  ██║     ██║██╔══██╗
██╔██╗ ██║██║██╔██╗ ██║     ██║███████║
██║╚██╗██║██║██║╚██╗██║██   ██║██╔══██║
██║ ╚████║██║██║ ╚████║╚█████╔╝██║  ██║
╚═╝  ╚═══╝╚═╝╚═╝  ╚═══╝ ╚════╝ ╚═╝  ╚═╝`

const arcadeTitleCompact = "TIMES × NINJA"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderLevelSelect renders the difficulty picker line.
func renderLevelSelect(lvl game.Level, idx, cw int) string {
	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	left := "◀ "
	if idx == 0 {
		left = "  "
	}
	right := " ▶"
	if idx == len(game.Levels)-1 {
		right = "  "
	}

	line := arrowStyle.Render(left) +
		labelStyle.Render(fmt.Sprintf("%s · %ds per question", strings.ToUpper(lvl.Label), lvl.TimePerQuestion)) +
		arrowStyle.Render(right)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(line)
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(best, played, lastAccuracy, cw int, compact bool) string {
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	playedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			bestStyle.Render(fmt.Sprintf("★%d", best)),
			playedStyle.Render(fmt.Sprintf("◆%d", played)),
			accuracyText(lastAccuracy, true, accStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			bestStyle.Render(fmt.Sprintf("★ %d BEST", best)),
			playedStyle.Render(fmt.Sprintf("◆ %d PLAYED", played)),
			accuracyText(lastAccuracy, false, accStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func accuracyText(lastAccuracy int, compact bool, active, dim lipgloss.Style) string {
	if lastAccuracy < 0 {
		if compact {
			return dim.Render("⚡--")
		}
		return dim.Render("⚡ NO GAMES YET")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d%%", lastAccuracy))
	}
	return active.Render(fmt.Sprintf("⚡ %d%% LAST GAME", lastAccuracy))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderOfflineBanner renders a note when no LLM API key is configured.
func renderOfflineBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ No LLM API key found — playing with the built-in question bank")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
