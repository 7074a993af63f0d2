package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesninja/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // star eyes, last game was flawless
	MascotAlert                            // last game ran out of lives
)

const mascotIdle = `┌─────┐
│ ◉_◉ │
│ ═══ │
│  ×  │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★_★ │
│ ═══ │
│  ×  │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉_◉ │ !
│ ═══ │
│  ×  │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
