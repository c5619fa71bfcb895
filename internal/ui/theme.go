package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Disciplina theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTarget  = "🎯"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconFail    = "❌"
	IconFire    = "🔥"
	IconSkull   = "💀"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconShop    = "🛒"
	IconGoal    = "🏁"
	IconClock   = "⏰"
	IconTomato  = "🍅"
	IconCoach   = "🧠"
)

var (
	cPrimary = lipgloss.Color("42")  // emerald
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatusText renders a mission's resolution for today.
func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed":
		return Good.Render("completed")
	case "failed":
		return Bad.Render("failed")
	case "pending":
		return Warn.Render("pending")
	default:
		return Muted.Render(status)
	}
}

// StrikeDots renders the hardcore strike counter as filled/empty dots.
func StrikeDots(strikes, limit int) string {
	var b strings.Builder
	for i := 0; i < limit; i++ {
		if i < strikes {
			b.WriteString(Bad.Render("●"))
		} else {
			b.WriteString(Muted.Render("○"))
		}
	}
	return b.String()
}

// XPBar renders a fixed-width progress bar for the current level.
func XPBar(progress, size, width int) string {
	if size <= 0 || width <= 0 {
		return ""
	}
	filled := progress * width / size
	if filled > width {
		filled = width
	}
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
