package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/asteroid-belt/hashcollide/internal/collide"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders search progress against the expected number of attempts.
// A digest of n hex characters takes about 16^n attempts to match a fixed
// target, so the bar can overrun; it is clamped at full.
type ProgressBar struct {
	expected float64
	width    int
}

// NewProgressBar creates a progress bar for digests of hashLength hex characters.
func NewProgressBar(hashLength int, width int) *ProgressBar {
	if width <= 0 {
		width = 15
	}
	return &ProgressBar{
		expected: math.Pow(16, float64(hashLength)),
		width:    width,
	}
}

// Render returns the formatted progress line for p.
func (b *ProgressBar) Render(p collide.Progress) string {
	percent := float64(p.Attempts) / b.expected
	if percent > 1 {
		percent = 1
	}
	filled := int(float64(b.width) * percent)
	empty := b.width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)

	progressStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B6B6B"))

	return progressStyle.Render("⚡ ") +
		barStyle.Render("["+bar+"]") +
		countStyle.Render(fmt.Sprintf(" %d tried, %.0f/s ", p.Attempts, p.Rate())) +
		progressStyle.Render(p.Current)
}

// progressPrinter returns a collide.ProgressFunc that writes one line per call.
func progressPrinter(w io.Writer, hashLength int) collide.ProgressFunc {
	bar := NewProgressBar(hashLength, 0)
	return func(p collide.Progress) {
		_, _ = fmt.Fprintln(w, bar.Render(p))
	}
}
