package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yt2reader/internal/domain"
)

var (
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	uncheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
)

// FormatItemLine formats one video as a single display line:
// padded title followed by the URL.
func FormatItemLine(item domain.Item, maxTitleLen int) string {
	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	titleFmt := fmt.Sprintf("%%-%ds", maxTitleLen)
	return fmt.Sprintf(titleFmt+"  %s", title, item.URL)
}

// renderProgressBar creates a text progress bar like [=====>    ]
func renderProgressBar(current, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}

	var bar strings.Builder
	bar.WriteString("[")

	switch {
	case current >= total:
		bar.WriteString(strings.Repeat("=", width))
	case current <= 0:
		bar.WriteString(strings.Repeat(" ", width))
	default:
		equals := current * width / total
		if equals > width-1 {
			equals = width - 1
		}
		bar.WriteString(strings.Repeat("=", equals))
		bar.WriteString(">")
		bar.WriteString(strings.Repeat(" ", width-equals-1))
	}

	bar.WriteString("]")
	return bar.String()
}
