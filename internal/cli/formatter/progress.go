package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45% in the given
// style. Values outside [0,1] are clamped.
func RenderProgress(pct float64, width int, style lipgloss.Style) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := style.Render(strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty))

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", bar, pctStr)
}

// RenderSetDots shows progress through a set of pomodoros, e.g. ●●○○.
func RenderSetDots(done, total int) string {
	if total < 1 {
		return ""
	}
	if done > total {
		done = total
	}
	if done < 0 {
		done = 0
	}
	return StyleRed.Render(strings.Repeat("●", done)) + StyleDim.Render(strings.Repeat("○", total-done))
}
