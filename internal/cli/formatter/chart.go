package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pogodoro/internal/domain"
)

// RenderBarChart draws one horizontal bar per day, scaled so the busiest
// day spans width cells.
func RenderBarChart(counts []domain.DayCount, width int) string {
	if len(counts) == 0 {
		return ""
	}
	if width < 1 {
		width = 1
	}
	peak := 0
	for _, c := range counts {
		peak = max(peak, c.Count)
	}

	var b strings.Builder
	for _, c := range counts {
		n := 0
		if peak > 0 {
			n = c.Count * width / peak
		}
		if c.Count > 0 && n == 0 {
			n = 1
		}
		bar := StyleRed.Render(strings.Repeat(filledBlock, n))
		count := Dim("·")
		if c.Count > 0 {
			count = StyleFg.Render(fmt.Sprintf("%d", c.Count))
		}
		fmt.Fprintf(&b, "%s │%s %s\n", Dim(c.Day.Format("Jan 02")), bar, count)
	}
	return b.String()
}
