package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{1500, "25m"},
		{90, "1m30s"},
		{45, "45s"},
		{3600, "1h"},
		{3900, "1h5m"},
		{3661, "1h1m1s"},
		{0, "0s"},
		{-3, "0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.secs), "secs=%d", tt.secs)
	}
	assert.Equal(t, "5m", FormatDuration(5*time.Minute+300*time.Millisecond))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "25:00", FormatCountdown(25*time.Minute))
	assert.Equal(t, "00:01", FormatCountdown(400*time.Millisecond), "partial seconds round up")
	assert.Equal(t, "00:00", FormatCountdown(0))
	assert.Equal(t, "00:00", FormatCountdown(-time.Second))
	assert.Equal(t, "1:05:09", FormatCountdown(time.Hour+5*time.Minute+9*time.Second))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.NotEmpty(t, HumanTimestampFrom(now.Add(-72*time.Hour), now))
}

func TestRenderBox(t *testing.T) {
	out := StripANSI(RenderBox("timer", "25:00"))
	assert.Contains(t, out, "TIMER")
	assert.Contains(t, out, "25:00")
	assert.True(t, strings.HasPrefix(out, "╭"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := StripANSI(RenderTable(
		[]string{"ID", "TASK"},
		[][]string{{"1", "short"}, {"12", "a longer one"}},
		0,
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "ID  TASK", lines[0])
	assert.Equal(t, " 1  short", lines[2])
	assert.Equal(t, "12  a longer one", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderProgress(t *testing.T) {
	out := StripANSI(RenderProgress(0.5, 10, StyleRed))
	assert.Equal(t, "[█████░░░░░]  50%", out)

	assert.Equal(t, "[░░░░]   0%", StripANSI(RenderProgress(-1, 4, StyleRed)))
	assert.Equal(t, "[████] 100%", StripANSI(RenderProgress(3, 4, StyleRed)))
}

func TestRenderSetDots(t *testing.T) {
	assert.Equal(t, "●●○○", StripANSI(RenderSetDots(2, 4)))
	assert.Equal(t, "●●●●", StripANSI(RenderSetDots(9, 4)))
	assert.Empty(t, RenderSetDots(1, 0))
}
