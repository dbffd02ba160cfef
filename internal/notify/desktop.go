package notify

import (
	"context"
	"fmt"
	"strings"
)

// DesktopNotifier shows a desktop notification through the platform's
// command-line notifier (notify-send, osascript).
type DesktopNotifier struct {
	commands func(title, body string) []execCommand
	run      func(ctx context.Context, name string, args ...string) error
}

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{commands: platformDesktop, run: runCommand}
}

func (d *DesktopNotifier) Send(ctx context.Context, title, body string) error {
	cmds := d.commands(title, body)
	if len(cmds) == 0 {
		return fmt.Errorf("no desktop notifier for this platform")
	}
	var lastErr error
	for _, c := range cmds {
		if lastErr = d.run(ctx, c.cmd, c.args...); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("desktop notification: %w", lastErr)
}

// appleScriptQuote renders s as an AppleScript string literal.
func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
