//go:build darwin

package notify

import "fmt"

func platformSounds() []execCommand {
	return []execCommand{
		{"afplay", []string{"/System/Library/Sounds/Glass.aiff"}},
		{"afplay", []string{"/System/Library/Sounds/Tink.aiff"}},
	}
}

func platformDesktop(title, body string) []execCommand {
	script := fmt.Sprintf("display notification %s with title %s", appleScriptQuote(body), appleScriptQuote(title))
	return []execCommand{
		{"osascript", []string{"-e", script}},
	}
}
