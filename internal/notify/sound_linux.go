//go:build linux

package notify

// platformSounds tries PulseAudio, then ALSA.
func platformSounds() []execCommand {
	return []execCommand{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
	}
}

// platformDesktop uses the freedesktop notification daemon.
func platformDesktop(title, body string) []execCommand {
	return []execCommand{
		{"notify-send", []string{"--app-name", Title, title, body}},
	}
}
