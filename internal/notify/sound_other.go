//go:build !darwin && !linux

package notify

func platformSounds() []execCommand {
	return nil
}

func platformDesktop(string, string) []execCommand {
	return nil
}
