package notify

import (
	"context"
	"fmt"
	"os/exec"
)

// execCommand is one external program invocation.
type execCommand struct {
	cmd  string
	args []string
}

// SoundNotifier plays a system sound with the first player that works.
type SoundNotifier struct {
	commands []execCommand
	run      func(ctx context.Context, name string, args ...string) error
}

func NewSoundNotifier() *SoundNotifier {
	return &SoundNotifier{commands: platformSounds(), run: runCommand}
}

func (s *SoundNotifier) Send(ctx context.Context, _, _ string) error {
	var lastErr error
	for _, c := range s.commands {
		err := s.run(ctx, c.cmd, c.args...)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return fmt.Errorf("no sound player for this platform")
	}
	return fmt.Errorf("play sound: %w", lastErr)
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
