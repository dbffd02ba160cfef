package notify

import "io"

// Options selects notification sinks.
type Options struct {
	Bell       bool
	BellWriter io.Writer
	Sound      bool
	Desktop    bool
	BarkURL    string
}
