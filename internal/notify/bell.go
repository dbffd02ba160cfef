package notify

import (
	"context"
	"io"
	"os"
	"sync"
)

// BellNotifier rings the terminal bell.
type BellNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellNotifier writes the bell to w, or to stderr when w is nil so the
// alert does not interleave with rendered output.
func NewBellNotifier(w io.Writer) *BellNotifier {
	if w == nil {
		w = os.Stderr
	}
	return &BellNotifier{w: w}
}

func (b *BellNotifier) Send(context.Context, string, string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}
