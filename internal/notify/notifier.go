package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/pomodoro"
	"golang.org/x/sync/errgroup"
)

// Title is used for every notification.
const Title = "pogodoro"

// sendTimeout bounds one asynchronous fan-out.
const sendTimeout = 15 * time.Second

// Notifier defines the interface for sending notifications.
type Notifier interface {
	Send(ctx context.Context, title, body string) error
}

// MultiNotifier sends to several notifiers concurrently.
type MultiNotifier struct {
	notifiers []Notifier
}

func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	var kept []Notifier
	for _, n := range notifiers {
		if n != nil {
			kept = append(kept, n)
		}
	}
	return &MultiNotifier{notifiers: kept}
}

// Send delivers to every notifier. A failing notifier does not stop the
// others; the first error is returned.
func (m *MultiNotifier) Send(ctx context.Context, title, body string) error {
	var g errgroup.Group
	for _, n := range m.notifiers {
		g.Go(func() error {
			return n.Send(ctx, title, body)
		})
	}
	return g.Wait()
}

// Len reports how many notifiers are combined.
func (m *MultiNotifier) Len() int { return len(m.notifiers) }

// NoOpNotifier does nothing.
type NoOpNotifier struct{}

func (NoOpNotifier) Send(context.Context, string, string) error { return nil }

// Message is the notification body announcing the phase just entered.
func Message(p domain.Phase) string {
	switch p {
	case domain.PhaseShortBreak:
		return "short break time! alright man"
	case domain.PhaseLongBreak:
		return "ALRIGHT! long break time man"
	default:
		return "time to work!"
	}
}

// PhaseListener adapts a Notifier to a controller listener. Delivery runs
// in the background so a slow sink never stalls the timer; failures are
// only logged.
func PhaseListener(n Notifier, logger *slog.Logger) pomodoro.PhaseListener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(ctx context.Context, ev pomodoro.PhaseChanged) {
		body := Message(ev.To)
		go func() {
			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
			defer cancel()
			if err := n.Send(sendCtx, Title, body); err != nil {
				logger.Warn("notification failed", "session_id", ev.SessionID, "phase", ev.To, "error", err)
			}
		}()
	}
}

// FromConfig builds the notifier set selected by the user.
func FromConfig(cfg Options) (Notifier, error) {
	var ns []Notifier
	if cfg.Bell {
		ns = append(ns, NewBellNotifier(cfg.BellWriter))
	}
	if cfg.Sound {
		ns = append(ns, NewSoundNotifier())
	}
	if cfg.Desktop {
		ns = append(ns, NewDesktopNotifier())
	}
	if cfg.BarkURL != "" {
		bark, err := NewBarkNotifier(cfg.BarkURL)
		if err != nil {
			return nil, err
		}
		ns = append(ns, bark)
	}
	if len(ns) == 0 {
		return NoOpNotifier{}, nil
	}
	return NewMultiNotifier(ns...), nil
}
