package pomodoro

import (
	"fmt"

	"github.com/alexanderramin/pogodoro/internal/domain"
)

// Transition is the outcome of one phase change of a Cycle.
type Transition struct {
	From     domain.Phase
	To       domain.Phase
	Credited bool
	Skipped  bool
}

// Cycle sequences work and break phases. Every break is followed by work
// and every work phase by a break; after interval credited work phases the
// break is a long one.
type Cycle struct {
	phase          domain.Phase
	completedInSet int
	interval       int
	creditOnSkip   bool
}

// NewCycle returns a cycle in the work phase with an empty set.
func NewCycle(interval int, creditOnSkip bool) (*Cycle, error) {
	if interval < 1 {
		return nil, fmt.Errorf("%w: long break interval must be at least 1, got %d", domain.ErrInvalidInput, interval)
	}
	return &Cycle{
		phase:        domain.PhaseWork,
		interval:     interval,
		creditOnSkip: creditOnSkip,
	}, nil
}

func (c *Cycle) Phase() domain.Phase { return c.phase }

// CompletedInSet is the number of credited work phases since the last long break.
func (c *Cycle) CompletedInSet() int { return c.completedInSet }

func (c *Cycle) Interval() int { return c.interval }

// Expire handles the current phase's clock reaching zero. Leaving a work
// phase this way always credits a pomodoro.
func (c *Cycle) Expire() Transition {
	return c.advance(true, false)
}

// Skip ends the current phase early. It credits a work phase only when the
// cycle was built with creditOnSkip.
func (c *Cycle) Skip() Transition {
	return c.advance(c.creditOnSkip, true)
}

func (c *Cycle) advance(credit, skipped bool) Transition {
	t := Transition{From: c.phase, Skipped: skipped}
	switch c.phase {
	case domain.PhaseWork:
		c.phase = domain.PhaseShortBreak
		if credit {
			t.Credited = true
			c.completedInSet++
			if c.completedInSet%c.interval == 0 {
				c.phase = domain.PhaseLongBreak
			}
		}
	case domain.PhaseLongBreak:
		c.completedInSet = 0
		c.phase = domain.PhaseWork
	default:
		c.phase = domain.PhaseWork
	}
	t.To = c.phase
	return t
}
