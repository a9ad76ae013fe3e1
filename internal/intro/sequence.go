// Package intro drives the timed phases of the splash sequence shown
// before the storefront appears.
package intro

import (
	"context"
	"time"
)

// Phase names one stage of the sequence.
type Phase string

const (
	PhaseLogo     Phase = "logo"
	PhaseBurst    Phase = "burst"
	PhaseFade     Phase = "fade"
	PhaseComplete Phase = "complete"
)

// Step is a phase and how long it lasts before the next one starts.
type Step struct {
	Phase    Phase         `json:"phase"`
	Duration time.Duration `json:"-"`
}

// Event is emitted when a phase starts.
type Event struct {
	Phase    Phase `json:"phase"`
	OffsetMS int64 `json:"offsetMs"`
	Index    int   `json:"index"`
}

// DefaultSteps is the splash timing: logo for 2.5s, burst for 1.5s,
// fade for 0.5s, then complete.
func DefaultSteps() []Step {
	return []Step{
		{Phase: PhaseLogo, Duration: 2500 * time.Millisecond},
		{Phase: PhaseBurst, Duration: 1500 * time.Millisecond},
		{Phase: PhaseFade, Duration: 500 * time.Millisecond},
		{Phase: PhaseComplete},
	}
}

// Run emits every step in order, waiting each step's duration before
// moving on. It returns ctx.Err() if ctx ends first; emit errors stop
// the run and are returned as is.
func Run(ctx context.Context, steps []Step, emit func(Event) error) error {
	var offset time.Duration
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(Event{Phase: step.Phase, OffsetMS: offset.Milliseconds(), Index: i}); err != nil {
			return err
		}
		if i == len(steps)-1 || step.Duration <= 0 {
			continue
		}

		timer := time.NewTimer(step.Duration)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		offset += step.Duration
	}
	return nil
}

// Total is the time from the first phase to the last.
func Total(steps []Step) time.Duration {
	var d time.Duration
	for i, s := range steps {
		if i == len(steps)-1 {
			break
		}
		d += s.Duration
	}
	return d
}

// Scale returns a copy of steps with every duration multiplied by f.
func Scale(steps []Step, f float64) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = Step{Phase: s.Phase, Duration: time.Duration(float64(s.Duration) * f)}
	}
	return out
}
