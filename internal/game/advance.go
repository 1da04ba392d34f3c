package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRevealDelay is how long a reveal stays up before the next turn starts on its own.
const DefaultRevealDelay = 2 * time.Second

// Dispatcher hands fn to the goroutine that owns the engine. It returns an
// error if fn will not run; the task is then cancelled.
type Dispatcher func(fn func()) error

// AdvanceTask is a deferred Advance that can be revoked until it fires.
type AdvanceTask struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopCtx func() bool
	settled bool
	fired   bool
	done    chan struct{}
}

// ScheduleAdvance arranges for Advance to run after delay. When the timer
// expires the advance is handed to dispatch; it does nothing if the task was
// cancelled, ctx is done, or the reveal it was scheduled for is already over
// (e.g. the player advanced by hand). Cancelling ctx cancels the task.
func (e *Engine) ScheduleAdvance(ctx context.Context, delay time.Duration, dispatch Dispatcher) (*AdvanceTask, error) {
	if e.phase != PhaseRevealing {
		return nil, &TransitionError{Op: "schedule advance", Phase: e.phase}
	}
	if dispatch == nil {
		return nil, fmt.Errorf("%w: nil dispatcher", ErrInvalidConfiguration)
	}

	reveal := e.reveals
	task := &AdvanceTask{done: make(chan struct{})}

	task.mu.Lock()
	defer task.mu.Unlock()
	task.timer = time.AfterFunc(delay, func() {
		err := dispatch(func() {
			if ctx.Err() != nil {
				task.Cancel()
				return
			}
			if !task.claim() {
				return
			}
			defer task.finish()
			if e.reveals != reveal || e.phase != PhaseRevealing {
				return
			}
			if err := e.Advance(ctx); err != nil {
				zerolog.Ctx(ctx).Error().Err(err).Msg("auto-advance failed")
			}
		})
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("auto-advance not dispatched")
			task.Cancel()
		}
	})
	task.stopCtx = context.AfterFunc(ctx, func() {
		task.Cancel()
	})
	return task, nil
}

// claim marks the task as fired. It returns false if it already settled.
func (t *AdvanceTask) claim() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.settled {
		return false
	}
	t.settled = true
	t.fired = true
	return true
}

func (t *AdvanceTask) finish() {
	t.stopCtx()
	close(t.done)
}

// Cancel revokes the task. It returns false if the task already fired or was cancelled.
func (t *AdvanceTask) Cancel() bool {
	t.mu.Lock()
	if t.settled {
		t.mu.Unlock()
		return false
	}
	t.settled = true
	t.mu.Unlock()

	t.timer.Stop()
	t.stopCtx()
	close(t.done)
	return true
}

// Done is closed once the task has fired or been cancelled.
func (t *AdvanceTask) Done() <-chan struct{} {
	return t.done
}

// Fired reports whether the timer ran the advance step.
func (t *AdvanceTask) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}
