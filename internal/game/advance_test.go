package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

// inline runs dispatched work on the timer goroutine; tests only touch the
// engine again after Done is closed.
func inline(fn func()) error {
	fn()
	return nil
}

func waitDone(t *testing.T, task *AdvanceTask) {
	t.Helper()
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("advance task did not settle")
	}
}

func revealingEngine(t *testing.T, names ...string) *Engine {
	t.Helper()
	e := newTestEngine(t, names, "A")
	play(t, e, "A")
	if e.Phase() != PhaseRevealing {
		t.Fatalf("Phase() = %v, want revealing", e.Phase())
	}
	return e
}

func TestScheduleAdvanceFires(t *testing.T) {
	e := revealingEngine(t, "A", "B")

	task, err := e.ScheduleAdvance(context.Background(), 10*time.Millisecond, inline)
	if err != nil {
		t.Fatalf("ScheduleAdvance() error: %v", err)
	}
	waitDone(t, task)

	if !task.Fired() {
		t.Error("Fired() = false, want true")
	}
	if e.Phase() != PhaseAwaitingGuess || e.CurrentPlayer().Name != "B" {
		t.Errorf("after auto-advance: phase %v, player %s; want awaiting_guess, B", e.Phase(), e.CurrentPlayer().Name)
	}
	if task.Cancel() {
		t.Error("Cancel() after firing should return false")
	}
}

func TestScheduleAdvanceLastPlayerEndsGame(t *testing.T) {
	e := revealingEngine(t, "A")

	task, err := e.ScheduleAdvance(context.Background(), time.Millisecond, inline)
	if err != nil {
		t.Fatalf("ScheduleAdvance() error: %v", err)
	}
	waitDone(t, task)

	if e.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, want game_over", e.Phase())
	}
}

func TestScheduleAdvanceCancel(t *testing.T) {
	e := revealingEngine(t, "A", "B")

	task, err := e.ScheduleAdvance(context.Background(), 20*time.Millisecond, inline)
	if err != nil {
		t.Fatalf("ScheduleAdvance() error: %v", err)
	}
	if !task.Cancel() {
		t.Fatal("Cancel() = false, want true")
	}
	waitDone(t, task)
	time.Sleep(60 * time.Millisecond)

	if task.Fired() {
		t.Error("cancelled task fired")
	}
	if e.Phase() != PhaseRevealing || e.CurrentPlayer().Name != "A" {
		t.Errorf("cancelled task changed state: phase %v, player %s", e.Phase(), e.CurrentPlayer().Name)
	}
	if task.Cancel() {
		t.Error("second Cancel() should return false")
	}
}

func TestScheduleAdvanceContextCancel(t *testing.T) {
	e := revealingEngine(t, "A", "B")
	ctx, cancel := context.WithCancel(context.Background())

	task, err := e.ScheduleAdvance(ctx, 20*time.Millisecond, inline)
	if err != nil {
		t.Fatalf("ScheduleAdvance() error: %v", err)
	}
	cancel()
	waitDone(t, task)
	time.Sleep(60 * time.Millisecond)

	if task.Fired() {
		t.Error("task fired after context cancel")
	}
	if e.Phase() != PhaseRevealing {
		t.Errorf("Phase() = %v, want revealing", e.Phase())
	}
}

func TestScheduleAdvanceAfterManualAdvanceIsNoop(t *testing.T) {
	e := revealingEngine(t, "A", "B", "C")

	// Hold the dispatched closure so the manual advance happens first.
	held := make(chan func(), 1)
	task, err := e.ScheduleAdvance(context.Background(), time.Millisecond, func(fn func()) error {
		held <- fn
		return nil
	})
	if err != nil {
		t.Fatalf("ScheduleAdvance() error: %v", err)
	}

	if err := e.Advance(context.Background()); err != nil {
		t.Fatalf("manual Advance() error: %v", err)
	}
	play(t, e, "A")

	fn := <-held
	fn()
	waitDone(t, task)

	if e.Phase() != PhaseRevealing || e.CurrentPlayer().Name != "B" {
		t.Errorf("stale task advanced the engine: phase %v, player %s", e.Phase(), e.CurrentPlayer().Name)
	}
}

func TestScheduleAdvanceWrongPhase(t *testing.T) {
	e := newTestEngine(t, []string{"A"}, "A")

	_, err := e.ScheduleAdvance(context.Background(), time.Millisecond, inline)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("ScheduleAdvance() while awaiting guess error = %v, want ErrInvalidTransition", err)
	}

	play(t, e, "A")
	if _, err := e.ScheduleAdvance(context.Background(), time.Millisecond, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("ScheduleAdvance(nil dispatch) error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestScheduleAdvanceDispatchFailureCancels(t *testing.T) {
	e := revealingEngine(t, "A", "B")

	refuse := func(func()) error { return errors.New("queue full") }
	task, err := e.ScheduleAdvance(context.Background(), time.Millisecond, refuse)
	if err != nil {
		t.Fatalf("ScheduleAdvance() error: %v", err)
	}
	waitDone(t, task)

	if task.Fired() {
		t.Error("undispatched task reported as fired")
	}
	if e.Phase() != PhaseRevealing || e.CurrentPlayer().Name != "A" {
		t.Errorf("undispatched task changed state: phase %v, player %s", e.Phase(), e.CurrentPlayer().Name)
	}
}
