package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHooksRunInReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []string
	h.OnShutdown(func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	h.OnShutdown(func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	if err := h.Trigger(); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("hook order = %v, want [second first]", order)
	}

	select {
	case <-h.Done():
	default:
		t.Error("done channel not closed after shutdown")
	}
}

func TestHookErrorReturned(t *testing.T) {
	h := NewHandler(time.Second)

	wantErr := errors.New("flush failed")
	h.OnShutdown(func(context.Context) error { return wantErr })
	h.OnShutdown(func(context.Context) error { return nil })

	if err := h.Trigger(); !errors.Is(err, wantErr) {
		t.Errorf("trigger error = %v, want %v", err, wantErr)
	}
}

func TestHookReceivesDeadline(t *testing.T) {
	h := NewHandler(50 * time.Millisecond)

	var hasDeadline bool
	h.OnShutdown(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})

	if err := h.Trigger(); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if !hasDeadline {
		t.Error("hook context missing deadline")
	}
}

func TestTriggerRunsHooksOnce(t *testing.T) {
	h := NewHandler(time.Second)

	var calls int
	h.OnShutdown(func(context.Context) error {
		calls++
		return errors.New("flush failed")
	})

	first := h.Trigger()
	second := h.Trigger()

	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
	if first == nil || second == nil || first.Error() != second.Error() {
		t.Errorf("trigger results differ: %v vs %v", first, second)
	}
}
