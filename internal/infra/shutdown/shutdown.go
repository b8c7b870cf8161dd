// Package shutdown coordinates ordered teardown of the server's
// long-running components.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Hook releases one component. It receives a context carrying the
// teardown deadline.
type Hook func(context.Context) error

// Handler collects hooks and runs them, most recently registered
// first, once a termination signal arrives or Trigger is called.
type Handler struct {
	timeout time.Duration

	mu    sync.Mutex
	hooks []Hook

	once sync.Once
	done chan struct{}
	err  error
}

// NewHandler returns a Handler whose hooks share the given deadline.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{timeout: timeout, done: make(chan struct{})}
}

// OnShutdown adds a hook. Hooks run in reverse registration order, so
// register foundations first and outer layers last.
func (h *Handler) OnShutdown(hook Hook) {
	h.mu.Lock()
	h.hooks = append(h.hooks, hook)
	h.mu.Unlock()
}

// Wait blocks until SIGINT or SIGTERM, then runs the hooks.
func (h *Handler) Wait() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return h.Trigger()
}

// Trigger runs the hooks without waiting for a signal. The last hook
// error wins. Subsequent calls return the first run's result.
func (h *Handler) Trigger() error {
	h.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		h.mu.Lock()
		hooks := make([]Hook, len(h.hooks))
		copy(hooks, h.hooks)
		h.mu.Unlock()

		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i](ctx); err != nil {
				h.err = err
			}
		}
		close(h.done)
	})
	return h.err
}

// Done closes once the hooks have finished.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
