package metric

import (
	"time"

	"github.com/t1amat9409/roomstore-go/internal/storage/snapshot"
)

// Saver matches the store's persistence dependency.
type Saver interface {
	Save(state *snapshot.State) error
}

// instrumentedSaver wraps a Saver with save counters and latency.
type instrumentedSaver struct {
	next Saver
	reg  *Registry
}

// WrapSaver returns a Saver that records every save attempt in the
// registry before delegating to next.
func (r *Registry) WrapSaver(next Saver) Saver {
	return &instrumentedSaver{next: next, reg: r}
}

func (s *instrumentedSaver) Save(state *snapshot.State) error {
	start := time.Now()
	err := s.next.Save(state)
	s.reg.SnapshotDuration.Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	s.reg.SnapshotSaves.WithLabelValues(status).Inc()
	return err
}
