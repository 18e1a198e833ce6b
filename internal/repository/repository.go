package repository

import (
	"context"
	"time"
)

// Options configure store behavior. The zero value (no latency, restrict
// deletes) is what tests use; main wires the values from config.
type Options struct {
	// Latency is an artificial per-operation delay emulating network latency
	// for UI development. Zero disables it.
	Latency time.Duration
	// CascadeDelete removes the whole subtree when a region is deleted.
	// When false, deleting a region that still has dependants is refused.
	CascadeDelete bool
}

// wait blocks for the configured artificial latency. Cancelling the context
// aborts the wait and the operation never touches store state.
func (o Options) wait(ctx context.Context) error {
	if o.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(o.Latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sequence hands out monotonically increasing ids. It must only be advanced
// under the owning store's lock, which makes id assignment atomic with the
// record insertion: two interleaved creates can never observe the same id.
type sequence struct {
	last int
}

// bump raises the sequence floor to at least id. Used when loading seed data.
func (s *sequence) bump(id int) {
	if id > s.last {
		s.last = id
	}
}

// next returns the next id.
func (s *sequence) next() int {
	s.last++
	return s.last
}

const dateLayout = "2006-01-02"

// parseDate parses a calendar date in YYYY-MM-DD form.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// dateAfter reports whether date a sorts after date b. Unparseable dates sort
// last so malformed seed rows cannot shadow real ones.
func dateAfter(a, b string) bool {
	ta, errA := parseDate(a)
	tb, errB := parseDate(b)
	if errA != nil {
		return false
	}
	if errB != nil {
		return true
	}
	return ta.After(tb)
}
