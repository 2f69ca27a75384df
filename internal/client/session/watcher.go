package session

import (
	"context"
	"time"
)

// Change reports an observed write to a watched key. Present is false when
// the key was removed (for the session key that means a logout elsewhere).
type Change struct {
	Key     string
	Value   string
	Present bool
}

// Watch polls the store's per-key revisions every interval and delivers a
// Change whenever another writer touched one of the watched keys. This is
// the cross-process analog of the browser's storage event: consumers must
// re-derive state from the store on receipt rather than trust what they
// cached.
//
// The channel is closed when ctx is cancelled. There is no transactional
// guarantee across processes; two writers racing on the same key leave
// either outcome.
func (s *Store) Watch(ctx context.Context, interval time.Duration, keys ...string) <-chan Change {
	ch := make(chan Change, 8)

	// Snapshot revisions before returning so writes that land after Watch
	// is called are never missed.
	last, err := s.Revisions(ctx, keys...)
	if err != nil {
		s.log.Warn(ctx, "session watch: initial revision read failed", "error", err)
		last = map[string]int64{}
	}

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			current, err := s.Revisions(ctx, keys...)
			if err != nil {
				s.log.Warn(ctx, "session watch: revision read failed", "error", err)
				continue
			}

			for _, key := range keys {
				if current[key] == last[key] {
					continue
				}

				value, present, err := s.Get(ctx, key)
				if err != nil {
					s.log.Warn(ctx, "session watch: value read failed", "key", key, "error", err)
					continue
				}

				select {
				case ch <- Change{Key: key, Value: value, Present: present}:
				case <-ctx.Done():
					return
				}
			}
			last = current
		}
	}()

	return ch
}
