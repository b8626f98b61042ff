package battle

import (
	"context"
	"time"
)

// Store persists battle sessions. Save must enforce optimistic
// concurrency on Session.Version and return ErrStaleSession when the
// stored document moved underneath the caller.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	// CancelStale marks sessions inactive for longer than the window as
	// cancelled and returns how many it reaped.
	CancelStale(ctx context.Context, window time.Duration) (int, error)
}
