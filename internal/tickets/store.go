package tickets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"festgate/internal/shared/constants"
	"festgate/pkg/cache"
)

// ErrNotFound is returned when a session has no pending ticket (never
// registered, already confirmed, or the session TTL expired).
var ErrNotFound = errors.New("no pending ticket for session")

// Store keeps at most one PendingTicket per session, TTL-bounded so
// abandoned registrations age out on their own. Access is disjoint in time:
// the registration flow writes, the confirmation flow reads and deletes.
type Store struct {
	cache cache.Service
	ttl   time.Duration
}

func NewStore(cacheService cache.Service, ttl time.Duration) *Store {
	return &Store{
		cache: cacheService,
		ttl:   ttl,
	}
}

// Put stores the pending ticket for a session, replacing any previous one.
// A replaced ticket is the resubmission path: the user went back and
// submitted the form again.
func (s *Store) Put(ctx context.Context, sessionID string, ticket *PendingTicket) error {
	key := constants.BuildPendingTicketKey(sessionID)
	if err := s.cache.Set(ctx, key, ticket, s.ttl); err != nil {
		return fmt.Errorf("store pending ticket: %w", err)
	}
	return nil
}

// Get loads the session's pending ticket.
func (s *Store) Get(ctx context.Context, sessionID string) (*PendingTicket, error) {
	key := constants.BuildPendingTicketKey(sessionID)

	var ticket PendingTicket
	if err := s.cache.Get(ctx, key, &ticket); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load pending ticket: %w", err)
	}
	return &ticket, nil
}

// Delete removes the session's pending ticket. Removing an absent key is
// not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	key := constants.BuildPendingTicketKey(sessionID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete pending ticket: %w", err)
	}
	return nil
}
