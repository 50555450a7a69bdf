package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"festgate/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory cache.Service for store tests.
type fakeCache struct {
	data   map[string][]byte
	setErr error
	delErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) bool {
	_, ok := f.data[key]
	return ok
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func TestStore_PutGet(t *testing.T) {
	fc := newFakeCache()
	store := NewStore(fc, time.Hour)
	ctx := context.Background()

	ticket := &PendingTicket{
		TicketID: "TKT_1733400000000",
		TeamName: "Bit Shifters",
		TeamSize: 1,
		Status:   StatusAwaitingPayment,
	}

	require.NoError(t, store.Put(ctx, "session-a", ticket))

	got, err := store.Get(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, ticket, got)
}

func TestStore_GetMissingSession(t *testing.T) {
	store := NewStore(newFakeCache(), time.Hour)

	_, err := store.Get(context.Background(), "never-registered")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PutReplacesPrevious(t *testing.T) {
	fc := newFakeCache()
	store := NewStore(fc, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-a", &PendingTicket{TicketID: "TKT_1"}))
	require.NoError(t, store.Put(ctx, "session-a", &PendingTicket{TicketID: "TKT_2"}))

	got, err := store.Get(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, "TKT_2", got.TicketID)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	fc := newFakeCache()
	store := NewStore(fc, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-a", &PendingTicket{TicketID: "TKT_1"}))

	_, err := store.Get(ctx, "session-b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	fc := newFakeCache()
	store := NewStore(fc, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-a", &PendingTicket{TicketID: "TKT_1"}))
	require.NoError(t, store.Delete(ctx, "session-a"))

	_, err := store.Get(ctx, "session-a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PutPropagatesCacheError(t *testing.T) {
	fc := newFakeCache()
	fc.setErr = errors.New("redis down")
	store := NewStore(fc, time.Hour)

	err := store.Put(context.Background(), "session-a", &PendingTicket{TicketID: "TKT_1"})

	assert.Error(t, err)
}
