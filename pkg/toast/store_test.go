package toast_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/broadcast"
	"github.com/dmitrymomot/storekit/pkg/clock"
	"github.com/dmitrymomot/storekit/pkg/toast"
)

var start = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T, opts ...toast.StoreOption) (*toast.Store, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(start)
	s := toast.NewStore(append([]toast.StoreOption{toast.WithScheduler(clk)}, opts...)...)
	t.Cleanup(func() { _ = s.Close() })
	return s, clk
}

func add(t *testing.T, s *toast.Store, title string, d *time.Duration) string {
	t.Helper()
	id, err := s.Add(toast.Payload{Kind: toast.KindInfo, Title: title, Duration: d})
	require.NoError(t, err)
	return id
}

func titles(s *toast.Store) []string {
	var out []string
	for _, n := range s.List() {
		out = append(out, n.Title)
	}
	return out
}

func receive(t *testing.T, sub broadcast.Subscriber[[]toast.Notification]) []toast.Notification {
	t.Helper()
	select {
	case msg, ok := <-sub.Receive(context.Background()):
		require.True(t, ok, "subscription closed")
		return msg.Data
	case <-time.After(time.Second):
		require.FailNow(t, "no snapshot received")
		return nil
	}
}

func TestStore_Add(t *testing.T) {
	t.Run("default duration expires after 5s", func(t *testing.T) {
		s, clk := newStore(t)

		id, err := s.Add(toast.Payload{Kind: toast.KindSuccess, Title: "Thành công", Message: "Đã lưu"})
		require.NoError(t, err)
		assert.Regexp(t, `^id_[0-9a-z]{9}_[0-9a-z]+$`, id)

		n, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, toast.KindSuccess, n.Kind)
		assert.Equal(t, "Đã lưu", n.Message)
		assert.Equal(t, toast.DefaultDuration, n.Duration)
		assert.Equal(t, start, n.CreatedAt)

		expires, ok := n.ExpiresAt()
		require.True(t, ok)
		assert.Equal(t, start.Add(5*time.Second), expires)

		clk.Advance(4999 * time.Millisecond)
		assert.Equal(t, 1, s.Len())

		clk.Advance(time.Millisecond)
		assert.Zero(t, s.Len())
		assert.Zero(t, clk.Pending())
	})

	t.Run("explicit duration", func(t *testing.T) {
		s, clk := newStore(t)
		add(t, s, "short", toast.Duration(time.Second))

		clk.Advance(time.Second)
		assert.Zero(t, s.Len())
	})

	t.Run("zero and negative durations persist", func(t *testing.T) {
		s, clk := newStore(t)
		zero := add(t, s, "zero", toast.Duration(0))
		neg := add(t, s, "negative", toast.Duration(-time.Second))

		assert.Zero(t, clk.Pending())
		clk.Advance(time.Hour)
		assert.Equal(t, []string{"zero", "negative"}, titles(s))

		n, _ := s.Get(zero)
		assert.True(t, n.Persistent())
		_, ok := n.ExpiresAt()
		assert.False(t, ok)

		s.Remove(neg)
		assert.Equal(t, []string{"zero"}, titles(s))
	})

	t.Run("store default duration option", func(t *testing.T) {
		s, clk := newStore(t, toast.WithDefaultDuration(0))
		add(t, s, "sticky", nil)

		clk.Advance(time.Minute)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		s, _ := newStore(t)

		_, err := s.Add(toast.Payload{Kind: "fatal", Title: "x"})
		assert.ErrorIs(t, err, toast.ErrInvalidKind)

		_, err = s.Add(toast.Payload{Kind: toast.KindInfo, Title: "  "})
		assert.ErrorIs(t, err, toast.ErrTitleRequired)

		assert.Zero(t, s.Len())
	})

	t.Run("ids stay unique when the generator repeats", func(t *testing.T) {
		s, _ := newStore(t, toast.WithIDGenerator(func() string { return "fixed" }))

		first := add(t, s, "a", nil)
		second := add(t, s, "b", nil)

		assert.Equal(t, "fixed", first)
		assert.NotEqual(t, first, second)
	})

	t.Run("removed ids are not handed out again", func(t *testing.T) {
		s, _ := newStore(t, toast.WithIDGenerator(func() string { return "fixed" }))

		first := add(t, s, "a", nil)
		s.Remove(first)
		second := add(t, s, "b", nil)
		assert.NotEqual(t, first, second)

		s.Clear()
		third := add(t, s, "c", nil)
		assert.NotEqual(t, first, third)
		assert.NotEqual(t, second, third)
	})

	t.Run("stale expiry does not remove a later entry", func(t *testing.T) {
		s, clk := newStore(t, toast.WithIDGenerator(func() string { return "fixed" }))

		first := add(t, s, "a", toast.Duration(time.Second))
		s.Remove(first)
		second := add(t, s, "b", nil)

		clk.Advance(time.Second)
		_, ok := s.Get(second)
		assert.True(t, ok)
		assert.Equal(t, []string{"b"}, titles(s))
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		s, _ := newStore(t)
		add(t, s, "A", nil)
		b := add(t, s, "B", nil)
		add(t, s, "C", nil)

		s.Remove(b)
		assert.Equal(t, []string{"A", "C"}, titles(s))
	})

	t.Run("is idempotent", func(t *testing.T) {
		s, _ := newStore(t)
		a := add(t, s, "A", nil)
		add(t, s, "B", nil)

		s.Remove(a)
		after := s.List()
		s.Remove(a)
		s.Remove("unknown")

		assert.Equal(t, after, s.List())
	})

	t.Run("cancels the entry timer", func(t *testing.T) {
		s, clk := newStore(t)
		a := add(t, s, "A", nil)
		add(t, s, "B", nil)
		require.Equal(t, 2, clk.Pending())

		s.Remove(a)
		assert.Equal(t, 1, clk.Pending())
	})

	t.Run("timer after manual removal is a no-op", func(t *testing.T) {
		s, clk := newStore(t)
		a := add(t, s, "A", toast.Duration(time.Second))
		add(t, s, "B", toast.Duration(0))

		s.Remove(a)
		clk.Advance(2 * time.Second)
		assert.Equal(t, []string{"B"}, titles(s))
	})
}

func TestStore_Clear(t *testing.T) {
	s, clk := newStore(t)
	add(t, s, "A", nil)
	add(t, s, "B", toast.Duration(0))
	add(t, s, "C", toast.Duration(time.Second))

	s.Clear()
	assert.Empty(t, s.List())
	assert.Zero(t, clk.Pending())

	clk.Advance(10 * time.Second)
	assert.Zero(t, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())

	add(t, s, "D", nil)
	assert.Equal(t, []string{"D"}, titles(s))
}

func TestStore_ListIsACopy(t *testing.T) {
	s, _ := newStore(t)
	add(t, s, "A", nil)

	list := s.List()
	list[0].Title = "mutated"

	assert.Equal(t, []string{"A"}, titles(s))
	assert.NotNil(t, toast.NewStore().List(), "empty list is not nil")
}

func TestStore_Subscribe(t *testing.T) {
	s, clk := newStore(t)
	add(t, s, "existing", toast.Duration(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := s.Subscribe(ctx)

	snap := receive(t, sub)
	require.Len(t, snap, 1)
	assert.Equal(t, "existing", snap[0].Title)

	id := add(t, s, "new", toast.Duration(time.Second))
	snap = receive(t, sub)
	require.Len(t, snap, 2)
	assert.Equal(t, id, snap[1].ID)

	clk.Advance(time.Second)
	snap = receive(t, sub)
	require.Len(t, snap, 1)
	assert.Equal(t, "existing", snap[0].Title)

	s.Clear()
	assert.Empty(t, receive(t, sub))
}

func TestStore_Close(t *testing.T) {
	clk := clock.NewManual(start)
	s := toast.NewStore(toast.WithScheduler(clk))
	add(t, s, "A", nil)

	sub := s.Subscribe(context.Background())
	receive(t, sub)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.Zero(t, clk.Pending())
	assert.Equal(t, []string{"A"}, titles(s))

	_, ok := <-sub.Receive(context.Background())
	assert.False(t, ok)

	_, err := s.Add(toast.Payload{Kind: toast.KindInfo, Title: "late"})
	assert.ErrorIs(t, err, toast.ErrStoreClosed)
}

func TestStore_ConcurrentRealTimers(t *testing.T) {
	s := toast.NewStore(toast.WithDefaultDuration(10 * time.Millisecond))
	defer s.Close()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 10 {
				id, err := s.Add(toast.Payload{Kind: toast.KindInfo, Title: fmt.Sprintf("%d-%d", i, j)})
				if err == nil && j%2 == 0 {
					s.Remove(id)
					s.Remove(id)
				}
			}
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, 2*time.Second, 5*time.Millisecond)
}
