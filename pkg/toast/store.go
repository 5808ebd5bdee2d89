package toast

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/storekit/pkg/broadcast"
	"github.com/dmitrymomot/storekit/pkg/clock"
	"github.com/dmitrymomot/storekit/pkg/helpers"
	"github.com/dmitrymomot/storekit/pkg/logger"
)

const defaultBufferSize = 16

// Store owns the visible notifications and their expiry timers.
// All methods are safe for concurrent use.
type Store struct {
	items   []Notification
	timers  map[string]clock.Timer
	retired map[string]struct{}
	closed  bool
	mu     sync.Mutex

	scheduler       clock.Scheduler
	newID           func() string
	defaultDuration time.Duration
	bufferSize      int
	logger          *slog.Logger
	feed            *broadcast.MemoryBroadcaster[[]Notification]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithScheduler sets the timer facility. Defaults to clock.Real().
func WithScheduler(s clock.Scheduler) StoreOption {
	return func(st *Store) {
		if s != nil {
			st.scheduler = s
		}
	}
}

// WithIDGenerator replaces helpers.GenerateID as the id source.
func WithIDGenerator(fn func() string) StoreOption {
	return func(st *Store) {
		if fn != nil {
			st.newID = fn
		}
	}
}

// WithDefaultDuration overrides DefaultDuration for payloads without a duration.
func WithDefaultDuration(d time.Duration) StoreOption {
	return func(st *Store) {
		st.defaultDuration = d
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) StoreOption {
	return func(st *Store) {
		if l != nil {
			st.logger = l
		}
	}
}

// WithBufferSize sets how many snapshots a slow subscriber may lag behind
// before older ones are dropped.
func WithBufferSize(n int) StoreOption {
	return func(st *Store) {
		if n > 0 {
			st.bufferSize = n
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		timers:          make(map[string]clock.Timer),
		retired:         make(map[string]struct{}),
		scheduler:       clock.Real(),
		newID:           helpers.GenerateID,
		defaultDuration: DefaultDuration,
		bufferSize:      defaultBufferSize,
		logger:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(logger.Component("toast.store"))
	s.feed = broadcast.NewMemoryBroadcaster(s.bufferSize, broadcast.WithReplay[[]Notification]())
	s.publishLocked()

	return s
}

// Add appends a notification built from p and returns its id. The entry is
// visible to readers as soon as Add returns. Add fails only for an invalid
// kind, an empty title or a closed store.
func (s *Store) Add(p Payload) (string, error) {
	if !p.Kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, p.Kind)
	}
	if strings.TrimSpace(p.Title) == "" {
		return "", ErrTitleRequired
	}

	d := s.defaultDuration
	if p.Duration != nil {
		d = *p.Duration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	n := Notification{
		ID:        s.uniqueIDLocked(),
		Kind:      p.Kind,
		Title:     p.Title,
		Message:   p.Message,
		Duration:  d,
		CreatedAt: s.scheduler.Now(),
	}
	s.items = append(s.items, n)

	if d > 0 {
		id := n.ID
		s.timers[id] = s.scheduler.AfterFunc(d, func() { s.expire(id) })
	}

	s.publishLocked()
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast added",
		logger.ToastID(n.ID),
		logger.Kind(n.Kind.String()),
		logger.Duration(d),
	)

	return n.ID, nil
}

// Remove deletes the notification with id, keeping the order of the rest.
// Unknown ids are ignored.
func (s *Store) Remove(id string) {
	if s.remove(id) {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast removed", logger.ToastID(id))
	}
}

// Clear drops every notification and cancels their timers.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	s.stopTimersLocked()
	for _, item := range s.items {
		s.retired[item.ID] = struct{}{}
	}
	s.items = nil
	if n == 0 {
		return
	}

	s.publishLocked()
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "toasts cleared", logger.Count(n))
}

// List returns a copy of the notifications in insertion order.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get returns the live notification with id.
func (s *Store) Get(id string) (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true
	}
	return Notification{}, false
}

// Subscribe streams collection snapshots until ctx is done. The current
// snapshot is delivered first. A subscriber that falls behind loses the
// oldest snapshots, never the latest.
func (s *Store) Subscribe(ctx context.Context) broadcast.Subscriber[[]Notification] {
	return s.feed.Subscribe(ctx)
}

// Close cancels all timers and ends every subscription. The current
// notifications stay readable; Add fails afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.stopTimersLocked()
	s.mu.Unlock()

	return s.feed.Close()
}

func (s *Store) expire(id string) {
	if s.remove(id) {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast expired", logger.ToastID(id))
	}
}

func (s *Store) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	s.items = slices.Delete(s.items, i, i+1)
	s.retired[id] = struct{}{}
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.publishLocked()
	return true
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
}

// uniqueIDLocked guards against custom generators repeating a live or
// removed id. A stale expiry callback can then never hit a newer entry.
func (s *Store) uniqueIDLocked() string {
	id := s.newID()
	for !s.freshIDLocked(id) {
		id = helpers.GenerateID()
	}
	return id
}

func (s *Store) freshIDLocked(id string) bool {
	if id == "" || s.indexLocked(id) >= 0 {
		return false
	}
	_, used := s.retired[id]
	return !used
}

func (s *Store) stopTimersLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	clear(s.timers)
}

func (s *Store) snapshotLocked() []Notification {
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// publishLocked runs under mu so snapshots reach subscribers in mutation
// order. Broadcast does not block.
func (s *Store) publishLocked() {
	if s.closed {
		return
	}
	if err := s.feed.Broadcast(context.Background(), broadcast.Message[[]Notification]{Data: s.snapshotLocked()}); err != nil {
		s.logger.LogAttrs(context.Background(), slog.LevelWarn, "toast snapshot not published", logger.Error(err))
	}
}
