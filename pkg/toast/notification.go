package toast

import "time"

// DefaultDuration is how long a notification stays visible when the caller
// does not choose.
const DefaultDuration = 5 * time.Second

// Notification is a single visible toast. Its content does not change after
// creation.
type Notification struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Persistent reports whether the notification stays until dismissed.
func (n Notification) Persistent() bool {
	return n.Duration <= 0
}

// ExpiresAt returns when the notification is due to expire.
// The second value is false for persistent notifications.
func (n Notification) ExpiresAt() (time.Time, bool) {
	if n.Persistent() {
		return time.Time{}, false
	}
	return n.CreatedAt.Add(n.Duration), true
}

// Payload is the input to Store.Add. A nil Duration selects the store default.
type Payload struct {
	Kind     Kind
	Title    string
	Message  string
	Duration *time.Duration
}

// Duration returns a pointer to d for use in Payload.
func Duration(d time.Duration) *time.Duration {
	return &d
}
