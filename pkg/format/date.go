package format

import (
	"fmt"
	"strings"
	"time"
)

var weekdaysVI = [...]string{"Chủ Nhật", "Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy"}

// DateOption customizes Date.
type DateOption func(*dateConfig)

type dateConfig struct {
	loc     *time.Location
	weekday bool
}

// WithLocation renders the date in loc instead of the time's own location.
func WithLocation(loc *time.Location) DateOption {
	return func(c *dateConfig) {
		c.loc = loc
	}
}

// WithWeekday prefixes the date with the Vietnamese weekday name.
func WithWeekday() DateOption {
	return func(c *dateConfig) {
		c.weekday = true
	}
}

// Date renders t in the Vietnamese long form, e.g. "19 tháng 10, 2026".
func Date(t time.Time, opts ...DateOption) string {
	cfg := &dateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.loc != nil {
		t = t.In(cfg.loc)
	}

	s := fmt.Sprintf("%d tháng %d, %d", t.Day(), int(t.Month()), t.Year())
	if cfg.weekday {
		s = weekdaysVI[t.Weekday()] + ", " + s
	}
	return s
}

// DateShort renders t as dd/mm/yyyy.
func DateShort(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateTime renders t as dd/mm/yyyy hh:mm:ss on a 24-hour clock.
func DateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"02/01/2006",
}

// ParseDate accepts RFC 3339 timestamps, ISO dates with or without a time
// part and dd/mm/yyyy. Values without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

type relativeUnit struct {
	label   string
	seconds int64
}

var relativeUnits = []relativeUnit{
	{"năm", 31536000},
	{"tháng", 2592000},
	{"tuần", 604800},
	{"ngày", 86400},
	{"giờ", 3600},
	{"phút", 60},
	{"giây", 1},
}

// RelativeTime describes how long before now t happened, using the largest
// whole unit: "2 giờ trước". Anything under a second, or in the future,
// is "vừa xong".
func RelativeTime(t, now time.Time) string {
	diff := int64(now.Sub(t) / time.Second)
	for _, u := range relativeUnits {
		if count := diff / u.seconds; count >= 1 {
			return fmt.Sprintf("%d %s trước", count, u.label)
		}
	}
	return "vừa xong"
}
