package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/format"
)

var sample = time.Date(2026, time.October, 19, 14, 5, 9, 0, time.UTC)

func TestDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "19 tháng 10, 2026", format.Date(sample))
	assert.Equal(t, "Thứ Hai, 19 tháng 10, 2026", format.Date(sample, format.WithWeekday()))

	ict := time.FixedZone("ICT", 7*3600)
	late := time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "20 tháng 10, 2026", format.Date(late, format.WithLocation(ict)))
}

func TestDateShortAndDateTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "19/10/2026", format.DateShort(sample))
	assert.Equal(t, "05/01/2026", format.DateShort(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "19/10/2026 14:05:09", format.DateTime(sample))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"2026-10-19T14:05:09Z",
		"2026-10-19T14:05:09",
		"2026-10-19 14:05:09",
	} {
		got, err := format.ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, sample.Equal(got), in)
	}

	got, err := format.ParseDate(" 19/10/2026 ")
	require.NoError(t, err)
	assert.Equal(t, "19/10/2026", format.DateShort(got))

	_, err = format.ParseDate("yesterday")
	assert.ErrorIs(t, err, format.ErrInvalidDate)
}

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "vừa xong"},
		{500 * time.Millisecond, "vừa xong"},
		{-time.Hour, "vừa xong"},
		{time.Second, "1 giây trước"},
		{59 * time.Second, "59 giây trước"},
		{3 * time.Minute, "3 phút trước"},
		{2 * time.Hour, "2 giờ trước"},
		{36 * time.Hour, "1 ngày trước"},
		{15 * 24 * time.Hour, "2 tuần trước"},
		{65 * 24 * time.Hour, "2 tháng trước"},
		{800 * 24 * time.Hour, "2 năm trước"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, format.RelativeTime(sample.Add(-tt.ago), sample), "ago=%s", tt.ago)
	}
}
