package helpers

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^id_[0-9a-z]{9}_[0-9a-z]+$`)

func TestGenerateID_Format(t *testing.T) {
	id := GenerateID()
	require.Regexp(t, idPattern, id)

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	ms, err := strconv.ParseInt(parts[2], 36, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), ms, float64(time.Minute.Milliseconds()))
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for range 10000 {
		id := GenerateID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestMonotonicMillis(t *testing.T) {
	base := lastMillis.Load() + 1000
	assert.Equal(t, base, monotonicMillis(base))
	assert.Equal(t, base, monotonicMillis(base-500), "clock going backwards keeps last value")
	assert.Equal(t, base+1, monotonicMillis(base+1))
}
