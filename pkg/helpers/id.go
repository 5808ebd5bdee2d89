package helpers

import (
	"encoding/binary"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const randomPartLen = 9

var lastMillis atomic.Int64

// GenerateID returns an opaque identifier of the form "id_<random>_<time>",
// where random is 9 base36 characters drawn from a v4 UUID and time is the
// current Unix time in milliseconds in base36. The time part never goes
// backwards within a process. Ids are unique in practice, not cryptographically.
func GenerateID() string {
	u := uuid.New()
	random := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(random) > randomPartLen {
		random = random[len(random)-randomPartLen:]
	} else if len(random) < randomPartLen {
		random = strings.Repeat("0", randomPartLen-len(random)) + random
	}

	return "id_" + random + "_" + strconv.FormatInt(monotonicMillis(time.Now().UnixMilli()), 36)
}

func monotonicMillis(now int64) int64 {
	for {
		last := lastMillis.Load()
		if now <= last {
			return last
		}
		if lastMillis.CompareAndSwap(last, now) {
			return now
		}
	}
}
