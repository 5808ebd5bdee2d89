package format

import (
	"math"

	"github.com/dustin/go-humanize"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FileSize renders a byte count in binary (1024) units with at most two
// decimals and trailing zeros trimmed: 1536 becomes "1.5 KB".
// Sizes beyond the terabyte range stay in TB.
func FileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sign := ""
	magnitude := uint64(bytes)
	if bytes < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	const k = 1024.0
	v := float64(magnitude)
	i := int(math.Floor(math.Log(v) / math.Log(k)))
	i = min(i, len(sizeUnits)-1)

	scaled := math.Round(v/math.Pow(k, float64(i))*100) / 100
	return sign + humanize.FtoaWithDigits(scaled, 2) + " " + sizeUnits[i]
}
