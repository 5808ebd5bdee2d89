package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/helpers"
)

type image struct {
	URL string
}

type product struct {
	Name      string
	Images    []image
	Primary   *image
	Meta      map[string]any
	Tags      [2]string
	CreatedAt time.Time
	secret    string
}

func TestDeepClone_Struct(t *testing.T) {
	created := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	src := product{
		Name:      "Áo thun",
		Images:    []image{{URL: "a.jpg"}},
		Primary:   &image{URL: "p.jpg"},
		Meta:      map[string]any{"sizes": []any{"S", "M"}, "stock": 3},
		Tags:      [2]string{"new", "sale"},
		CreatedAt: created,
		secret:    "s",
	}

	dst := helpers.DeepClone(src)
	require.Equal(t, src, dst)

	dst.Images[0].URL = "changed.jpg"
	dst.Primary.URL = "changed.jpg"
	dst.Meta["sizes"].([]any)[0] = "XL"
	dst.Meta["stock"] = 0
	dst.Tags[0] = "old"

	assert.Equal(t, "a.jpg", src.Images[0].URL)
	assert.Equal(t, "p.jpg", src.Primary.URL)
	assert.Equal(t, "S", src.Meta["sizes"].([]any)[0])
	assert.Equal(t, 3, src.Meta["stock"])
	assert.Equal(t, "new", src.Tags[0])
	assert.Equal(t, created, dst.CreatedAt)
	assert.Equal(t, "s", dst.secret)
}

func TestDeepClone_Primitives(t *testing.T) {
	assert.Equal(t, 42, helpers.DeepClone(42))
	assert.Equal(t, "x", helpers.DeepClone("x"))

	var nilAny any
	assert.Nil(t, helpers.DeepClone(nilAny))

	var nilSlice []int
	assert.Nil(t, helpers.DeepClone(nilSlice))

	var nilPtr *image
	assert.Nil(t, helpers.DeepClone(nilPtr))
}

func TestDeepClone_Pointer(t *testing.T) {
	src := &product{Name: "Quần", Images: []image{{URL: "q.jpg"}}}
	dst := helpers.DeepClone(src)

	require.NotSame(t, src, dst)
	dst.Images[0].URL = "other.jpg"
	assert.Equal(t, "q.jpg", src.Images[0].URL)
}

func TestIsMobile(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", true},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", true},
		{"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", true},
		{"Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)", true},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, helpers.IsMobile(tt.ua), tt.ua)
	}
}
