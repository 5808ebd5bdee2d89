package toastui_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/clock"
	"github.com/dmitrymomot/storekit/pkg/toast"
	"github.com/dmitrymomot/storekit/pkg/toastui"
)

func newStore(t *testing.T) *toast.Store {
	t.Helper()
	s := toast.NewStore(toast.WithScheduler(clock.NewManual(time.Unix(0, 0))))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func addToast(t *testing.T, s *toast.Store, kind toast.Kind, title string) string {
	t.Helper()
	id, err := s.Add(toast.Payload{Kind: kind, Title: title})
	require.NoError(t, err)
	return id
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{"SSE accept header", map[string]string{"Accept": "text/event-stream"}, "", true},
		{"accept list", map[string]string{"Accept": "text/html, text/event-stream"}, "", true},
		{"query parameter", nil, "?datastar={}", true},
		{"content type", map[string]string{"Content-Type": "application/x-datastar"}, "", true},
		{"regular request", map[string]string{"Accept": "text/html"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, toastui.IsDataStar(req))
		})
	}
}

func TestHandler_Region(t *testing.T) {
	s := newStore(t)
	addToast(t, s, toast.KindSuccess, "Thành công")
	h := toastui.Handler(s, toastui.WithBasePath("/ui/toasts"))

	t.Run("html", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), `data-count="1"`)
		assert.Contains(t, w.Body.String(), `@delete(&#39;/ui/toasts/`)
	})

	t.Run("datastar patch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#toasts")
		assert.Contains(t, body, `data-count="1"`)
	})
}

func TestHandler_CloseLabel(t *testing.T) {
	s := newStore(t)
	addToast(t, s, toast.KindInfo, "Info")

	t.Run("default language", func(t *testing.T) {
		w := httptest.NewRecorder()
		toastui.Handler(s).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, w.Body.String(), `aria-label="Đóng"`)
	})

	t.Run("configured label", func(t *testing.T) {
		w := httptest.NewRecorder()
		toastui.Handler(s, toastui.WithCloseLabel(toast.CloseLabel("en"))).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, w.Body.String(), `aria-label="Close"`)
		assert.NotContains(t, w.Body.String(), "Đóng")
	})
}

func TestHandler_Dismiss(t *testing.T) {
	s := newStore(t)
	a := addToast(t, s, toast.KindInfo, "A")
	addToast(t, s, toast.KindInfo, "B")
	h := toastui.Handler(s)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/"+a, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "B", s.List()[0].Title)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/"+a, nil))
	assert.Equal(t, http.StatusNoContent, w.Code, "dismissing twice is fine")
	assert.Equal(t, 1, s.Len())
}

func TestHandler_DismissDataStar(t *testing.T) {
	s := newStore(t)
	a := addToast(t, s, toast.KindError, "Lỗi")
	h := toastui.Handler(s)

	req := httptest.NewRequest(http.MethodDelete, "/"+a+"?datastar={}", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "datastar-patch-elements")
	assert.Contains(t, w.Body.String(), `data-count="0"`)
	assert.Zero(t, s.Len())
}

func TestHandler_Clear(t *testing.T) {
	s := newStore(t)
	addToast(t, s, toast.KindInfo, "A")
	addToast(t, s, toast.KindWarning, "B")

	w := httptest.NewRecorder()
	toastui.Handler(s).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, s.Len())
}

func TestHandler_StreamRequiresDataStar(t *testing.T) {
	w := httptest.NewRecorder()
	toastui.Handler(newStore(t)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Stream(t *testing.T) {
	s := newStore(t)
	srv := httptest.NewServer(toastui.Handler(s))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lines := bufio.NewScanner(resp.Body)
	waitFor := func(substr string) {
		t.Helper()
		for lines.Scan() {
			if strings.Contains(lines.Text(), substr) {
				return
			}
		}
		require.FailNow(t, "stream ended before "+substr, lines.Err())
	}

	waitFor(`data-count="0"`)

	addToast(t, s, toast.KindSuccess, "Đã thêm vào giỏ")
	waitFor(`data-count="1"`)

	s.Clear()
	waitFor(`data-count="0"`)
}
