package toastui

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/toast"
)

type handlerConfig struct {
	basePath   string
	closeLabel string
	logger   *slog.Logger
}

// HandlerOption configures Handler.
type HandlerOption func(*handlerConfig)

// WithBasePath sets the path the router is mounted at. Dismiss buttons
// target it. Defaults to DefaultBasePath.
func WithBasePath(path string) HandlerOption {
	return func(c *handlerConfig) {
		if path != "" {
			c.basePath = path
		}
	}
}

// WithCloseLabel sets the accessible name of dismiss buttons, typically
// Notifier.CloseLabel. Defaults to the built-in label of toast.DefaultLanguage.
func WithCloseLabel(label string) HandlerOption {
	return func(c *handlerConfig) {
		if label != "" {
			c.closeLabel = label
		}
	}
}

func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(c *handlerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Handler exposes store over HTTP:
//
//	GET    /        region HTML, or a region patch for datastar requests
//	GET    /stream  datastar SSE: the current region, then one patch per change
//	DELETE /{id}    dismiss one toast
//	DELETE /        dismiss all toasts
//
// The DELETE routes answer 204, or a region patch for datastar requests.
func Handler(store *toast.Store, opts ...HandlerOption) chi.Router {
	cfg := &handlerConfig{
		basePath:   DefaultBasePath,
		closeLabel: toast.CloseLabel(toast.DefaultLanguage),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	h := &regionHandler{store: store, logger: cfg.logger.With(logger.Component("toastui"))}

	r := chi.NewRouter()
	r.Use(renderContext(cfg))
	r.Get("/", h.region)
	r.Get("/stream", h.stream)
	r.Delete("/", h.clear)
	r.Delete("/{id}", h.dismiss)
	return r
}

// renderContext carries the settings rendered components read from ctx.
func renderContext(cfg *handlerConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithBasePathContext(r.Context(), cfg.basePath)
			ctx = WithCloseLabelContext(ctx, cfg.closeLabel)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type regionHandler struct {
	store  *toast.Store
	logger *slog.Logger
}

func (h *regionHandler) region(w http.ResponseWriter, r *http.Request) {
	if IsDataStar(r) {
		h.patch(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Region(h.store.List()).Render(r.Context(), w); err != nil {
		h.logger.LogAttrs(r.Context(), slog.LevelError, "failed to render toast region",
			logger.Handler("region"),
			logger.Error(err),
		)
	}
}

func (h *regionHandler) stream(w http.ResponseWriter, r *http.Request) {
	if !IsDataStar(r) {
		http.Error(w, "toast stream requires a datastar connection", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	sub := h.store.Subscribe(ctx)
	defer sub.Close()

	sse := datastar.NewSSE(w, r)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Receive(ctx):
			if !ok {
				return
			}
			if err := patchRegion(sse, msg.Data); err != nil {
				h.logger.LogAttrs(ctx, slog.LevelDebug, "toast stream closed",
					logger.Handler("stream"),
					logger.Error(err),
				)
				return
			}
		}
	}
}

func (h *regionHandler) dismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.store.Remove(id)
	h.logger.LogAttrs(r.Context(), slog.LevelDebug, "toast dismissed", logger.ToastID(id))
	h.done(w, r)
}

func (h *regionHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	h.done(w, r)
}

func (h *regionHandler) done(w http.ResponseWriter, r *http.Request) {
	if IsDataStar(r) {
		h.patch(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *regionHandler) patch(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	if err := patchRegion(sse, h.store.List()); err != nil {
		h.logger.LogAttrs(r.Context(), slog.LevelError, "failed to patch toast region",
			logger.Handler("patch"),
			logger.Error(err),
		)
	}
}
