package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/storekit/pkg/catalog"
	"github.com/dmitrymomot/storekit/pkg/helpers"
	"github.com/dmitrymomot/storekit/pkg/httpserver"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/requestid"
	"github.com/dmitrymomot/storekit/pkg/toast"
	"github.com/dmitrymomot/storekit/pkg/toastui"
)

const toastsPath = "/toasts"

var errUnknownProduct = errors.New("unknown product")

// demoProducts is the in-memory catalog behind POST /cart.
var demoProducts = map[string]catalog.ProductData{
	"tee": {
		Product: catalog.Product{UID: "tee", Name: "Áo thun basic", Slug: catalog.Slug("Áo thun basic", 64)},
		OptionTypes: []catalog.OptionType{{
			OptionTypeID: 1,
			DisplayName:  "Size",
			Options: []catalog.Option{
				{UID: "s", DisplayName: "S", Price: 19900},
				{UID: "m", DisplayName: "M", Price: 19900},
				{UID: "xl", DisplayName: "XL", Price: 21900},
			},
		}},
	},
}

type app struct {
	store    *toast.Store
	notifier *toast.Notifier
	logger   *slog.Logger
}

func newRouter(store *toast.Store, notifier *toast.Notifier, log *slog.Logger) http.Handler {
	a := &app{store: store, notifier: notifier, logger: log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware(), middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/", a.page)
	r.Post("/demo/{kind}", a.demo)
	r.Post("/cart", a.addToCart)
	r.Mount(toastsPath, toastui.Handler(store,
		toastui.WithBasePath(toastsPath),
		toastui.WithCloseLabel(notifier.CloseLabel()),
		toastui.WithHandlerLogger(log),
	))
	return r
}

func (a *app) page(w http.ResponseWriter, r *http.Request) {
	bodyClass := "desktop"
	if helpers.IsMobile(r.UserAgent()) {
		bodyClass = "mobile"
	}

	page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8"><title>Storefront</title>`+
			`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>`+
			`</head><body class="`+bodyClass+`" data-on-load="@get(&#39;`+toastsPath+`/stream&#39;)">`); err != nil {
			return err
		}
		ctx = toastui.WithBasePathContext(ctx, toastsPath)
		ctx = toastui.WithCloseLabelContext(ctx, a.notifier.CloseLabel())
		if err := toastui.Region(a.store.List()).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		a.logger.LogAttrs(r.Context(), slog.LevelError, "render page", logger.Error(err))
	}
}

// demo raises a toast of the kind in the path. Without a title the
// fixed localized title for the kind is used.
func (a *app) demo(w http.ResponseWriter, r *http.Request) {
	kind, err := toast.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	message := r.FormValue("message")

	var id string
	switch {
	case title == "" && kind == toast.KindSuccess:
		id = a.notifier.ShowSuccess(message)
	case title == "" && kind == toast.KindError:
		id = a.notifier.ShowError(message)
	case title == "" && kind == toast.KindWarning:
		id = a.notifier.ShowWarning(message)
	case title == "":
		id = a.notifier.ShowInfo(message)
	case kind == toast.KindSuccess:
		id = a.notifier.Success(title, message)
	case kind == toast.KindError:
		id = a.notifier.Error(title, message)
	case kind == toast.KindWarning:
		id = a.notifier.Warning(title, message)
	default:
		id = a.notifier.Info(title, message)
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type cartResponse struct {
	Item    catalog.CartItem `json:"item"`
	Total   string           `json:"total"`
	ToastID string           `json:"toastId"`
}

// addToCart prices a cart line from form values product, quantity and
// option_<typeID>. Failures become a form error toast.
func (a *app) addToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pd, ok := demoProducts[r.PostForm.Get("product")]
	if !ok {
		id := a.notifier.HandleFormError(&toast.APIError{StatusCode: http.StatusNotFound, Message: "Không tìm thấy sản phẩm", Err: errUnknownProduct})
		writeJSON(w, http.StatusNotFound, map[string]string{"toastId": id})
		return
	}

	qty, _ := strconv.Atoi(r.PostForm.Get("quantity"))
	selection := make(map[int]string)
	for key, values := range r.PostForm {
		typeID, found := strings.CutPrefix(key, "option_")
		if !found || len(values) == 0 {
			continue
		}
		if n, err := strconv.Atoi(typeID); err == nil {
			selection[n] = values[0]
		}
	}

	item, err := catalog.NewCartItem(pd, selection, qty)
	if err != nil {
		id := a.notifier.HandleFormError(err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"toastId": id})
		return
	}

	writeJSON(w, http.StatusCreated, cartResponse{
		Item:    item,
		Total:   catalog.FormatPrice(item.TotalPrice),
		ToastID: a.notifier.HandleFormSuccess(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
