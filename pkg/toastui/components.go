package toastui

import (
	"context"
	"net/url"

	"github.com/dmitrymomot/storekit/pkg/toast"
	"github.com/dmitrymomot/storekit/pkg/ui"
)

// RegionID is the DOM id of the region element; patches target it.
const RegionID = "toasts"

func itemClass(n toast.Notification) string {
	return "toast toast--" + string(ui.VariantForKind(n.Kind.String()))
}

// itemRole makes errors interrupt screen readers; the rest wait politely.
func itemRole(n toast.Notification) string {
	if n.Kind == toast.KindError {
		return "alert"
	}
	return "status"
}

func dismissPath(ctx context.Context, id string) string {
	return basePathFrom(ctx) + "/" + url.PathEscape(id)
}
