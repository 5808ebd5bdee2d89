package toastui

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/storekit/pkg/toast"
)

const (
	dataStarAcceptHeader = "text/event-stream"
	dataStarQueryParam   = "datastar"
)

// IsDataStar reports whether r was issued by the datastar client.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(dataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// patchRegion morphs the region element, matched by its id.
func patchRegion(sse *datastar.ServerSentEventGenerator, items []toast.Notification) error {
	return sse.PatchElementTempl(Region(items),
		datastar.WithSelector("#"+RegionID),
		datastar.WithMode(datastar.ElementPatchModeOuter),
	)
}
