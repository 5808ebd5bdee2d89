// Package toastui renders the toast region and serves it over HTTP.
//
// Region and Item are templ components (region.templ) producing the markup
// for a collection of toast.Notification values. Handler returns a chi router
// that exposes the region, dismiss and clear actions, and a datastar SSE
// stream that re-renders the region each time the Store changes:
//
//	r := chi.NewRouter()
//	r.Mount("/toasts", toastui.Handler(store, toastui.WithBasePath("/toasts")))
//
// Pages embed the region and open the stream once:
//
//	<div data-on-load="@get('/toasts/stream')"></div>
//
// Requests made by datastar (Accept: text/event-stream or a datastar query
// parameter) are answered with element patches; plain requests get HTML or
// 204 No Content.
package toastui
