// Package httpserver runs the storefront HTTP server with graceful shutdown.
//
// Run listens on the configured address and blocks until its context is
// cancelled, the process receives an interrupt or TERM signal, or Shutdown
// is called. Shutdown first runs the WithOnShutdown callbacks, which is where
// long-lived streams (the toast SSE feed) are ended, then drains connections
// within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithOnShutdown(func() { _ = store.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and drain failures with
// ErrShutdown; use errors.Is to tell them apart.
package httpserver
