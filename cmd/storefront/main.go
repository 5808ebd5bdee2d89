// Command storefront serves the toast region demo: a page that streams the
// notification list over datastar and endpoints that raise toasts.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/storekit/pkg/config"
	"github.com/dmitrymomot/storekit/pkg/httpserver"
	"github.com/dmitrymomot/storekit/pkg/i18n"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/requestid"
	"github.com/dmitrymomot/storekit/pkg/toast"
)

type appConfig struct {
	Env           string        `env:"ENV" envDefault:"development"`
	Lang          string        `env:"LANG" envDefault:"vi"`
	ToastDuration time.Duration `env:"TOAST_DURATION" envDefault:"5s"`
	HTTP          httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg, config.WithPrefix("STOREFRONT_"))

	log := logger.New(
		logger.ForEnvironment(cfg.Env, "storefront"),
		logger.WithContextExtractors(requestid.Extractor),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()
	tr, err := toast.LoadTranslator(ctx, i18n.WithLogger(log))
	if err != nil {
		log.LogAttrs(ctx, slog.LevelError, "load toast locales", logger.Error(err))
		os.Exit(1)
	}

	store := toast.NewStore(
		toast.WithDefaultDuration(cfg.ToastDuration),
		toast.WithLogger(log),
	)
	notifier := toast.NewNotifier(store,
		toast.WithTranslator(tr),
		toast.WithLanguage(cfg.Lang),
		toast.WithNotifierLogger(log),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithOnShutdown(func() { _ = store.Close() }),
	)
	if err := srv.Run(ctx, newRouter(store, notifier, log)); err != nil {
		log.LogAttrs(ctx, slog.LevelError, "server stopped", logger.Error(err))
		os.Exit(1)
	}
}
