// Package app wires configuration, storage, services and transport into a
// runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordkeep/internal/adapter/postgres"
	"github.com/heartmarshall/wordkeep/internal/adapter/postgres/quizresult"
	"github.com/heartmarshall/wordkeep/internal/adapter/postgres/schedule"
	"github.com/heartmarshall/wordkeep/internal/adapter/postgres/sense"
	"github.com/heartmarshall/wordkeep/internal/adapter/postgres/translation"
	"github.com/heartmarshall/wordkeep/internal/adapter/postgres/word"
	"github.com/heartmarshall/wordkeep/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordkeep/internal/adapter/provider/libretranslate"
	"github.com/heartmarshall/wordkeep/internal/adapter/provider/translate"
	"github.com/heartmarshall/wordkeep/internal/adapter/sqlite"
	settingsrepo "github.com/heartmarshall/wordkeep/internal/adapter/sqlite/settings"
	"github.com/heartmarshall/wordkeep/internal/config"
	"github.com/heartmarshall/wordkeep/internal/reminder"
	"github.com/heartmarshall/wordkeep/internal/service/quiz"
	"github.com/heartmarshall/wordkeep/internal/service/review"
	"github.com/heartmarshall/wordkeep/internal/service/settings"
	"github.com/heartmarshall/wordkeep/internal/transport/middleware"
	"github.com/heartmarshall/wordkeep/internal/transport/rest"
)

// App holds every long-lived component. Build it with New and release it
// with Close.
type App struct {
	cfg *config.Config
	log *slog.Logger

	pool   *pgxpool.Pool
	sqlite *sqlx.DB

	Settings *settings.Store
	Review   *review.Service
	Reminder *reminder.Scheduler
}

// New connects to both databases and builds the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logger}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: postgres: %w", err)
	}
	a.pool = pool

	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app: sqlite: %w", err)
	}
	a.sqlite = db

	store, err := settings.Open(ctx, settingsrepo.New(db), logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app: settings: %w", err)
	}
	a.Settings = store

	words := word.New(pool)
	senses := sense.New(pool)

	a.Review = review.NewService(
		logger,
		words,
		senses,
		translation.New(pool),
		schedule.New(pool),
		quizresult.New(pool),
		postgres.NewTxManager(pool),
		freedict.NewProvider(freedict.Config{
			BaseURL:           cfg.Dictionary.BaseURL,
			Timeout:           cfg.Dictionary.Timeout,
			RequestsPerSecond: cfg.Dictionary.RequestsPerSecond,
			Burst:             cfg.Dictionary.Burst,
		}, logger),
		newTranslator(cfg.Translate, logger),
		store,
		quiz.NewGenerator(logger, words, senses, nil),
		nil,
	)

	a.Reminder = reminder.NewScheduler(
		logger,
		a.Review,
		store,
		reminder.NewLogNotifier(logger),
		cfg.Reminder.Location,
	)

	return a, nil
}

// translator is what the review service needs from a translation backend.
type translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
}

func newTranslator(cfg config.TranslateConfig, logger *slog.Logger) translator {
	if !cfg.Enabled {
		return translate.NewStub()
	}
	return libretranslate.NewClient(libretranslate.Config{
		BaseURL:           cfg.BaseURL,
		APIKey:            cfg.APIKey,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}, logger)
}

// Close releases everything New acquired. It is safe on a partially built App.
func (a *App) Close() {
	if a.Settings != nil {
		a.Settings.Close()
	}
	if a.sqlite != nil {
		if err := a.sqlite.Close(); err != nil {
			a.log.Warn("close sqlite", slog.String("error", err.Error()))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

// Handler builds the HTTP surface. The returned stop function releases the
// rate limiter.
func (a *App) Handler() (http.Handler, func()) {
	var limiter *middleware.RateLimiter
	stop := func() {}
	if a.cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(a.cfg.RateLimit.PerMinute, a.cfg.RateLimit.Burst, a.cfg.RateLimit.CleanupInterval)
		stop = limiter.Stop
	}

	health := rest.NewHealthHandler(BuildVersion(), map[string]rest.Check{
		"postgres": a.pool.Ping,
		"sqlite":   a.sqlite.PingContext,
	})

	return rest.NewRouter(a.log, rest.Handlers{
		Health:   health,
		Words:    rest.NewWordHandler(a.Review, a.Settings, a.log),
		Reviews:  rest.NewReviewHandler(a.Review, a.Settings, a.log),
		Settings: rest.NewSettingsHandler(a.Settings, a.log),
	}, limiter), stop
}

// Serve runs the HTTP server and, when enabled, the reminder scheduler until
// ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	handler, stopLimiter := a.Handler()
	defer stopLimiter()

	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	if a.cfg.Reminder.Enabled {
		if err := a.Reminder.Start(ctx); err != nil {
			return fmt.Errorf("app: start reminder: %w", err)
		}
		a.log.InfoContext(ctx, "reminder scheduled", slog.Time("next_run", a.Reminder.NextRun()))
	}

	g.Go(func() error {
		a.log.InfoContext(ctx, "http server listening",
			slog.String("addr", srv.Addr),
			slog.String("version", BuildVersion()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.InfoContext(shutdownCtx, "shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// EnrichPending enriches up to the configured batch of words that have no
// senses yet. An empty lang means the configured translation language.
func (a *App) EnrichPending(ctx context.Context, lang string) (int, error) {
	if lang == "" {
		lang = a.Settings.Current().TranslationLang
	}
	return a.Review.EnrichPending(ctx, a.cfg.Review.EnrichBatchSize, lang, a.cfg.Review.EnrichConcurrency)
}

// Migrate applies pending database migrations.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	return postgres.Migrate(ctx, cfg.Database.DSN, logger)
}
