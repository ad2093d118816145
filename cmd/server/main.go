package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"idlepoker-server/internal/config"
	"idlepoker-server/internal/mux"
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/db"
	"idlepoker-server/pkg/room"
	"idlepoker-server/pkg/store"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")

func main() {
	flag.Parse()

	// fail fast
	cfg := config.Instance()
	setupLogger(cfg)

	if *addr != "" {
		cfg.Addr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Store.Driver == config.StorePostgres {
		db.Migrate()
	}

	s, err := store.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not open the store")
	}

	var r rng.Generator = rng.Crypto{}
	if cfg.Seed != 0 {
		r = rng.NewSeeded(cfg.Seed)
		logrus.WithField("seed", cfg.Seed).Info("using a seeded random generator")
	}

	engine, err := room.LoadEngine(ctx, s, r)
	if err != nil {
		logrus.WithError(err).Fatal("could not load the save")
	}

	runner := room.NewRunner(engine, s, room.Options{
		TickInterval:     cfg.TickInterval,
		AutosaveInterval: cfg.AutosaveInterval,
		SaveTimeout:      cfg.SaveTimeout,
	})
	runner.Start()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      loggingHandler(cfg, c.Handler(mux.NewMux(Version, runner))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("could not shut down the server cleanly")
	}

	// the final save happens here
	runner.Stop()
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
