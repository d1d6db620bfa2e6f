package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventgroups/internal/config"
	"eventgroups/internal/http-server/handlers/event/createEvent"
	"eventgroups/internal/http-server/handlers/event/deleteEvent"
	"eventgroups/internal/http-server/handlers/event/getAllEvents"
	"eventgroups/internal/http-server/handlers/event/getEvent"
	"eventgroups/internal/http-server/handlers/event/updateEvent"
	"eventgroups/internal/http-server/handlers/group/createGroup"
	"eventgroups/internal/http-server/handlers/group/deleteGroup"
	"eventgroups/internal/http-server/handlers/group/getAllGroups"
	"eventgroups/internal/http-server/handlers/group/getEventGroups"
	"eventgroups/internal/http-server/handlers/group/getGroup"
	"eventgroups/internal/http-server/handlers/group/updateGroup"
	"eventgroups/internal/http-server/handlers/member/createMember"
	"eventgroups/internal/http-server/handlers/member/deleteMember"
	"eventgroups/internal/http-server/handlers/member/getGroupMembers"
	"eventgroups/internal/http-server/middleware/mwlogger"
	"eventgroups/internal/lib/logger/handlers/slogpretty"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting event groups api", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Post("/events", createEvent.New(log, storage))
	router.Get("/events/{id}", getEvent.New(log, storage))
	router.Put("/events/{id}", updateEvent.New(log, storage))
	router.Delete("/events/{id}", deleteEvent.New(log, storage))
	router.Get("/events/{id}/groups", getEventGroups.New(log, storage))

	router.Get("/groups", getAllGroups.New(log, storage))
	router.Post("/groups", createGroup.New(log, storage))
	router.Get("/groups/{id}", getGroup.New(log, storage))
	router.Put("/groups/{id}", updateGroup.New(log, storage))
	router.Delete("/groups/{id}", deleteGroup.New(log, storage))
	router.Get("/groups/{id}/members", getGroupMembers.New(log, storage))

	router.Post("/members", createMember.New(log, storage))
	router.Delete("/members/{id}", deleteMember.New(log, storage))

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	log.Info("starting server", slog.String("address", addr))

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
