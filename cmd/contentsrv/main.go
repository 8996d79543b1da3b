package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/joho/godotenv"
	"github.com/mugiliam/contentsrv/internal/config"
	"github.com/mugiliam/contentsrv/internal/db"
	"github.com/mugiliam/contentsrv/internal/server"
	"github.com/mugiliam/contentsrv/migrations"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatal().Err(err).Msg("unable to load configuration")
	}
	cfg := config.Config()

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	ctx := log.Logger.WithContext(context.Background())

	if cfg.Database.RunMigrations {
		if err := runMigrations(ctx, cfg); err != nil {
			log.Fatal().Err(err).Msg("unable to run migrations")
		}
	}

	if err := db.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("unable to initialize db pool")
	}
	defer db.Shutdown()

	s, err := server.CreateNewServer()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to create server")
	}
	s.MountHandlers()

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: s.Router,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

func runMigrations(ctx context.Context, cfg *config.AppConfig) error {
	sqlDb, err := sql.Open("pgx", cfg.Database.ConnString())
	if err != nil {
		return err
	}
	defer sqlDb.Close()
	return migrations.Up(ctx, sqlDb, cfg.Database.MigrationsPath)
}
