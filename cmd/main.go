package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/rombit/repair-tracker/internal/auth"
	"github.com/rombit/repair-tracker/internal/config"
	"github.com/rombit/repair-tracker/internal/db"
	"github.com/rombit/repair-tracker/internal/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment as-is")
	}
	cfg := config.Load()
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, err := db.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	log.Info("connected to MongoDB")

	store := db.NewStore(client, cfg.MongoDB)
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.WithError(err).Error("failed to close store")
		}
	}()

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	router := handlers.NewRouter(store, authService, cfg)

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
