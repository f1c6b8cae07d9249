package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshadsshinde/hospital-management-system/internal/config"
	"github.com/Harshadsshinde/hospital-management-system/internal/handlers"
	"github.com/Harshadsshinde/hospital-management-system/internal/logger"
	"github.com/Harshadsshinde/hospital-management-system/internal/metrics"
	"github.com/Harshadsshinde/hospital-management-system/internal/storage"
	"github.com/Harshadsshinde/hospital-management-system/internal/store"
	"github.com/Harshadsshinde/hospital-management-system/internal/token"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// No store connection string means nothing can work; die early.
		logger.New("development").Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Token.Secret == "" {
		log.Warn("JWT_SECRET_KEY is not set, token issuing will fail")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		log.Error("MongoDB is unreachable", "error", err)
		os.Exit(1)
	}
	db := client.Database(cfg.Mongo.Database)
	log.Info("connected to MongoDB", "database", cfg.Mongo.Database)

	// --- Stores ---
	users := store.NewUserStore(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Error("failed to create user indexes", "error", err)
		os.Exit(1)
	}
	appointments := store.NewAppointmentStore(db)
	messages := store.NewMessageStore(db)

	// --- Services ---
	tokens := token.NewService(cfg.Token)
	avatars, err := storage.New(cfg)
	if err != nil {
		log.Error("failed to initialize avatar storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	if m, ok := avatars.(*storage.MinioUploader); ok {
		if err := m.EnsureBucket(ctx); err != nil {
			log.Error("failed to ensure avatar bucket", "error", err)
			os.Exit(1)
		}
	}

	h := handlers.NewHandler(users, appointments, messages, tokens, avatars, log)
	r := handlers.NewRouter(cfg.HTTP, h, metrics.New())

	log.Info("starting server", "port", cfg.HTTP.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
