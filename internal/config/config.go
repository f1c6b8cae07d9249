package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type (
	// Container holds every environment-sourced setting, loaded once at
	// startup and passed explicitly to the components that need it.
	Container struct {
		App        *App
		Mongo      *Mongo
		Token      *Token
		HTTP       *HTTP
		Storage    *Storage
		Cloudinary *Cloudinary
		Minio      *Minio
	}

	App struct {
		Env string
	}

	Mongo struct {
		URI      string
		Database string
	}

	Token struct {
		Secret string
		TTL    time.Duration
	}

	HTTP struct {
		Port           string
		AllowedOrigins []string
	}

	// Storage selects the avatar backend: "cloudinary" or "minio".
	Storage struct {
		Backend string
	}

	Cloudinary struct {
		CloudName string
		APIKey    string
		APISecret string
	}

	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
	}
)

// ErrMissingMongoURI makes the absence of the store connection string fatal
// at startup rather than a deferred connection failure.
var ErrMissingMongoURI = errors.New("MONGO_URI is not defined in the environment")

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		// Missing .env is fine; the environment itself may carry everything.
		_ = godotenv.Load()
	}

	mongo := &Mongo{
		URI:      os.Getenv("MONGO_URI"),
		Database: getEnv("MONGO_DATABASE", "HOSPITAL_MANAGEMENT_SYSTEM"),
	}
	if mongo.URI == "" {
		return nil, ErrMissingMongoURI
	}

	ttl, err := time.ParseDuration(getEnv("JWT_EXPIRES", "168h"))
	if err != nil {
		ttl = 7 * 24 * time.Hour
	}
	token := &Token{
		Secret: os.Getenv("JWT_SECRET_KEY"),
		TTL:    ttl,
	}

	http := &HTTP{
		Port:           getEnv("API_PORT", "4000"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}

	storage := &Storage{
		Backend: getEnv("STORAGE_BACKEND", "cloudinary"),
	}

	cloudinary := &Cloudinary{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}

	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	minio := &Minio{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    getEnv("MINIO_BUCKET", "doc-avatars"),
		UseSSL:    useSSL,
	}

	return &Container{
		App:        &App{Env: getEnv("APP_ENV", "development")},
		Mongo:      mongo,
		Token:      token,
		HTTP:       http,
		Storage:    storage,
		Cloudinary: cloudinary,
		Minio:      minio,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:5173", "http://localhost:5174"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
