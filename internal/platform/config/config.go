// Package config loads process configuration from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Blob backends selectable with BLOB_BACKEND.
const (
	BlobFirebase = "firebase"
	BlobMinIO    = "minio"
	BlobMemory   = "memory"
)

// Config is the resolved process configuration.
type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Blob     BlobConfig
	LogLevel string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	MaxBodyBytes int64
	// SaveTimeout bounds the store writes of a profile save. Zero means no bound.
	SaveTimeout time.Duration
	// AllowedOrigins lists the browser origins CORS admits. Empty admits any origin.
	AllowedOrigins []string
}

// FirebaseConfig holds Firebase project settings.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
	StorageBucket   string
}

// BlobConfig selects and configures the image store.
type BlobConfig struct {
	Backend string
	MinIO   MinIOConfig
}

// MinIOConfig holds S3-compatible object store settings.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string
}

// Load reads .env (when present) and then the environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	var errs []error

	maxBody, err := envInt64("MAX_BODY_BYTES", 8<<20)
	errs = append(errs, err)
	saveTimeout, err := envDuration("SAVE_TIMEOUT", 30*time.Second)
	errs = append(errs, err)
	useSSL, err := envBool("MINIO_USE_SSL", false)
	errs = append(errs, err)

	cfg := &Config{
		Server: ServerConfig{
			Port:           env("PORT", "8080"),
			MaxBodyBytes:   maxBody,
			SaveTimeout:    saveTimeout,
			AllowedOrigins: envList("CORS_ALLOWED_ORIGINS"),
		},
		Firebase: FirebaseConfig{
			ProjectID:       env("FIREBASE_PROJECT_ID", ""),
			CredentialsFile: env("GOOGLE_APPLICATION_CREDENTIALS", ""),
			StorageBucket:   env("STORAGE_BUCKET", ""),
		},
		Blob: BlobConfig{
			Backend: strings.ToLower(env("BLOB_BACKEND", BlobFirebase)),
			MinIO: MinIOConfig{
				Endpoint:  env("MINIO_ENDPOINT", ""),
				AccessKey: env("MINIO_ACCESS_KEY", ""),
				SecretKey: env("MINIO_SECRET_KEY", ""),
				Bucket:    env("MINIO_BUCKET", "profile-images"),
				Region:    env("MINIO_REGION", "us-east-1"),
				UseSSL:    useSSL,
				PublicURL: env("MINIO_PUBLIC_URL", ""),
			},
		},
		LogLevel: env("LOG_LEVEL", "info"),
	}
	errs = append(errs, cfg.validate())

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}
	if c.Server.SaveTimeout < 0 {
		errs = append(errs, errors.New("SAVE_TIMEOUT must not be negative"))
	}
	switch c.Blob.Backend {
	case BlobFirebase:
		if c.Firebase.StorageBucket == "" {
			errs = append(errs, errors.New("STORAGE_BUCKET is required for the firebase blob backend"))
		}
	case BlobMinIO:
		if c.Blob.MinIO.Endpoint == "" {
			errs = append(errs, errors.New("MINIO_ENDPOINT is required for the minio blob backend"))
		}
		if c.Blob.MinIO.Bucket == "" {
			errs = append(errs, errors.New("MINIO_BUCKET must not be empty"))
		}
	case BlobMemory:
	default:
		errs = append(errs, fmt.Errorf("BLOB_BACKEND %q is not one of firebase, minio, memory", c.Blob.Backend))
	}
	return errors.Join(errs...)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// envList splits a comma-separated value, dropping blanks.
func envList(key string) []string {
	var out []string
	for part := range strings.SplitSeq(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envInt64(key string, fallback int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// envDuration accepts Go duration strings ("45s") or a bare number of seconds.
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
