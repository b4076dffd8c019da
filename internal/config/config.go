package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig bundles the runtime configuration for the server.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabaseURL   string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	UploadDir     string
	UploadURLPath string
}

// Load reads the application configuration from environment variables,
// providing safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "thoughts.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "thoughts-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		UploadDir:     uploadDir,
		UploadURLPath: uploadURLPath,
	}
}
