package confs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every runtime parameter for the blog API. It is built once at
// startup and passed down read-only; nothing reads the environment after
// LoadConfig returns.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	// Either DB_URL or the individual DB_* parameters must be set.
	DatabaseURL string `env:"DB_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"720h"` // 30 days

	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	ViewFlushInterval time.Duration `env:"VIEW_FLUSH_INTERVAL" envDefault:"30s"`
}

// LoadConfig loads environment variables from a .env file if present
// and parses them into a Config.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}
