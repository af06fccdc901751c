package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the publisher configuration loaded from environment variables.
type Config struct {
	MongoURI          string        `env:"MONGO_URI,required"`
	DBName            string        `env:"DB_NAME,required"`
	Collection        string        `env:"BLOG_COLLECTION" envDefault:"blogs"`
	ConnectTimeout    time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	ManifestPath      string        `env:"MANIFEST_PATH" envDefault:"./blog-status.json"`
	ContentDir        string        `env:"CONTENT_DIR" envDefault:"./blogs"`
	ContentReadPolicy string        `env:"CONTENT_READ_POLICY" envDefault:"skip"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// JSONLogs returns true if logs should be written as JSON lines.
func (c Config) JSONLogs() bool {
	return c.LogFormat == "json"
}

// Load reads the given dotenv files (default ".env") into the environment, without
// overriding variables that are already set, then parses the environment into a Config.
// Missing dotenv files are ignored.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.LogFormat {
	case "console", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}

	if cfg.ConnectTimeout < 0 {
		return nil, fmt.Errorf("MONGO_CONNECT_TIMEOUT must not be negative, got %s", cfg.ConnectTimeout)
	}

	return cfg, nil
}
