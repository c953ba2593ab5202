package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"8088"`

	// Database configuration
	Database struct {
		// Path to the sqlite database file holding user accounts
		Path string `env:"DATABASE_PATH" envDefault:"database/manjai.db"`
	}

	// Ollama configuration for AI narrative evaluation
	Ollama struct {
		// Base URL of the locally running Ollama service
		BaseURL string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`

		// Model used for property evaluation prompts
		Model string `env:"OLLAMA_MODEL" envDefault:"llama3.2"`

		// Timeout for a single generate call (in seconds)
		TimeoutSeconds int `env:"OLLAMA_TIMEOUT" envDefault:"60"`

		// Timeout for the health check call (in seconds)
		HealthTimeoutSeconds int `env:"OLLAMA_HEALTH_TIMEOUT" envDefault:"5"`
	}

	// Session configuration
	Session struct {
		// Secret used to sign session cookies
		Secret string `env:"SESSION_SECRET" envDefault:"manjai-dev-secret"`
	}

	// Auth configuration
	Auth struct {
		// Password assigned to the seeded admin account on first start
		SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"admin1234"`
	}

	// Report configuration
	Report struct {
		// Directory holding the Thai Sarabun TTF fonts for PDF output
		FontDir string `env:"REPORT_FONT_DIR" envDefault:"fonts"`
	}

	// Upload configuration
	Upload struct {
		// Maximum accepted upload size in bytes
		MaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"16777216"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
