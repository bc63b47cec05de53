package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Server struct {
	Port        string        `env:"PORT" envDefault:"5000"`
	AppEnv      string        `env:"APP_ENV" envDefault:"development"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
}

type Database struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	URL    string `env:"DATABASE_URL" envDefault:"federalparts.db"`
}

type Redis struct {
	URL        string        `env:"REDIS_URL"`
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"100"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

type Auth struct {
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"dev-secret-key-change-in-production"`
	JWTTTL            time.Duration `env:"JWT_TTL" envDefault:"168h"`
	BootstrapEmail    string        `env:"BOOTSTRAP_ADMIN_EMAIL" envDefault:"admin@federalparts.ph"`
	BootstrapPassword string        `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

type Images struct {
	UploadsBaseURL      string `env:"UPLOADS_BASE_URL" envDefault:"http://localhost:5000"`
	Placeholder         string `env:"IMAGE_PLACEHOLDER" envDefault:"https://via.placeholder.com/300x300?text=No+Image"`
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
}

type Logger struct {
	Level  string `env:"LOGGER_LEVEL" envDefault:"info"`
	AsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"false"`
}

// Config is everything the API server and the seeder read from the
// environment.
type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	Auth     Auth
	Images   Images
	Logger   Logger
}

func (c *Config) IsProduction() bool { return c.Server.AppEnv == "production" }

// Load reads an optional .env file and then the process environment.
func Load(path ...string) (*Config, error) {
	const op = "config.Load"

	if err := loadDotenv(path...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.Auth.JWTSecret == "" || (cfg.IsProduction() && cfg.Auth.JWTSecret == "dev-secret-key-change-in-production") {
		return nil, fmt.Errorf("%s: JWT_SECRET must be set in production", op)
	}
	switch cfg.Database.Driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("%s: unsupported DB_DRIVER %q", op, cfg.Database.Driver)
	}
	return &cfg, nil
}

// Console is the admin console's view of the environment.
type Console struct {
	APIURL    string        `env:"FP_API_URL" envDefault:"http://localhost:5000/api"`
	ConfigDir string        `env:"FP_CONFIG_DIR"`
	TokenKey  string        `env:"FP_TOKEN_KEY" envDefault:"adminToken"`
	UserKey   string        `env:"FP_USER_KEY" envDefault:"adminUser"`
	RoleKey   string        `env:"FP_ROLE_KEY" envDefault:"adminRole"`
	PageSize  int           `env:"FP_PAGE_SIZE" envDefault:"10"`
	Timeout   time.Duration `env:"FP_TIMEOUT" envDefault:"15s"`
	Logger    Logger
}

func LoadConsole(path ...string) (*Console, error) {
	const op = "config.LoadConsole"

	if err := loadDotenv(path...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var cfg Console
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.ConfigDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("%s: resolve config dir: %w", op, err)
		}
		cfg.ConfigDir = dir + string(os.PathSeparator) + "federalparts"
	}
	return &cfg, nil
}

func loadDotenv(path ...string) error {
	if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
