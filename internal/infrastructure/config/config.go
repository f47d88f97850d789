package config

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Mock    MockConfig
	Fleet   FleetConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=kachra_seth"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SessionConfig selects where the current session is persisted across
// restarts.
type SessionConfig struct {
	Backend  string `env:"SESSION_BACKEND, default=file"` // file or redis
	FilePath string `env:"SESSION_FILE,    default=.kachra-seth-session.json"`
}

// MockConfig tunes the simulated remote backend.
type MockConfig struct {
	// LatencyScale multiplies every simulated call latency. Zero makes
	// calls answer immediately.
	LatencyScale float64 `env:"MOCK_LATENCY_SCALE, default=1.0"`
	// Seed fixes the random source; zero seeds from the clock.
	Seed int64 `env:"MOCK_SEED, default=0"`
}

type FleetConfig struct {
	ReportWorkers int `env:"FLEET_REPORT_WORKERS,  default=4"`
	VehicleTickMS int `env:"FLEET_VEHICLE_TICK_MS, default=3000"`
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory is loaded first when present.
func Load(logger *slog.Logger) *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}
