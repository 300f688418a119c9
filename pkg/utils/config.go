package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Movie     MovieConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	APIPrefix string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
	Seed        bool
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	Audience    string
	ExpiryHours int
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// MovieConfig bounds the release years accepted for a movie.
type MovieConfig struct {
	MinReleaseYear int
	MaxYearsAhead  int
}

// LoadConfig reads .env (when present) and overlays environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_SEED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "movie-catalog")
	v.SetDefault("JWT_AUDIENCE", "movie-catalog-clients")
	v.SetDefault("JWT_EXPIRY_HOURS", 7*24)
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("MOVIE_MIN_RELEASE_YEAR", 1888)
	v.SetDefault("MOVIE_MAX_YEARS_AHEAD", 5)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	return &Config{
		App: AppConfig{
			Name:      v.GetString("APP_NAME"),
			Port:      v.GetString("PORT"),
			Debug:     v.GetBool("DEBUG"),
			LogPath:   v.GetString("LOG_PATH"),
			APIPrefix: v.GetString("API_PREFIX"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
			Seed:        v.GetBool("DB_SEED"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			Issuer:      v.GetString("JWT_ISSUER"),
			Audience:    v.GetString("JWT_AUDIENCE"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		Movie: MovieConfig{
			MinReleaseYear: v.GetInt("MOVIE_MIN_RELEASE_YEAR"),
			MaxYearsAhead:  v.GetInt("MOVIE_MAX_YEARS_AHEAD"),
		},
	}, nil
}
