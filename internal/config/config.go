package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment.
type Config struct {
	Addr            string        `validate:"required,hostname_port"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	SeedFile        string        `validate:"omitempty,file"`
	RateLimitRPS    float64       `validate:"gte=0"`
	RateLimitBurst  int           `validate:"gte=1"`
	MaxBodyBytes    int64         `validate:"gt=0"`
	AllowedOrigins  []string      `validate:"dive,url"`
	EnableHSTS      bool
	RedisURL        string        `validate:"omitempty,hostname_port"`
	ActivityDepth   int           `validate:"gte=1"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// LoadEnvFiles reads .env and .env.local without overriding variables that
// are already set.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment and validates it.
func Load() (Config, error) {
	var errs []string
	cfg := Config{
		Addr:            getEnv("APP_ADDR", ":3000"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		SeedFile:        os.Getenv("SEED_FILE"),
		RateLimitRPS:    parseEnv("RATE_LIMIT_RPS", 0.0, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }, &errs),
		RateLimitBurst:  parseEnv("RATE_LIMIT_BURST", 20, strconv.Atoi, &errs),
		MaxBodyBytes:    parseEnv("MAX_BODY_BYTES", int64(1<<20), func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }, &errs),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		EnableHSTS:      parseEnv("ENABLE_HSTS", false, strconv.ParseBool, &errs),
		RedisURL:        os.Getenv("REDIS_URL"),
		ActivityDepth:   parseEnv("ACTIVITY_DEPTH", 3, strconv.Atoi, &errs),
		ShutdownTimeout: parseEnv("SHUTDOWN_TIMEOUT", 10*time.Second, time.ParseDuration, &errs),
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// SlogLevel maps LogLevel onto slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseEnv[T any](key string, def T, parse func(string) (T, error), errs *[]string) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := parse(v)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: %v", key, err))
		return def
	}
	return out
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
