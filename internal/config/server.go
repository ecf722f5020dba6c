package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds the HTTP API settings. Fields are populated from
// environment variables; nested structs use envPrefix.
type Server struct {
	// Env is the deployment environment. "production" puts gin in release
	// mode.
	Env  string `env:"API_ENV" envDefault:"development"`
	Port uint16 `env:"API_PORT" envDefault:"8080"`

	// UniverseDir is scanned for *.yaml universe presets.
	UniverseDir string `env:"UNIVERSE_DIR" envDefault:"examples/universes"`

	// RunCacheTTL bounds how long finished runs stay retrievable by id.
	RunCacheTTL time.Duration `env:"RUN_CACHE_TTL" envDefault:"1h"`

	Log  Logger `envPrefix:"LOG_"`
	CORS CORS   `envPrefix:"CORS_"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Logger configures the structured logger. Level is one of debug, info,
// warn or error; Format is text (default) or json.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s Server) Production() bool {
	return strings.EqualFold(s.Env, "production")
}

// SlogLevel converts the textual level into a slog.Level. Unknown levels
// default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested format; anything but json is text.
func (c Logger) SlogFormat() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "text"
	}
}

func (c Logger) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	var handler slog.Handler
	switch c.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
