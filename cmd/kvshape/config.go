package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

// envConfig holds the process defaults read from the environment. Flags
// override every field.
type envConfig struct {
	LogLevel  string `env:"KVSHAPE_LOG_LEVEL,default=warn"`
	LogFormat string `env:"KVSHAPE_LOG_FORMAT,default=text"`
	Lang      string `env:"KVSHAPE_LANG,default=en"`
}

func loadEnv() (envConfig, error) {
	cfg := envConfig{LogLevel: "warn", LogFormat: "text", Lang: "en"}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

type logConfig struct {
	Level  string `default:"${log_level}"  help:"Log level (debug, info, warn, error)."`
	Format string `default:"${log_format}" enum:"text,json" help:"Log output format."`
}

func (c logConfig) logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
