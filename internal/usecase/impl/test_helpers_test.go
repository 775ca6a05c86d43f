package impl

import (
	"io"
	"log/slog"
	"time"

	"snapcase/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cache: &config.CacheConfig{
			TTL: 600 * time.Second,
		},
	}
}
