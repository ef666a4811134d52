package impl

import (
	"io"
	"log/slog"

	"mixtape/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Proximity: &config.ProximityConfig{
			CloseRadius:  1,
			MediumRadius: 2,
			FarRadius:    3,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
