package app

import (
	"fmt"
	"os"

	"dispatch-platform/internal/config"
	"dispatch-platform/internal/logx"
)

// NewLogger builds the process logger selected by cfg.Log.Format.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	switch cfg.Log.Format {
	case "", "slog":
		return logx.NewJSONSlog(os.Stdout, cfg.Log.Level), nil
	case "zap":
		l, err := logx.NewZapProduction(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("zap logger: %w", err)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
}
