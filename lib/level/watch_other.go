//go:build !linux

package level

import (
	"context"
	"log/slog"
)

// Watch is only implemented on Linux; elsewhere it logs and returns.
func Watch(ctx context.Context, path string, onChange func(*Level)) error {
	slog.Warn("level reloading is only supported on linux", slog.String("module", "level"))
	return nil
}
