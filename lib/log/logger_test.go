package log

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFormatsModuleAndMessage(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, nil))

	logger.Info("food eaten", slog.String("module", "game"), slog.Int("remaining", 3))

	line := out.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "[game] ")
	assert.True(t, strings.HasSuffix(line, "food eaten\n"))
}

func TestHandlerWithAttrsKeepsModule(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, nil)).With(slog.String("module", "remote"))

	logger.Warn("fetch failed")

	assert.Contains(t, out.String(), "[remote] ")
	assert.Contains(t, out.String(), "WARN")
}

func TestHandlerWithoutModule(t *testing.T) {
	var out bytes.Buffer
	slog.New(NewHandlerTo(&out, nil)).Error("boom")
	assert.NotContains(t, out.String(), "[")
	assert.Contains(t, out.String(), "boom")
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Debug("hidden too")
	assert.Empty(t, out.String())

	logger.Warn("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestHandlerConcurrentLines(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, nil))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("tick", slog.String("module", "loop"))
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.True(t, strings.HasSuffix(l, "tick"))
	}
}
