package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMetrics(t *testing.T) {
	f := NewFetchMetrics()
	before := testutil.ToFloat64(f.Failed)
	f.Failed.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SpriteFetches.WithLabelValues("error")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	FramesRendered.Inc()
	FoodSpawned.WithLabelValues("good").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "spritekit_frames_rendered_total")
	assert.Contains(t, string(body), `spritekit_food_spawned_total{type="good"}`)
}
