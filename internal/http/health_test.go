package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Status(t *testing.T) {
	t.Run("healthy with a live database", func(t *testing.T) {
		_, router, cleanup := setupAPITest(t)
		defer cleanup()

		w := doRequest(router, "GET", "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "test", resp.Version)
		assert.Equal(t, "ok", resp.Checks["database"])
		assert.NotEmpty(t, resp.Time)
	})

	t.Run("unhealthy when the database is gone", func(t *testing.T) {
		db, router, cleanup := setupAPITest(t)
		defer cleanup()

		require.NoError(t, db.Close())

		w := doRequest(router, "GET", "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
	})
}
