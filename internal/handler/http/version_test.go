package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"1.2.3", "v2.0.0-beta+build.42", ""} {
		t.Run(version, func(t *testing.T) {
			h := newTestHandlerWith(t, nil, nil)
			h.services.AppInfoService = &mockAppInfoService{version: version}

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, version, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.healthCheck(rec, httptest.NewRequest(http.MethodGet, "/health_check", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
