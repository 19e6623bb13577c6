package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck_Up(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.well-known/alive", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL, testLogger(), nil)

	health := svc.HealthCheck(context.Background())

	assert.Equal(t, serviceUp, health.Status)
	assert.Contains(t, health.Details, "host")
}

func TestHealthCheck_DownStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL, testLogger(), nil)

	health := svc.HealthCheck(context.Background())

	assert.Equal(t, serviceDown, health.Status)
	assert.Equal(t, "service down", health.Details["error"])
}

func TestHealthCheck_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	svc := NewHTTPService(server.URL, testLogger(), nil)

	health := svc.HealthCheck(context.Background())

	assert.Equal(t, serviceDown, health.Status)
	assert.Contains(t, health.Details, "error")
}
