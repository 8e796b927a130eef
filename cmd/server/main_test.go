package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"biolink/internal/config"
	"biolink/internal/mocks"
	"biolink/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Tracker: config.TrackerConfig{
			RedirectURL: "https://www.instagram.com/sekotak",
			AccountName: "sekotak",
		},
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mocks.NewMockTrackingServiceInterface(ctrl)
	stats := mocks.NewMockStatsServiceInterface(ctrl)
	router := newRouter(testConfig(), tracker, stats)

	t.Run("redirect survives a tracking panic", func(t *testing.T) {
		tracker.EXPECT().Track(gomock.Any(), gomock.Any()).
			Do(func(context.Context, *model.VisitRequest) { panic("boom") })

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://www.instagram.com/sekotak", w.Header().Get("Location"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("stats api", func(t *testing.T) {
		stats.EXPECT().Stats(gomock.Any()).Return(&model.Stats{LeadingDevice: model.NotAvailable})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"leading_device":"N/A"`)
	})

	t.Run("dashboard panic renders the empty dashboard", func(t *testing.T) {
		stats.EXPECT().Dashboard(gomock.Any()).Do(func(context.Context) { panic("boom") })

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/dashboard", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "@sekotak")
		assert.Contains(t, w.Body.String(), "No clicks yet")
		assert.Contains(t, w.Body.String(), model.NotAvailable)
	})

	t.Run("stats api panic is a 500", func(t *testing.T) {
		stats.EXPECT().Stats(gomock.Any()).Do(func(context.Context) { panic("boom") })

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("OPTIONS", "/api/v1/stats", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNewResolver(t *testing.T) {
	geoCfg := &config.GeoConfig{
		BaseURL: "http://127.0.0.1:1/json",
		Timeout: 100 * time.Millisecond,
		Cache:   "memory",
		Breaker: config.BreakerConfig{Enabled: true, MinRequests: 3, FailureRatio: 0.5},
	}

	resolver, closeFn := newResolver(geoCfg, &config.RedisConfig{})
	defer closeFn()

	country, city := resolver.Resolve(context.Background(), "127.0.0.1")
	assert.Equal(t, model.Local, country)
	assert.Equal(t, model.Local, city)

	country, _ = resolver.Resolve(context.Background(), "8.8.8.8")
	assert.Equal(t, model.Unknown, country)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "configs/config.yaml", configPath())

	t.Setenv("CONFIG_PATH", "/etc/biolink.yaml")
	assert.Equal(t, "/etc/biolink.yaml", configPath())
}
