package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/transport/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:      "disabled",
			enable:    false,
			setupMock: func(*cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.7:curl", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "last request in window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(2), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "redis failure lets the request through",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(redisCache)

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable), redisCache)

			req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
			req.Header.Set("User-Agent", "curl")

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://desk.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPut}

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://desk.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "https://desk.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisabled(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Origin", "https://desk.example.com")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracing(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRateLimitKeysOnPeerAddress(t *testing.T) {
	ctrl := gomock.NewController(t)

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.10:unknown", 60).Return(int64(1), nil)

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), redisCache)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.RemoteAddr = "192.0.2.10:54321"
	req.Header.Del("User-Agent")

	rec := httptest.NewRecorder()
	mw.RateLimit()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
