package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fre-insights/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func requestFrom(e *echo.Echo, remoteAddr string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(UserIDContextKey, *userID)
	}
	return c, rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 4})(okHandler)

	for i := 0; i < 4; i++ {
		c, rec := requestFrom(e, "192.168.1.2:12345", nil)
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	c, rec := requestFrom(e, "192.168.1.2:12345", nil)
	// SendError writes the response and returns nil
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_IndependentCallers(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 2})(okHandler)

	alice, bob := uuid.New(), uuid.New()
	for _, userID := range []uuid.UUID{alice, bob} {
		id := userID
		for i := 0; i < 2; i++ {
			// same IP, different users
			c, rec := requestFrom(e, "10.0.0.1:1234", &id)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	}

	c, rec := requestFrom(e, "10.0.0.1:1234", nil)
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code, "anonymous IP bucket is separate from user buckets")
}

func TestVisitorLimiter_SweepsIdleVisitors(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newVisitorLimiter(5, 10)
	l.now = func() time.Time { return clock }
	l.lastCleanup = clock

	assert.True(t, l.allow("ip:old"))
	clock = clock.Add(2 * time.Minute)
	assert.True(t, l.allow("ip:new"))
	assert.Equal(t, 2, l.size())

	clock = clock.Add(2 * time.Minute)
	assert.True(t, l.allow("ip:new"))
	assert.Equal(t, 1, l.size(), "visitor idle for 4 minutes is dropped")
}

func TestVisitorLimiter_Refills(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newVisitorLimiter(1, 1)
	l.now = func() time.Time { return clock }

	assert.True(t, l.allow("user:a"))
	assert.False(t, l.allow("user:a"))

	clock = clock.Add(time.Second)
	assert.True(t, l.allow("user:a"))
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{"X-Forwarded-For first hop", map[string]string{"X-Forwarded-For": "192.168.1.1, 10.0.0.1"}, "127.0.0.1:12345", "192.168.1.1"},
		{"X-Real-IP", map[string]string{"X-Real-IP": "192.168.1.2"}, "127.0.0.1:12345", "192.168.1.2"},
		{"X-Forwarded-For takes precedence", map[string]string{"X-Forwarded-For": "192.168.1.1", "X-Real-IP": "192.168.1.2"}, "127.0.0.1:12345", "192.168.1.1"},
		{"falls back to RealIP", map[string]string{}, "192.168.1.3:12345", "192.168.1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.expected, getIP(echo.New().NewContext(req, httptest.NewRecorder())))
		})
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 5})(okHandler)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		limited   int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			c, rec := requestFrom(e, "192.168.1.100:12345", nil)
			err := handler(c)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				return
			}
			switch rec.Code {
			case http.StatusOK:
				succeeded++
			case http.StatusTooManyRequests:
				limited++
			}
		}()
	}
	wg.Wait()

	assert.Greater(t, succeeded, 0)
	assert.Greater(t, limited, 0)
	assert.Equal(t, 20, succeeded+limited)
}
