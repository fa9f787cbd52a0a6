package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1, 2)

	assert.True(t, limiter.allow("192.0.2.1"))
	assert.True(t, limiter.allow("192.0.2.1"))
	assert.False(t, limiter.allow("192.0.2.1"), "버스트를 모두 소진하면 거부되어야 합니다")

	assert.True(t, limiter.allow("192.0.2.2"), "IP별로 독립적인 버킷을 사용해야 합니다")
	assert.Equal(t, 2, limiter.size())
}

func TestIPRateLimiter_Eviction(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1, 1)
	for i := range maxIPRateLimiters + 10 {
		limiter.allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}

	assert.Equal(t, maxIPRateLimiters, limiter.size())
}

func TestRateLimit_InvalidArguments(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { RateLimit(0, 1) })
	assert.Panics(t, func() { RateLimit(1, 0) })
	assert.Panics(t, func() { RateLimit(-1, -1) })
	assert.NotPanics(t, func() { RateLimit(1, 1) })
}

func TestRateLimit_Middleware(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := RateLimit(1, 1)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	newContext := func() echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "198.51.100.7:5555"
		return e.NewContext(req, httptest.NewRecorder())
	}

	assert.NoError(t, h(newContext()))

	c := newContext()
	err := h(c)
	assert.ErrorIs(t, err, ErrRateLimitExceeded)
	assert.Equal(t, "1", c.Response().Header().Get(echo.HeaderRetryAfter))

	var he *echo.HTTPError
	if assert.ErrorAs(t, err, &he) {
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	}
}
