package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < burstSize; i++ {
		require.True(t, rl.Allow("user-1"), "request %d within burst", i)
	}
	require.False(t, rl.Allow("user-1"))

	// A different key has its own budget.
	require.True(t, rl.Allow("user-2"))
}

func TestMiddlewareKeysByUserID(t *testing.T) {
	e := echo.New()
	e.GET("/report", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimiter().Middleware())

	exhaust := func(userID string) int {
		var last int
		for i := 0; i < burstSize+1; i++ {
			req := httptest.NewRequest(http.MethodGet, "/report?user_id="+userID, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			last = rec.Code
		}
		return last
	}

	require.Equal(t, http.StatusTooManyRequests, exhaust("1"))
	// The second user's first request is unaffected.
	req := httptest.NewRequest(http.MethodGet, "/report?user_id=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
