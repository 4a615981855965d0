package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCredentialLimiter(t *testing.T) {
	limiter := NewCredentialLimiter(3, time.Minute)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(remoteAddr string) int {
		request := httptest.NewRequest(http.MethodPost, "/login", nil)
		request.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request)
		return rr.Code
	}

	t.Run("burst is allowed, overflow blocks", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, serve("10.0.0.1:1234"))
		}
		assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:1234"))

		// Once blocked, the IP stays blocked for the configured time.
		assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:1234"))
	})

	t.Run("other IPs are unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve("10.0.0.2:1234"))
	})
}
