package middlewares

import (
	"errors"
	"heallink-service/internal/app/config"
	"heallink-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})

	t.Run("panicking handler answers 500 instead of dropping the connection", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(errors.New("broken invariant"))
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/doctor/profile", nil))

		assert.Equal(t, constvars.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
	})

	t.Run("non-error panic values are handled too", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("plain string")
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/patient/profile", nil))

		assert.Equal(t, constvars.StatusInternalServerError, rr.Code)
	})

	t.Run("healthy handler passes through untouched", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
