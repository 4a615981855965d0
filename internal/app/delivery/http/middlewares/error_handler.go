package middlewares

import (
	"fmt"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"
	"heallink-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a handler panic into a 500 response so one bad
// request cannot take the process down.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			recovered, ok := rec.(error)
			if !ok {
				recovered = fmt.Errorf("%v", rec)
			}

			m.Log.Error("panic recovered",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(recovered),
				zap.Stack("stack"),
			)

			utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithError(
				recovered,
				constvars.StatusInternalServerError,
				constvars.ErrClientSomethingWrongWithApplication,
				"panic recovered in HTTP handler",
			))
		}()
		next.ServeHTTP(w, r)
	})
}
