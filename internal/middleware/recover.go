package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-demo-api/internal/platform/apierror"
	"pet-demo-api/internal/platform/logger"
)

// Recover convierte un panic en un 500 con el envelope JSON.
// http.ErrAbortHandler se re-lanza: net/http lo usa para cortar la conexión.
// Si el handler ya escribió headers, el panic solo se loguea.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}

				log.Error("panic recovered", map[string]any{
					"request_id":   GetRequestID(r.Context()),
					"method":       r.Method,
					"path":         r.URL.Path,
					"error":        err.Error(),
					"stack":        string(debug.Stack()),
					"header_wrote": ww.Status() != 0,
				})

				if ww.Status() != 0 {
					return
				}
				apierror.Write(ww, apierror.Internal(err))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
