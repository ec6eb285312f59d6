package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// RequestIDHeader is reused when the caller sends one, generated otherwise.
const RequestIDHeader = "X-Request-ID"

// RequestID tags the response header and the request logger with the id.
// It must run after hlog.NewHandler so a logger is already in the context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		log := zerolog.Ctx(r.Context()).With().Str("request_id", id).Logger()
		ctx := log.WithContext(r.Context())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLog writes one line per request once the response is complete.
func AccessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = hlog.FromRequest(r).Error()
		case status >= 400:
			e = hlog.FromRequest(r).Warn()
		default:
			e = hlog.FromRequest(r).Info()
		}
		e.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})
}
