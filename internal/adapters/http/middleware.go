package httpadapter

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"tradeup/internal/api"
)

// echoRequestID returns the id assigned by middleware.RequestID to the caller.
// The inbound X-Request-Id is kept when present.
func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(middleware.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

func requestIDFromContext(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func loggingMiddleware(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			entry := log.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  requestIDFromContext(r.Context()),
			})
			switch {
			case status >= 500:
				entry.Error("http request completed")
			case status >= 400:
				entry.Warn("http request completed")
			default:
				entry.Debug("http request completed")
			}
		})
	}
}

func recoverMiddleware(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(logrus.Fields{
						"panic":      rec,
						"path":       r.URL.Path,
						"request_id": requestIDFromContext(r.Context()),
					}).Error("panic recovered")
					writeError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// adminAuth guards operations declaring bearerAuth. It requires
// "Authorization: Bearer <credential>" where the credential is either the
// shared admin token or, when secret is set, a signed admin JWT. With neither
// configured the admin surface is locked.
func adminAuth(token string, secret []byte, log *logrus.Entry) api.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, secured := r.Context().Value(api.BearerAuthScopes).([]string); !secured {
				next.ServeHTTP(w, r)
				return
			}
			const prefix = "Bearer "
			h := r.Header.Get("Authorization")
			got := strings.TrimSpace(strings.TrimPrefix(h, prefix))
			if !strings.HasPrefix(h, prefix) || got == "" {
				writeError(w, r, http.StatusUnauthorized, "unauthorized", "missing or invalid admin token")
				return
			}
			if token != "" && subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1 {
				next.ServeHTTP(w, r)
				return
			}
			if len(secret) > 0 {
				err := verifyAdminJWT(got, secret)
				if err == nil {
					next.ServeHTTP(w, r)
					return
				}
				log.WithError(err).WithField("request_id", requestIDFromContext(r.Context())).Debug("admin jwt rejected")
			}
			writeError(w, r, http.StatusUnauthorized, "unauthorized", "missing or invalid admin token")
		})
	}
}

// throttle rejects the named operations once the shared limiter is exhausted.
func throttle(l *rate.Limiter, operations ...string) api.StrictMiddlewareFunc {
	limited := make(map[string]bool, len(operations))
	for _, op := range operations {
		limited[op] = true
	}
	return func(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
		if l == nil || !limited[operationID] {
			return f
		}
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				return nil, errRateLimited
			}
			return f(ctx, w, r, request)
		}
	}
}
