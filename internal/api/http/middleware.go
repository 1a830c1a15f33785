package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/AbdelrahmanBayoumi/library-api/internal/logger"
	"github.com/AbdelrahmanBayoumi/library-api/internal/security"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an id, echoed in the response headers and
// attached to the request logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", rec.Header().Get(requestIDHeader),
		)
	})
}

// Authenticator guards mutating endpoints with a bearer token issued by the
// login endpoint.
type Authenticator struct {
	tokens security.TokenManager
}

func NewAuthenticator(tokens security.TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

func (a *Authenticator) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}
		if _, err := a.tokens.Validate(token); err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		next(w, r)
	}
}
