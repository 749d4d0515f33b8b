package auth

import (
	"net/http"
	"slices"

	"brokerage/pkg/logger"
)

// Middleware пропускает запрос только с валидным HS256 токеном одной из ролей.
func Middleware(log handlerLogger, secret string, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := ParseBearer(r.Header.Get("Authorization"), secret)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("unauthorized request")
				writeError(log, w, http.StatusUnauthorized, `{"error":"Unauthorized"}`)
				return
			}

			if len(roles) > 0 && !slices.Contains(roles, principal.Role) {
				log.With(
					logger.NewField("subject", principal.Subject),
					logger.NewField("role", principal.Role),
					logger.NewField("path", r.URL.Path),
				).Warn("forbidden request")
				writeError(log, w, http.StatusForbidden, `{"error":"Forbidden"}`)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func writeError(log handlerLogger, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("failed to write auth response")
	}
}
