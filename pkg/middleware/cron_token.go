package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// CronTokenMiddleware protege as rotas de cron com um token estático (CRON_TOKEN).
// Com o token vazio as rotas ficam abertas.
func CronTokenMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			if subtle.ConstantTimeCompare([]byte(tokenString), []byte(token)) != 1 {
				logrus.WithField("path", r.URL.Path).Warning("Tentativa de acesso às rotas de cron com token inválido")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
