package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é qualquer dependência que responde a um ping (banco, redis)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 com a hora atual; com dependências configuradas,
// responde 503 quando alguma não responde
func HealthcheckHandler(dependencies map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := make(map[string]string, len(dependencies))
		status := http.StatusOK

		for name, dependency := range dependencies {
			if err := dependency.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("error responding to healthcheck")
				checks[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "up"
		}

		writeJSON(w, r, status, map[string]any{
			"time":         time.Now().Format(time.RFC3339),
			"dependencies": checks,
		})
	})
}

// PingerFunc adapta uma função para a interface Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}
