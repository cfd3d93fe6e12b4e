package controllers

import (
	"context"
	"net/http"

	"github.com/arguehive/debatehub-backend/api/responses"
	"github.com/arguehive/debatehub-backend/pkg/config"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

const envHeader = "X-DebateHub-Env"

// Pinger reports backend reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness. The in-memory store needs no probe; only
// optional backends (redis) are checked.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if redisPinger != nil {
			if err := redisPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
