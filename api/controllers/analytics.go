package controllers

import (
	"net/http"

	"github.com/arguehive/debatehub-backend/api/responses"
	"github.com/arguehive/debatehub-backend/internal/analytics"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

// AdminAnalytics serves the platform rollup. Admin only.
func AdminAnalytics(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}
