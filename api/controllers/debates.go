package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arguehive/debatehub-backend/api/middleware"
	"github.com/arguehive/debatehub-backend/api/responses"
	"github.com/arguehive/debatehub-backend/api/validators"
	"github.com/arguehive/debatehub-backend/internal/debates"
	"github.com/arguehive/debatehub-backend/internal/store"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

// DebateList serves the public paginated debate listing.
func DebateList(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", store.DefaultPageSize, 1, store.MaxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), page, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func DebateDetail(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		debate, err := svc.Get(r.Context(), chi.URLParam(r, "debateId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, debate)
	}
}

// DebateCreate starts a debate and seeds both sides with AI arguments.
func DebateCreate(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body debates.CreateDebateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		debate, err := svc.Create(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, debate)
	}
}

func DebateParticipate(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body debates.ParticipateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		arg, err := svc.Participate(r.Context(), userID, chi.URLParam(r, "debateId"), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, arg)
	}
}

func DebateVote(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		result, err := svc.Vote(r.Context(), userID, chi.URLParam(r, "debateId"), chi.URLParam(r, "argumentId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// DebateSummary regenerates the stored AI summary. Admin only.
func DebateSummary(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Summarize(r.Context(), chi.URLParam(r, "debateId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func AdminDebateList(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.ListAll(r.Context()))
	}
}

func AdminDebateDelete(svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		debateID := chi.URLParam(r, "debateId")
		if err := svc.Delete(r.Context(), debateID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"debateId": debateID, "message": "debate deleted"})
	}
}
