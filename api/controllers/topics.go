package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arguehive/debatehub-backend/api/middleware"
	"github.com/arguehive/debatehub-backend/api/responses"
	"github.com/arguehive/debatehub-backend/api/validators"
	"github.com/arguehive/debatehub-backend/internal/topics"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

func TopicList(svc topics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

func TopicDetail(svc topics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic, err := svc.Get(r.Context(), chi.URLParam(r, "topicId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, topic)
	}
}

// TopicCreate adds a topic. Admin only.
func TopicCreate(svc topics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body topics.CreateTopicRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		topic, err := svc.Create(r.Context(), middleware.UserIDFromContext(r.Context()), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, topic)
	}
}

// TopicDelete removes a topic. Admin only.
func TopicDelete(svc topics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topicID := chi.URLParam(r, "topicId")
		if err := svc.Delete(r.Context(), topicID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"topicId": topicID, "message": "topic deleted"})
	}
}
