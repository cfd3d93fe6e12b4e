package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arguehive/debatehub-backend/api/controllers"
	"github.com/arguehive/debatehub-backend/api/middleware"
	"github.com/arguehive/debatehub-backend/internal/analytics"
	"github.com/arguehive/debatehub-backend/internal/auth"
	"github.com/arguehive/debatehub-backend/internal/debates"
	"github.com/arguehive/debatehub-backend/internal/hub"
	"github.com/arguehive/debatehub-backend/internal/store"
	"github.com/arguehive/debatehub-backend/internal/topics"
	"github.com/arguehive/debatehub-backend/pkg/config"
	"github.com/arguehive/debatehub-backend/pkg/logger"
	"github.com/arguehive/debatehub-backend/pkg/metrics"
	"github.com/arguehive/debatehub-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config *config.Config
	Logger *logger.Logger

	Store *store.Store
	Hub   *hub.Hub

	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	AuthService      auth.Service
	DebateService    debates.Service
	TopicService     topics.Service
	AnalyticsService analytics.Service
}

// NewRouter assembles the full route tree.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)
	loginLimit := passThrough
	registerLimit := passThrough
	if p.Redis != nil {
		loginLimit = middleware.AuthRateLimit(loginPolicy, p.Redis, logg)
		registerLimit = middleware.AuthRateLimit(registerPolicy, p.Redis, logg)
	}

	var redisPinger controllers.Pinger
	if p.Redis != nil {
		redisPinger = p.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(registerLimit).Post("/register", controllers.AuthRegister(p.AuthService, logg))
		r.With(loginLimit).Post("/login", controllers.AuthLogin(p.AuthService, logg))
	})

	r.Route("/api/admin/v1/auth", func(r chi.Router) {
		if !cfg.App.IsProd() {
			r.Post("/register", controllers.AdminAuthRegister(p.AuthService, logg))
		}
		r.With(loginLimit).Post("/login", controllers.AdminAuthLogin(p.AuthService, logg))
	})

	r.Route("/api/v1/debates", func(r chi.Router) {
		r.Get("/", controllers.DebateList(p.DebateService, logg))
		r.Get("/{debateId}", controllers.DebateDetail(p.DebateService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Store, logg))
			r.Post("/", controllers.DebateCreate(p.DebateService, logg))
			r.Post("/{debateId}/participate", controllers.DebateParticipate(p.DebateService, logg))
			r.Post("/{debateId}/vote/{argumentId}", controllers.DebateVote(p.DebateService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin", logg))
				r.Post("/{debateId}/summary", controllers.DebateSummary(p.DebateService, logg))
			})
		})
	})

	r.Route("/api/v1/topics", func(r chi.Router) {
		r.Get("/", controllers.TopicList(p.TopicService, logg))
		r.Get("/{topicId}", controllers.TopicDetail(p.TopicService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Store, logg))
			r.Use(middleware.RequireRole("admin", logg))
			r.Post("/", controllers.TopicCreate(p.TopicService, logg))
			r.Delete("/{topicId}", controllers.TopicDelete(p.TopicService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Store, logg))
		r.Use(middleware.RequireRole("admin", logg))
		r.Get("/analytics", controllers.AdminAnalytics(p.AnalyticsService, logg))
		r.Route("/debates", func(r chi.Router) {
			r.Get("/", controllers.AdminDebateList(p.DebateService, logg))
			r.Delete("/{debateId}", controllers.AdminDebateDelete(p.DebateService, logg))
		})
	})

	r.Get("/ws/debates/{debateId}", controllers.DebateRoomWS(p.Hub, p.DebateService, logg))

	return r
}

func passThrough(next http.Handler) http.Handler {
	return next
}
