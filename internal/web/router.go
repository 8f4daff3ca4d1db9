package web

import (
	"net/http"

	"parpass-api/internal/metrics"
	"parpass-api/internal/models/config"
	"parpass-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	courseService         service.CourseService
	memberService         service.MemberService
	healthPlanService     service.HealthPlanService
	checkInService        service.CheckInService
	recommendationService service.RecommendationService
	favoriteService       service.FavoriteService
	reviewService         service.ReviewService
	statsService          service.StatsService
	logger                *zap.Logger
}

func NewHandler(
	courseService service.CourseService,
	memberService service.MemberService,
	healthPlanService service.HealthPlanService,
	checkInService service.CheckInService,
	recommendationService service.RecommendationService,
	favoriteService service.FavoriteService,
	reviewService service.ReviewService,
	statsService service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		courseService:         courseService,
		memberService:         memberService,
		healthPlanService:     healthPlanService,
		checkInService:        checkInService,
		recommendationService: recommendationService,
		favoriteService:       favoriteService,
		reviewService:         reviewService,
		statsService:          statsService,
		logger:                logger,
	}
}

func NewRouter(h *Handler, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger, m))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", h.Root)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.ListCourses)
			r.Post("/", h.CreateCourse)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetCourse)
				r.Get("/reviews", h.GetCourseReviews)
				r.Post("/reviews", h.SubmitReview)
				r.Get("/rating", h.GetCourseRating)
			})
		})

		r.Route("/members", func(r chi.Router) {
			r.Post("/", h.CreateMember)
			r.Get("/code/{code}", h.GetMemberByCode)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetMember)
				r.Get("/usage", h.GetUsage)
				r.Get("/history", h.GetHistory)
				r.Get("/recommendations", h.GetRecommendations)
				r.Get("/favorites", h.GetFavorites)
				r.Post("/favorites", h.AddFavorite)
				r.Delete("/favorites/{courseId}", h.RemoveFavorite)
			})
		})

		r.Post("/check-in", h.CheckIn)

		r.Get("/health-plans", h.ListHealthPlans)
		r.Post("/health-plans", h.CreateHealthPlan)
		r.Get("/plan-tiers", h.ListPlanTiers)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/overview", h.StatsOverview)
			r.Get("/popular-courses", h.PopularCourses)
			r.Get("/rounds-by-month", h.RoundsByMonth)
			r.Get("/tier-breakdown", h.TierBreakdown)
			r.Get("/top-members", h.TopMembers)
		})
	})

	return r
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "ParPass API is running"})
}
