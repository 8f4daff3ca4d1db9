package main

import (
	"log"

	"parpass-api/internal/metrics"
	"parpass-api/internal/models/config"
	"parpass-api/internal/repository/checkin"
	"parpass-api/internal/repository/course"
	"parpass-api/internal/repository/favorite"
	"parpass-api/internal/repository/healthplan"
	"parpass-api/internal/repository/member"
	"parpass-api/internal/repository/review"
	"parpass-api/internal/repository/stats"
	"parpass-api/internal/service"
	checkin_service "parpass-api/internal/service/checkin"
	course_service "parpass-api/internal/service/course"
	favorite_service "parpass-api/internal/service/favorite"
	healthplan_service "parpass-api/internal/service/healthplan"
	member_service "parpass-api/internal/service/member"
	recommendation_service "parpass-api/internal/service/recommendation"
	review_service "parpass-api/internal/service/review"
	stats_service "parpass-api/internal/service/stats"
	"parpass-api/internal/web"
	database "parpass-api/pkg"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("❌ failed to load config: %v", err)
	}

	fx.New(
		fx.Supply(config.AppConfig),
		fx.StopTimeout(config.AppConfig.ShutdownTimeout),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			newLogger,
			newDatabase,
			newNotifier,
			metrics.New,
			fx.Annotate(database.NewTransactor, fx.As(new(service.Transactor))),
		),
		// repositories
		fx.Provide(
			member.NewMemberRepository,
			healthplan.NewHealthPlanRepository,
			course.NewCourseRepository,
			checkin.NewCheckInRepository,
			favorite.NewFavoriteRepository,
			review.NewReviewRepository,
			stats.NewStatsRepository,
		),
		// services
		fx.Provide(
			member_service.NewMemberService,
			healthplan_service.NewHealthPlanService,
			course_service.NewCourseService,
			checkin_service.NewCheckInService,
			recommendation_service.NewRecommendationService,
			favorite_service.NewFavoriteService,
			review_service.NewReviewService,
			stats_service.NewStatsService,
		),
		fx.Provide(
			web.NewHandler,
			web.NewRouter,
			newHTTPServer,
		),
		fx.Invoke(registerHTTPServer),
	).Run()
}
