package checkin_service

import (
	"context"
	"sync"
	"time"

	"parpass-api/internal/metrics"
	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
	database "parpass-api/pkg"

	"go.uber.org/zap"
)

const (
	historyLimit = 50

	// notifyTimeout bounds a notice sent after the response has gone out.
	notifyTimeout = 15 * time.Second
)

type checkInService struct {
	memberRepo  repository.MemberRepository
	courseRepo  repository.CourseRepository
	checkInRepo repository.CheckInRepository
	transactor  service.Transactor
	notifier    service.CheckInNotifier
	metrics     *metrics.Metrics
	logger      *zap.Logger

	// notices tracks notifications still in flight.
	notices sync.WaitGroup
}

func NewCheckInService(
	memberRepo repository.MemberRepository,
	courseRepo repository.CourseRepository,
	checkInRepo repository.CheckInRepository,
	transactor service.Transactor,
	notifier service.CheckInNotifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) service.CheckInService {
	return &checkInService{
		memberRepo:  memberRepo,
		courseRepo:  courseRepo,
		checkInRepo: checkInRepo,
		transactor:  transactor,
		notifier:    notifier,
		metrics:     m,
		logger:      logger,
	}
}

// CheckIn runs the authorization rules and the insert in one serializable
// transaction, so two concurrent check-ins at the quota boundary cannot both
// commit.
func (s *checkInService) CheckIn(ctx context.Context, memberID, courseID string, holesPlayed int) (*models.CheckInResult, error) {
	var (
		auth   *authorization
		result *models.CheckInResult
	)
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		auth = &authorization{memberID: memberID, courseID: courseID, holesPlayed: holesPlayed}
		if err := s.authorize(ctx, auth); err != nil {
			return err
		}

		checkIn := &models.CheckIn{
			MemberID:    auth.member.ID,
			CourseID:    auth.course.ID,
			HolesPlayed: holesPlayed,
		}
		if err := s.checkInRepo.Create(ctx, checkIn); err != nil {
			return err
		}

		result = &models.CheckInResult{
			CheckIn:         checkIn,
			RoundsRemaining: auth.member.MonthlyRounds - auth.roundsUsed - 1,
		}
		return nil
	})
	if err != nil {
		if auth != nil && auth.failedRule != "" {
			s.metrics.RecordCheckIn(auth.failedRule)
			s.logger.Info("check-in denied",
				zap.String("member_id", memberID),
				zap.String("course_id", courseID),
				zap.String("rule", auth.failedRule),
				zap.String("reason", err.Error()),
			)
		} else if database.IsSerializationFailure(err) {
			s.metrics.RecordCheckIn(metrics.OutcomeConflict)
			s.logger.Warn("check-in aborted by a concurrent transaction",
				zap.String("member_id", memberID),
				zap.Error(err),
			)
		} else {
			s.metrics.RecordCheckIn(metrics.OutcomeError)
		}
		return nil, err
	}

	s.metrics.RecordCheckIn(metrics.OutcomeSuccess)
	s.logger.Info("check-in recorded",
		zap.String("check_in_id", result.CheckIn.ID),
		zap.String("member_id", memberID),
		zap.String("course_id", courseID),
		zap.Int("rounds_remaining", result.RoundsRemaining),
	)

	s.notify(ctx, auth.member, auth.course, result)
	return result, nil
}

// notify sends the notice in the background. It outlives the request but
// not notifyTimeout.
func (s *checkInService) notify(ctx context.Context, member *models.MemberWithTier, course *models.Course, result *models.CheckInResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)

	s.notices.Add(1)
	go func() {
		defer s.notices.Done()
		defer cancel()

		if err := s.notifier.NotifyCheckIn(ctx, member, course, result); err != nil {
			s.logger.Warn("check-in notification failed",
				zap.String("check_in_id", result.CheckIn.ID),
				zap.Error(err),
			)
		}
	}()
}

func (s *checkInService) RoundsUsed(ctx context.Context, memberID string) (int, error) {
	return s.checkInRepo.CountThisMonth(ctx, memberID)
}

func (s *checkInService) GetHistory(ctx context.Context, memberID string) ([]models.CheckInWithCourse, error) {
	return s.checkInRepo.GetHistory(ctx, memberID, historyLimit)
}
