package checkin_service

import (
	"context"

	"parpass-api/internal/models"
	"parpass-api/internal/service"
)

// authorization accumulates what the rules have loaded so far.
type authorization struct {
	memberID    string
	courseID    string
	holesPlayed int

	member     *models.MemberWithTier
	roundsUsed int
	course     *models.Course

	failedRule string
}

type rule struct {
	name  string
	check func(ctx context.Context, auth *authorization) error
}

// rules are evaluated in order; the first failure wins.
func (s *checkInService) rules() []rule {
	return []rule{
		{name: "member_not_found", check: s.loadMember},
		{name: "member_inactive", check: requireActiveMember},
		{name: "quota_exceeded", check: s.checkQuota},
		{name: "course_not_found", check: s.loadCourse},
		{name: "tier_mismatch", check: requireTierAccess},
		{name: "invalid_holes_played", check: requirePositiveHoles},
	}
}

func (s *checkInService) authorize(ctx context.Context, auth *authorization) error {
	for _, r := range s.rules() {
		if err := r.check(ctx, auth); err != nil {
			if service.KindOf(err) != 0 {
				auth.failedRule = r.name
			}
			return err
		}
	}
	return nil
}

func (s *checkInService) loadMember(ctx context.Context, auth *authorization) error {
	member, err := s.memberRepo.GetWithTier(ctx, auth.memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return service.ErrMemberNotFound
	}
	auth.member = member
	return nil
}

func requireActiveMember(_ context.Context, auth *authorization) error {
	if !auth.member.IsActive() {
		return service.ErrMemberInactive
	}
	return nil
}

// checkQuota blocks once the member has used every round, not only past it.
func (s *checkInService) checkQuota(ctx context.Context, auth *authorization) error {
	used, err := s.checkInRepo.CountThisMonth(ctx, auth.member.ID)
	if err != nil {
		return err
	}
	auth.roundsUsed = used
	if used >= auth.member.MonthlyRounds {
		return service.ErrQuotaExceeded
	}
	return nil
}

func (s *checkInService) loadCourse(ctx context.Context, auth *authorization) error {
	course, err := s.courseRepo.GetByID(ctx, auth.courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return service.ErrCourseNotFound
	}
	auth.course = course
	return nil
}

// Only a core member on a premium course is refused.
func requireTierAccess(_ context.Context, auth *authorization) error {
	if auth.course.TierRequired == models.TierPremium && auth.member.Tier == models.TierCore {
		return service.ErrTierMismatch
	}
	return nil
}

func requirePositiveHoles(_ context.Context, auth *authorization) error {
	if auth.holesPlayed <= 0 {
		return service.ErrInvalidHolesPlayed
	}
	return nil
}
