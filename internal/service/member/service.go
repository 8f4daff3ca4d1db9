package member_service

import (
	"context"
	"fmt"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
	database "parpass-api/pkg"

	"go.uber.org/zap"
)

const (
	codePrefix      = "PP"
	codeBase        = 100000
	maxCodeAttempts = 5

	parpassCodeConstraint = "members_parpass_code_key"
)

type memberService struct {
	memberRepo repository.MemberRepository
	logger     *zap.Logger
}

func NewMemberService(memberRepo repository.MemberRepository, logger *zap.Logger) service.MemberService {
	return &memberService{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// CreateMember numbers the new member after the current member count and
// relies on the unique constraint on parpass_code: if another insert took
// the code first, the next number is tried.
func (s *memberService) CreateMember(ctx context.Context, member *models.Member) error {
	count, err := s.memberRepo.Count(ctx)
	if err != nil {
		return err
	}

	member.Status = models.MemberStatusActive
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		member.ParpassCode = FormatParpassCode(count + attempt)

		err = s.memberRepo.Create(ctx, member)
		if err == nil {
			return nil
		}
		if !database.IsUniqueViolation(err, parpassCodeConstraint) {
			return err
		}
		s.logger.Warn("parpass code already taken",
			zap.String("parpass_code", member.ParpassCode),
			zap.Int("attempt", attempt),
		)
	}

	return fmt.Errorf("allocate parpass code after %d attempts: %w", maxCodeAttempts, err)
}

func (s *memberService) GetByCode(ctx context.Context, code string) (*models.MemberWithTier, error) {
	member, err := s.memberRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, service.ErrMemberNotFound
	}
	return member, nil
}

func (s *memberService) GetByID(ctx context.Context, id string) (*models.MemberWithTier, error) {
	member, err := s.memberRepo.GetWithTier(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, service.ErrMemberNotFound
	}
	return member, nil
}

// FormatParpassCode renders the n-th member code: 1 -> PP100001.
func FormatParpassCode(n int) string {
	return fmt.Sprintf("%s%06d", codePrefix, codeBase+n)
}
