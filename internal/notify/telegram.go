package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"parpass-api/internal/models"
	"parpass-api/internal/models/config"
	"parpass-api/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// sendTimeout bounds each Bot API call; the client ignores contexts.
const sendTimeout = 5 * time.Second

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier messages every admin chat about each check-in.
type TelegramNotifier struct {
	api      sender
	adminIDs []int64
}

// NewCheckInNotifier returns a no-op notifier when no bot token is configured.
func NewCheckInNotifier(cfg config.BotConfig, logger *zap.Logger) (service.CheckInNotifier, error) {
	if cfg.Token == "" || len(cfg.AdminIDs) == 0 {
		logger.Info("telegram check-in notifications disabled")
		return Noop{}, nil
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, newHTTPClient())
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	api.Debug = cfg.Debug

	logger.Info("telegram check-in notifications enabled",
		zap.String("bot", api.Self.UserName),
		zap.Int64s("admin_ids", cfg.AdminIDs),
	)
	return &TelegramNotifier{api: api, adminIDs: cfg.AdminIDs}, nil
}

func (n *TelegramNotifier) NotifyCheckIn(ctx context.Context, member *models.MemberWithTier, course *models.Course, result *models.CheckInResult) error {
	text := FormatCheckIn(member, course, result)

	var errs error
	for _, chatID := range n.adminIDs {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if _, err := n.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}
	return errs
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: sendTimeout}
}

func FormatCheckIn(member *models.MemberWithTier, course *models.Course, result *models.CheckInResult) string {
	return fmt.Sprintf("⛳ %s %s (%s) checked in at %s, %s: %d holes, %d of %d rounds left this month",
		member.FirstName,
		member.LastName,
		member.ParpassCode,
		course.Name,
		course.City,
		result.CheckIn.HolesPlayed,
		result.RoundsRemaining,
		member.MonthlyRounds,
	)
}

type Noop struct{}

func (Noop) NotifyCheckIn(context.Context, *models.MemberWithTier, *models.Course, *models.CheckInResult) error {
	return nil
}
