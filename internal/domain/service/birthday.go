package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/rs/zerolog/log"
)

type birthdayService struct {
	dm       contract.DataManager
	platform contract.ChatPlatform
	cfg      Config
	now      clock
}

func newBirthday(dm contract.DataManager, platform contract.ChatPlatform, cfg Config) *birthdayService {
	return &birthdayService{
		dm:       dm,
		platform: platform,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *birthdayService) SetBirthday(ctx context.Context, userID, username string, day, month int, year *int) (*entity.Birthday, error) {
	currentYear := s.now().In(s.cfg.Location).Year()
	if err := validateBirthday(day, month, year, currentYear); err != nil {
		return nil, err
	}

	birthday := &entity.Birthday{
		UserID:   userID,
		Username: username,
		Day:      day,
		Month:    month,
		Year:     year,
	}

	if _, err := s.dm.Birthday().Set(ctx, birthday); err != nil {
		return nil, fmt.Errorf("failed to set birthday: %w", err)
	}

	log.Info().
		Str("user_id", userID).
		Str("username", username).
		Str("date", birthday.DateString()).
		Msg("birthday set")

	return birthday, nil
}

func (s *birthdayService) GetBirthday(ctx context.Context, userID string) (*entity.Birthday, error) {
	birthday, err := s.dm.Birthday().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get birthday: %w", err)
	}
	return birthday, nil
}

func (s *birthdayService) ListBirthdays(ctx context.Context) ([]*entity.Birthday, error) {
	birthdays, err := s.dm.Birthday().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	return birthdays, nil
}

// SendTestAnnouncement posts a synthetic announcement to the configured
// channel. Nothing is stored.
func (s *birthdayService) SendTestAnnouncement(ctx context.Context) (*entity.Announcement, error) {
	channel, err := s.platform.ResolveChannel(ctx, s.cfg.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve announcement channel: %w", err)
	}
	if channel == nil {
		return nil, domain.ExternalError("resolve announcement channel "+s.cfg.ChannelID, domain.ErrChannelNotFound)
	}

	age := s.now().In(s.cfg.Location).Year() - domain.TestBirthYear
	announcement := entity.Announcement{
		UserID:   "",
		Username: domain.TestUsername,
		Age:      &age,
		Test:     true,
	}

	if err := s.platform.SendAnnouncement(ctx, channel, announcement); err != nil {
		return nil, fmt.Errorf("failed to send test announcement: %w", err)
	}
	metrics.AnnouncementsTotal.WithLabelValues("test").Inc()

	log.Info().Str("channel_id", channel.ID).Int("age", age).Msg("test birthday announcement sent")

	return &announcement, nil
}
