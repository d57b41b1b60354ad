package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type reconciler struct {
	dm       contract.DataManager
	platform contract.ChatPlatform
	cfg      Config
	now      clock
}

func newReconciler(dm contract.DataManager, platform contract.ChatPlatform, cfg Config) *reconciler {
	return &reconciler{
		dm:       dm,
		platform: platform,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CheckBirthdays runs one daily check for the local date in the configured
// timezone: role reconciliation first, then one announcement per birthday.
func (r *reconciler) CheckBirthdays(ctx context.Context) (err error) {
	started := time.Now()
	local := r.now().In(r.cfg.Location)
	month, day, year := int(local.Month()), local.Day(), local.Year()

	logger := log.With().
		Str("run_id", uuid.NewString()).
		Str("date", local.Format("2006-01-02")).
		Logger()

	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultError
		}
		metrics.BirthdayChecksTotal.WithLabelValues(result).Inc()
		metrics.BirthdayCheckDuration.Observe(time.Since(started).Seconds())
	}()

	logger.Info().Msg("checking birthdays")

	birthdays, err := r.dm.Birthday().GetByDate(ctx, month, day)
	if err != nil {
		return fmt.Errorf("failed to get today's birthdays: %w", err)
	}

	channel, err := r.platform.ResolveChannel(ctx, r.cfg.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to resolve announcement channel: %w", err)
	}
	if channel == nil {
		return domain.ExternalError("resolve announcement channel "+r.cfg.ChannelID, domain.ErrChannelNotFound)
	}

	if r.cfg.RoleID != "" {
		result := r.syncRole(ctx, logger, channel.GuildID, birthdays)
		logger.Info().
			Int("added", result.Added).
			Int("removed", result.Removed).
			Int("missing", result.Missing).
			Int("failed", result.Failed).
			Msg("birthday role synced")
	}

	if len(birthdays) == 0 {
		logger.Info().Msg("no birthdays today")
		return nil
	}

	for _, announcement := range BuildAnnouncements(birthdays, year) {
		if err := r.platform.SendAnnouncement(ctx, channel, announcement); err != nil {
			return fmt.Errorf("failed to announce birthday of %s: %w", announcement.UserID, err)
		}
		metrics.AnnouncementsTotal.WithLabelValues("birthday").Inc()
		logger.Info().
			Str("user_id", announcement.UserID).
			Str("username", announcement.Username).
			Msg("birthday announced")
	}

	return nil
}

func (r *reconciler) syncRole(ctx context.Context, logger zerolog.Logger, guildID string, birthdays []*entity.Birthday) (result entity.RoleSyncResult) {
	role, err := r.platform.FetchRole(ctx, guildID, r.cfg.RoleID)
	if err != nil {
		logger.Error().Err(err).Str("role_id", r.cfg.RoleID).Msg("failed to fetch birthday role")
		return result
	}
	if role == nil {
		logger.Warn().Str("role_id", r.cfg.RoleID).Msg("birthday role not found, skipping role sync")
		return result
	}

	current, err := r.platform.ListRoleMembers(ctx, guildID, role.ID)
	if err != nil {
		logger.Error().Err(err).Str("role_id", role.ID).Msg("failed to list birthday role members")
		return result
	}

	delta := ComputeRoleDelta(current, birthdays)
	if delta.Empty() {
		return result
	}

	for _, userID := range delta.ToRemove {
		err := r.platform.RemoveRole(ctx, guildID, userID, role.ID)
		r.recordRoleChange(logger, &result, "remove", userID, err)
	}
	for _, userID := range delta.ToAdd {
		err := r.platform.AddRole(ctx, guildID, userID, role.ID)
		r.recordRoleChange(logger, &result, "add", userID, err)
	}

	return result
}

func (r *reconciler) recordRoleChange(logger zerolog.Logger, result *entity.RoleSyncResult, action, userID string, err error) {
	switch {
	case err == nil:
		if action == "add" {
			result.Added++
		} else {
			result.Removed++
		}
		metrics.RoleChangesTotal.WithLabelValues(action, metrics.ResultSuccess).Inc()
		logger.Info().Str("user_id", userID).Str("action", action).Msg("birthday role updated")
	case errors.Is(err, contract.ErrMemberNotFound):
		result.Missing++
		metrics.RoleChangesTotal.WithLabelValues(action, metrics.ResultMissing).Inc()
		logger.Warn().Str("user_id", userID).Str("action", action).Msg("member no longer in server")
	default:
		result.Failed++
		metrics.RoleChangesTotal.WithLabelValues(action, metrics.ResultError).Inc()
		logger.Error().Err(err).Str("user_id", userID).Str("action", action).Msg("failed to update birthday role")
	}
}

// ComputeRoleDelta returns who must gain and who must lose the birthday role
// so that exactly today's birthday users hold it. Input order is kept and
// duplicates are dropped.
func ComputeRoleDelta(current []string, today []*entity.Birthday) entity.RoleDelta {
	todaySet := make(map[string]struct{}, len(today))
	for _, b := range today {
		todaySet[b.UserID] = struct{}{}
	}
	currentSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	var delta entity.RoleDelta

	seen := make(map[string]struct{}, len(current))
	for _, id := range current {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := todaySet[id]; !ok {
			delta.ToRemove = append(delta.ToRemove, id)
		}
	}

	clear(seen)
	for _, b := range today {
		if _, ok := seen[b.UserID]; ok {
			continue
		}
		seen[b.UserID] = struct{}{}
		if _, ok := currentSet[b.UserID]; !ok {
			delta.ToAdd = append(delta.ToAdd, b.UserID)
		}
	}

	return delta
}

// BuildAnnouncements maps today's birthdays to announcements for localYear
func BuildAnnouncements(birthdays []*entity.Birthday, localYear int) []entity.Announcement {
	announcements := make([]entity.Announcement, 0, len(birthdays))
	for _, b := range birthdays {
		announcements = append(announcements, entity.NewAnnouncement(b, localYear))
	}
	return announcements
}
