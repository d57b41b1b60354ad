package contract

import (
	"context"

	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

// BirthdayService is what the command surfaces talk to
type BirthdayService interface {
	SetBirthday(ctx context.Context, userID, username string, day, month int, year *int) (*entity.Birthday, error)
	GetBirthday(ctx context.Context, userID string) (*entity.Birthday, error)
	ListBirthdays(ctx context.Context) ([]*entity.Birthday, error)
	SendTestAnnouncement(ctx context.Context) (*entity.Announcement, error)
}

// BirthdayChecker runs the daily birthday check
type BirthdayChecker interface {
	CheckBirthdays(ctx context.Context) error
}

// HealthSampler takes one health sample and publishes it
type HealthSampler interface {
	SampleAndWrite(ctx context.Context) error
}
