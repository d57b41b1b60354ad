package contract

import (
	"context"

	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Birthday() BirthdayRepo
	Ping(ctx context.Context) error
	Close() error
}

// BirthdayRepo defines the contract for the birthday repository.
// It stores one record per user and does no input validation.
type BirthdayRepo interface {
	Set(ctx context.Context, birthday *entity.Birthday) (bool, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Birthday, error)
	GetByDate(ctx context.Context, month, day int) ([]*entity.Birthday, error)
	List(ctx context.Context) ([]*entity.Birthday, error)
}
