package contract

import (
	"context"
	"errors"

	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

// ErrMemberNotFound is returned by role operations when the user already left
// the server. Callers treat it as an expected outcome, not a failure.
var ErrMemberNotFound = errors.New("member not found")

// ChatPlatform wraps the chat connection behind the few capabilities the bot
// needs, so nothing else touches the SDK client directly.
type ChatPlatform interface {
	Name() string

	// ResolveChannel returns nil, nil when the channel does not exist or the
	// bot cannot see it.
	ResolveChannel(ctx context.Context, channelID string) (*entity.Channel, error)
	SendAnnouncement(ctx context.Context, channel *entity.Channel, announcement entity.Announcement) error

	// FetchRole returns nil, nil when the role does not exist.
	FetchRole(ctx context.Context, guildID, roleID string) (*entity.Role, error)
	ListRoleMembers(ctx context.Context, guildID, roleID string) ([]string, error)
	AddRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error

	IsConnected() bool
	Status(ctx context.Context) entity.PlatformStatus
}
