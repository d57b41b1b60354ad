package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the Slack Web API calls used outside the platform adapter.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)
}
