package slack

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// Client implements contract.ChatPlatform over the Slack Web API. The
// birthday "role" is a Slack user group.
type Client struct {
	api       *slack.Client
	connected atomic.Bool

	mu     sync.RWMutex
	user   string
	teamID string
}

func New(api *slack.Client) *Client {
	return &Client{api: api}
}

// API exposes the Web API client for the command surface
func (c *Client) API() *slack.Client {
	return c.api
}

// Open checks the token with auth.test
func (c *Client) Open(ctx context.Context) error {
	if _, err := c.authTest(ctx); err != nil {
		return domain.ExternalError("slack auth test", err)
	}
	return nil
}

func (c *Client) Close() error {
	c.setConnected(false)
	return nil
}

func (c *Client) Name() string {
	return domain.PlatformSlack
}

func (c *Client) IsConnected() bool {
	return c.connected.Load()
}

// Status runs auth.test and reports its round trip as the ping
func (c *Client) Status(ctx context.Context) entity.PlatformStatus {
	ping, err := c.authTest(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("slack auth test failed")
		return entity.PlatformStatus{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return entity.PlatformStatus{
		Connected: true,
		User:      c.user,
		Guilds:    1,
		Ping:      ping,
	}
}

func (c *Client) authTest(ctx context.Context) (time.Duration, error) {
	started := time.Now()
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		c.setConnected(false)
		return 0, err
	}
	ping := time.Since(started)

	c.mu.Lock()
	c.user = resp.User
	c.teamID = resp.TeamID
	c.mu.Unlock()

	c.setConnected(true)
	return ping, nil
}

func (c *Client) setConnected(connected bool) {
	if c.connected.Swap(connected) == connected {
		return
	}
	if connected {
		metrics.BotConnected.Set(1)
		log.Info().Msg("connected to slack")
	} else {
		metrics.BotConnected.Set(0)
		log.Warn().Msg("disconnected from slack")
	}
}

func (c *Client) ResolveChannel(ctx context.Context, channelID string) (*entity.Channel, error) {
	ch, err := c.api.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{ChannelID: channelID})
	if err != nil {
		if slackError(err) == "channel_not_found" {
			return nil, nil
		}
		return nil, domain.ExternalError("get conversation info "+channelID, err)
	}

	c.mu.RLock()
	teamID := c.teamID
	c.mu.RUnlock()

	return &entity.Channel{ID: ch.ID, GuildID: teamID, Name: ch.Name}, nil
}

func (c *Client) SendAnnouncement(ctx context.Context, channel *entity.Channel, announcement entity.Announcement) error {
	attachment := slack.Attachment{
		Color:      fmt.Sprintf("#%06x", domain.AnnouncementColor),
		Title:      domain.AnnouncementTitle,
		Text:       announcement.Message(bold),
		ImageURL:   domain.AnnouncementImageURL,
		MarkdownIn: []string{"text"},
	}
	if announcement.Test {
		attachment.Footer = domain.TestAnnouncementFooter
	}

	_, _, err := c.api.PostMessageContext(ctx, channel.ID,
		slack.MsgOptionText("<!channel>", false),
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return domain.ExternalError("post announcement to "+channel.ID, err)
	}
	return nil
}

func (c *Client) FetchRole(ctx context.Context, _ string, roleID string) (*entity.Role, error) {
	group, err := c.userGroup(ctx, roleID)
	if err != nil || group == nil {
		return nil, err
	}
	return &entity.Role{ID: group.ID, Name: group.Name}, nil
}

// ListRoleMembers returns the group's users. A disabled group has none.
func (c *Client) ListRoleMembers(ctx context.Context, _ string, roleID string) ([]string, error) {
	group, err := c.userGroup(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if group == nil || disabled(group) {
		return nil, nil
	}
	return group.Users, nil
}

// AddRole adds the user to the group, enabling it first when it was
// disabled for being empty.
func (c *Client) AddRole(ctx context.Context, _ string, userID, roleID string) error {
	group, err := c.userGroup(ctx, roleID)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ExternalError("add user to group", errors.New("user group "+roleID+" not found"))
	}

	members := group.Users
	if disabled(group) {
		if _, err := c.api.EnableUserGroupContext(ctx, roleID); err != nil {
			return domain.ExternalError("enable user group "+roleID, err)
		}
		members = nil
	}
	if slices.Contains(members, userID) {
		return nil
	}

	return c.updateMembers(ctx, roleID, append(members, userID))
}

// RemoveRole drops the user from the group. Slack refuses empty groups, so
// removing the last member disables the group instead.
func (c *Client) RemoveRole(ctx context.Context, _ string, userID, roleID string) error {
	group, err := c.userGroup(ctx, roleID)
	if err != nil {
		return err
	}
	if group == nil || disabled(group) {
		return nil
	}

	members := slices.DeleteFunc(slices.Clone(group.Users), func(id string) bool { return id == userID })
	if len(members) == len(group.Users) {
		return nil
	}

	if len(members) == 0 {
		if _, err := c.api.DisableUserGroupContext(ctx, roleID); err != nil {
			return domain.ExternalError("disable user group "+roleID, err)
		}
		return nil
	}

	return c.updateMembers(ctx, roleID, members)
}

func (c *Client) updateMembers(ctx context.Context, roleID string, members []string) error {
	_, err := c.api.UpdateUserGroupMembersContext(ctx, roleID, strings.Join(members, ","))
	if err != nil {
		switch slackError(err) {
		case "invalid_users", "user_not_found":
			return contract.ErrMemberNotFound
		}
		return domain.ExternalError("update user group "+roleID, err)
	}
	return nil
}

func (c *Client) userGroup(ctx context.Context, roleID string) (*slack.UserGroup, error) {
	groups, err := c.api.GetUserGroupsContext(ctx,
		slack.GetUserGroupsOptionIncludeDisabled(true),
		slack.GetUserGroupsOptionIncludeUsers(true),
	)
	if err != nil {
		return nil, domain.ExternalError("list user groups", err)
	}

	for i := range groups {
		if groups[i].ID == roleID {
			return &groups[i], nil
		}
	}
	return nil, nil
}

func disabled(group *slack.UserGroup) bool {
	return group.DateDelete != 0
}

// slackError returns the API error code, e.g. "channel_not_found"
func slackError(err error) string {
	var serr slack.SlackErrorResponse
	if errors.As(err, &serr) {
		return serr.Err
	}
	return ""
}

func bold(s string) string {
	return "*" + s + "*"
}
