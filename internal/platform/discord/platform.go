package discord

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

// memberPageSize is the largest page the member list endpoint returns
const memberPageSize = 1000

func (c *Client) ResolveChannel(ctx context.Context, channelID string) (*entity.Channel, error) {
	ch, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotVisible(err) {
			return nil, nil
		}
		return nil, domain.ExternalError("get channel "+channelID, err)
	}

	return &entity.Channel{
		ID:      ch.ID,
		GuildID: ch.GuildID,
		Name:    ch.Name,
	}, nil
}

func (c *Client) SendAnnouncement(ctx context.Context, channel *entity.Channel, announcement entity.Announcement) error {
	msg := &discordgo.MessageSend{
		Content: "@everyone",
		Embeds:  []*discordgo.MessageEmbed{announcementEmbed(announcement, time.Now())},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone},
		},
	}

	if _, err := c.session.ChannelMessageSendComplex(channel.ID, msg, discordgo.WithContext(ctx)); err != nil {
		return domain.ExternalError("send announcement to "+channel.ID, err)
	}
	return nil
}

func (c *Client) FetchRole(ctx context.Context, guildID, roleID string) (*entity.Role, error) {
	roles, err := c.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, domain.ExternalError("list guild roles", err)
	}

	for _, role := range roles {
		if role.ID == roleID {
			return &entity.Role{ID: role.ID, Name: role.Name}, nil
		}
	}
	return nil, nil
}

// ListRoleMembers walks every guild member page and keeps the ones holding roleID
func (c *Client) ListRoleMembers(ctx context.Context, guildID, roleID string) ([]string, error) {
	var (
		holders []string
		after   string
	)

	for {
		members, err := c.session.GuildMembers(guildID, after, memberPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, domain.ExternalError("list guild members", err)
		}

		for _, m := range members {
			if m.User != nil && slices.Contains(m.Roles, roleID) {
				holders = append(holders, m.User.ID)
			}
		}

		if len(members) < memberPageSize {
			return holders, nil
		}
		after = members[len(members)-1].User.ID
	}
}

func (c *Client) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	err := c.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
	return roleError("add birthday role to "+userID, err)
}

func (c *Client) RemoveRole(ctx context.Context, guildID, userID, roleID string) error {
	err := c.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx))
	return roleError("remove birthday role from "+userID, err)
}

func roleError(op string, err error) error {
	if err == nil {
		return nil
	}
	if restCode(err) == discordgo.ErrCodeUnknownMember {
		return contract.ErrMemberNotFound
	}
	return domain.ExternalError(op, err)
}

func restCode(err error) int {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code
	}
	return 0
}

// isNotVisible reports whether the channel is missing or hidden from the bot
func isNotVisible(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound, http.StatusForbidden:
			return true
		}
	}
	switch restCode(err) {
	case discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeMissingAccess:
		return true
	}
	return false
}
