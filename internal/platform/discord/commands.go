package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/birthday-bot/internal/domain"
)

// Commands returns the slash command definitions. currentYear caps the year option.
func Commands(currentYear int) []*discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)
	minDay, minMonth, minYear := float64(1), float64(1), float64(domain.MinBirthYear)

	return []*discordgo.ApplicationCommand{
		{
			Name:        domain.CommandSetBirthday,
			Description: "Set your birthday",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "day",
					Description: "Day of the month (1-31)",
					Required:    true,
					MinValue:    &minDay,
					MaxValue:    31,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "month",
					Description: "Month (1-12)",
					Required:    true,
					MinValue:    &minMonth,
					MaxValue:    12,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "year",
					Description: "Birth year (optional, used to show your age)",
					MinValue:    &minYear,
					MaxValue:    float64(currentYear),
				},
			},
		},
		{
			Name:        domain.CommandMyBirthday,
			Description: "Show your registered birthday",
		},
		{
			Name:                     domain.CommandListBirthdays,
			Description:              "List all registered birthdays",
			DefaultMemberPermissions: &adminOnly,
		},
		{
			Name:                     domain.CommandTestBirthday,
			Description:              "Send a test birthday announcement",
			DefaultMemberPermissions: &adminOnly,
		},
	}
}

// RegisterCommands overwrites the application's slash commands. An empty
// guildID registers them globally.
func (c *Client) RegisterCommands(ctx context.Context, appID, guildID string, currentYear int) ([]*discordgo.ApplicationCommand, error) {
	registered, err := c.session.ApplicationCommandBulkOverwrite(appID, guildID, Commands(currentYear), discordgo.WithContext(ctx))
	if err != nil {
		return nil, domain.ExternalError(fmt.Sprintf("register %d commands", len(Commands(currentYear))), err)
	}
	return registered, nil
}
