package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/rs/zerolog/log"
)

// DiscordStyle renders replies with Discord markdown
var DiscordStyle = Style{
	Bold:     func(s string) string { return "**" + s + "**" },
	SetUsage: "/" + domain.CommandSetBirthday,
	Help: "**Available Commands:**\n" +
		"• `/setbirthday day month [year]` - Set your birthday\n" +
		"• `/mybirthday` - Show your birthday\n" +
		"• `/listbirthdays` - List all birthdays (admins only)\n" +
		"• `/testbirthday` - Send a test announcement (admins only)",
}

type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

type DiscordHandler struct {
	commands *CommandHandler
}

func NewDiscordHandler(commands *CommandHandler) *DiscordHandler {
	return &DiscordHandler{commands: commands}
}

// OnInteraction is registered on the gateway session
func (h *DiscordHandler) OnInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.handle(context.Background(), s, i); err != nil {
		log.Error().Err(err).Str("interaction_id", i.ID).Msg("failed to respond to interaction")
	}
}

func (h *DiscordHandler) handle(ctx context.Context, r interactionResponder, i *discordgo.InteractionCreate) error {
	cmd, ok := commandFromInteraction(i)
	if !ok {
		return nil
	}

	reply := h.commands.Handle(ctx, cmd)
	return r.InteractionRespond(i.Interaction, interactionResponse(reply), discordgo.WithContext(ctx))
}

func commandFromInteraction(i *discordgo.InteractionCreate) (Command, bool) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return Command{}, false
	}

	var user *discordgo.User
	switch {
	case i.Member != nil && i.Member.User != nil:
		user = i.Member.User
	case i.User != nil:
		user = i.User
	default:
		return Command{}, false
	}

	data := i.ApplicationCommandData()
	cmd := Command{
		Name:       data.Name,
		UserID:     user.ID,
		Username:   user.Username,
		Privileged: i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0,
	}

	for _, opt := range data.Options {
		switch opt.Name {
		case "day":
			cmd.Day = int(opt.IntValue())
		case "month":
			cmd.Month = int(opt.IntValue())
		case "year":
			year := int(opt.IntValue())
			cmd.Year = &year
		}
	}

	return cmd, true
}

func interactionResponse(reply Reply) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	if reply.Title == "" {
		data.Content = reply.Text
	} else {
		data.Embeds = []*discordgo.MessageEmbed{{
			Title:       reply.Title,
			Description: reply.Text,
			Color:       reply.Color(),
		}}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}
