package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
)

func bold(s string) string {
	return "**" + s + "**"
}

func announcementEmbed(a entity.Announcement, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       domain.AnnouncementTitle,
		Description: a.Message(bold),
		Color:       domain.AnnouncementColor,
		Image:       &discordgo.MessageEmbedImage{URL: domain.AnnouncementImageURL},
		Timestamp:   now.Format(time.RFC3339),
	}
	if a.Test {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: domain.TestAnnouncementFooter}
	}
	return embed
}
