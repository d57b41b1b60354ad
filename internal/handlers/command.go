package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	commandRateEvery = 2 * time.Second
	commandRateBurst = 3
)

// Command is one user invocation, already translated from the chat surface
type Command struct {
	Name       string
	UserID     string
	Username   string
	Privileged bool

	Day   int
	Month int
	Year  *int
}

type ReplyKind int

const (
	ReplyError ReplyKind = iota
	ReplySuccess
	ReplyInfo
	ReplyList
)

// Reply is always shown only to the user who ran the command. Title empty
// means a plain text reply.
type Reply struct {
	Kind  ReplyKind
	Title string
	Text  string
}

// Color is the accent used when the surface renders the reply as an embed
func (r Reply) Color() int {
	switch r.Kind {
	case ReplySuccess:
		return 0x00FF00
	case ReplyInfo:
		return 0x0099FF
	case ReplyList:
		return 0xFFD700
	default:
		return 0xFF0000
	}
}

// Style is the markup of the surface a reply is rendered on
type Style struct {
	Bold     func(string) string
	SetUsage string
	Help     string
}

type CommandHandler struct {
	service   contract.BirthdayService
	channelID string
	style     Style
	limiter   *userLimiter
}

func NewCommandHandler(service contract.BirthdayService, channelID string, style Style) *CommandHandler {
	return &CommandHandler{
		service:   service,
		channelID: channelID,
		style:     style,
		limiter:   newUserLimiter(commandRateEvery, commandRateBurst),
	}
}

func (h *CommandHandler) Handle(ctx context.Context, cmd Command) Reply {
	if !h.limiter.Allow(cmd.UserID) {
		metrics.RateLimitBlocked.Inc()
		return errorReply("⏳ You're sending commands too quickly. Please slow down.")
	}

	var reply Reply
	switch cmd.Name {
	case domain.CommandSetBirthday:
		reply = h.setBirthday(ctx, cmd)
	case domain.CommandMyBirthday:
		reply = h.myBirthday(ctx, cmd)
	case domain.CommandListBirthdays:
		reply = h.requirePrivilege(cmd, func() Reply { return h.listBirthdays(ctx) })
	case domain.CommandTestBirthday:
		reply = h.requirePrivilege(cmd, func() Reply { return h.testBirthday(ctx) })
	case domain.CommandHelp:
		reply = Reply{Kind: ReplyInfo, Text: h.style.Help}
	default:
		reply = errorReply("❌ Unknown command.")
	}

	result := metrics.ResultSuccess
	if reply.Kind == ReplyError {
		result = metrics.ResultError
	}
	metrics.CommandsTotal.WithLabelValues(cmd.Name, result).Inc()

	return reply
}

func (h *CommandHandler) requirePrivilege(cmd Command, next func() Reply) Reply {
	if !cmd.Privileged {
		return errorReply("❌ You need administrator permissions to use this command.")
	}
	return next()
}

func (h *CommandHandler) setBirthday(ctx context.Context, cmd Command) Reply {
	birthday, err := h.service.SetBirthday(ctx, cmd.UserID, cmd.Username, cmd.Day, cmd.Month, cmd.Year)
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			return errorReply("❌ " + verr.Message)
		}
		log.Error().Err(err).Str("user_id", cmd.UserID).Msg("failed to set birthday")
		return errorReply("❌ An error occurred while setting your birthday. Please try again.")
	}

	return Reply{
		Kind:  ReplySuccess,
		Title: "🎂 Birthday Set Successfully!",
		Text:  "Your birthday has been set to " + h.style.Bold(birthday.DateString()),
	}
}

func (h *CommandHandler) myBirthday(ctx context.Context, cmd Command) Reply {
	birthday, err := h.service.GetBirthday(ctx, cmd.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", cmd.UserID).Msg("failed to get birthday")
		return errorReply("❌ An error occurred while retrieving your birthday.")
	}
	if birthday == nil {
		return errorReply(fmt.Sprintf("❌ You haven't set your birthday yet! Use `%s` to set it.", h.style.SetUsage))
	}

	return Reply{
		Kind:  ReplyInfo,
		Title: "🎂 Your Birthday",
		Text:  "Your birthday is set to " + h.style.Bold(birthday.DateString()),
	}
}

func (h *CommandHandler) listBirthdays(ctx context.Context) Reply {
	birthdays, err := h.service.ListBirthdays(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list birthdays")
		return errorReply("❌ An error occurred while retrieving birthdays.")
	}
	if len(birthdays) == 0 {
		return Reply{Kind: ReplyInfo, Text: "📅 No birthdays have been set yet!"}
	}

	var sb strings.Builder
	for _, b := range birthdays {
		sb.WriteString("• " + h.style.Bold(b.Username) + " - " + b.ShortDateString() + "\n")
	}

	return Reply{
		Kind:  ReplyList,
		Title: "🎂 Server Birthdays",
		Text:  sb.String(),
	}
}

func (h *CommandHandler) testBirthday(ctx context.Context) Reply {
	announcement, err := h.service.SendTestAnnouncement(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrChannelNotFound) {
			return errorReply("❌ Birthday channel not found! Please check your configuration.")
		}
		log.Error().Err(err).Msg("failed to send test announcement")
		return errorReply("❌ An error occurred while sending the test birthday message.")
	}

	return Reply{
		Kind: ReplySuccess,
		Text: fmt.Sprintf("✅ Test birthday message sent to <#%s> for %s!", h.channelID, announcement.Username),
	}
}

func errorReply(text string) Reply {
	return Reply{Kind: ReplyError, Text: text}
}
