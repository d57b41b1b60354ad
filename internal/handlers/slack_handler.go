package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/birthday-bot/internal/domain/slack"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// SlackStyle renders replies with Slack mrkdwn
var SlackStyle = Style{
	Bold:     func(s string) string { return "*" + s + "*" },
	SetUsage: slackcmd.SlashCommand + " set DAY MONTH [YEAR]",
	Help:     slackcmd.GetHelpText(),
}

type SlackHandler struct {
	slackClient   contract.SlackClient
	commands      *CommandHandler
	signingSecret string
}

func NewSlackHandler(slackClient contract.SlackClient, commands *CommandHandler, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		commands:      commands,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.Warn().Err(err).Msg("rejected slack request with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parsed, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, createErrorResponse(err.Error()))
		return
	}

	cmd := Command{
		Name:     parsed.Name(),
		UserID:   s.UserID,
		Username: s.UserName,
		Day:      parsed.Day,
		Month:    parsed.Month,
		Year:     parsed.Year,
	}
	if parsed.Type == slackcmd.CmdList || parsed.Type == slackcmd.CmdTest {
		cmd.Privileged = h.isWorkspaceAdmin(r, s.UserID)
	}

	h.respond(w, slackMessage(h.commands.Handle(r.Context(), cmd)))
}

// isWorkspaceAdmin asks users.info; a failed lookup counts as not privileged
func (h *SlackHandler) isWorkspaceAdmin(r *http.Request, userID string) bool {
	user, err := h.slackClient.GetUserInfoContext(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get slack user info")
		return false
	}
	return user.IsAdmin || user.IsOwner
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error().Err(err).Msg("failed to encode slack response")
	}
}

func slackMessage(reply Reply) *slack.Msg {
	if reply.Title == "" {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         reply.Text,
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Attachments: []slack.Attachment{{
			Color:      fmt.Sprintf("#%06x", reply.Color()),
			Title:      reply.Title,
			Text:       reply.Text,
			MarkdownIn: []string{"text"},
		}},
	}
}

func createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}
