package discord

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/rs/zerolog/log"
)

const intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMembers

// Client owns the gateway session and implements contract.ChatPlatform on top of it
type Client struct {
	session   *discordgo.Session
	connected atomic.Bool

	mu            sync.RWMutex
	onStateChange func(connected bool)
}

func New(token string) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = intents

	c := &Client{session: session}

	session.AddHandler(c.onReady)
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		c.setConnected(true)
	})
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		c.setConnected(false)
	})

	return c, nil
}

// Session exposes the session so command surfaces can register their handlers
func (c *Client) Session() *discordgo.Session {
	return c.session
}

// OnStateChange registers fn to be called whenever the gateway connects or drops
func (c *Client) OnStateChange(fn func(connected bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = fn
}

func (c *Client) Open() error {
	if err := c.session.Open(); err != nil {
		return domain.ExternalError("open discord gateway", err)
	}
	return nil
}

func (c *Client) Close() error {
	c.setConnected(false)
	if err := c.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	return nil
}

func (c *Client) Name() string {
	return domain.PlatformDiscord
}

func (c *Client) IsConnected() bool {
	return c.connected.Load()
}

func (c *Client) Status(_ context.Context) entity.PlatformStatus {
	status := entity.PlatformStatus{Connected: c.IsConnected()}
	if !status.Connected {
		return status
	}

	state := c.session.State
	state.RLock()
	if state.User != nil {
		status.User = state.User.String()
	}
	status.Guilds = len(state.Guilds)
	state.RUnlock()

	status.Ping = c.session.HeartbeatLatency()
	return status
}

func (c *Client) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().
		Str("user", r.User.String()).
		Int("guilds", len(r.Guilds)).
		Msg("discord bot ready")

	if err := s.UpdateListeningStatus(domain.BotActivity); err != nil {
		log.Warn().Err(err).Msg("failed to set bot presence")
	}

	c.setConnected(true)
}

func (c *Client) setConnected(connected bool) {
	if c.connected.Swap(connected) == connected {
		return
	}

	if connected {
		metrics.BotConnected.Set(1)
		log.Info().Msg("connected to discord")
	} else {
		metrics.BotConnected.Set(0)
		log.Warn().Msg("disconnected from discord")
	}

	c.mu.RLock()
	fn := c.onStateChange
	c.mu.RUnlock()
	if fn != nil {
		fn(connected)
	}
}
