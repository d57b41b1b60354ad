package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Platform string

	DiscordToken    string
	DiscordClientID string
	DiscordGuildID  string

	SlackBotToken      string
	SlackSigningSecret string

	BirthdayChannelID string
	BirthdayRoleID    string

	Timezone         string
	Location         *time.Location
	NotificationHour int
	HealthInterval   time.Duration

	DatabasePath string
	HealthFile   string
	Port         string

	Env      string
	LogLevel string
	LogFile  string
}

// Load reads the configuration from the environment and fails with a
// domain.ErrConfiguration listing every missing or invalid value.
func Load() (*Config, error) {
	cfg := &Config{
		Platform:           strings.ToLower(getEnv("CHAT_PLATFORM", domain.PlatformDiscord)),
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		DiscordClientID:    getEnv("DISCORD_CLIENT_ID", ""),
		DiscordGuildID:     getEnv("DISCORD_GUILD_ID", ""),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		BirthdayChannelID:  getEnv("BIRTHDAY_CHANNEL_ID", ""),
		BirthdayRoleID:     getEnv("BIRTHDAY_ROLE_ID", ""),
		Timezone:           getEnv("TZ", domain.DefaultTimezone),
		DatabasePath:       getEnv("DATABASE_PATH", "./birthdays.db"),
		HealthFile:         getEnv("HEALTH_FILE", "./data/health.json"),
		Port:               getEnv("PORT", "3000"),
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            getEnv("LOG_FILE", ""),
	}

	var problems []string

	if missing := cfg.missingRequired(); len(missing) > 0 {
		problems = append(problems, "missing required environment variables: "+strings.Join(missing, ", "))
	}

	hour, err := ParseNotificationHour(os.Getenv("BIRTHDAY_NOTIFICATION_HOUR"))
	if err != nil {
		problems = append(problems, err.Error())
	}
	cfg.NotificationHour = hour

	interval, err := getEnvDuration("HEALTH_CHECK_INTERVAL", domain.DefaultHealthInterval)
	if err != nil {
		problems = append(problems, err.Error())
	}
	cfg.HealthInterval = interval

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		problems = append(problems, fmt.Sprintf("TZ %q is not a valid IANA timezone", cfg.Timezone))
	}
	cfg.Location = loc

	if len(problems) > 0 {
		return nil, domain.ConfigError("%s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

type envVar struct {
	name  string
	value string
}

func (c *Config) missingRequired() []string {
	var required []envVar

	switch c.Platform {
	case domain.PlatformSlack:
		required = append(required,
			envVar{"SLACK_BOT_TOKEN", c.SlackBotToken},
			envVar{"SLACK_SIGNING_SECRET", c.SlackSigningSecret},
		)
	default:
		required = append(required,
			envVar{"DISCORD_TOKEN", c.DiscordToken},
			envVar{"DISCORD_CLIENT_ID", c.DiscordClientID},
		)
	}
	required = append(required, envVar{"BIRTHDAY_CHANNEL_ID", c.BirthdayChannelID})

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	if c.Platform != domain.PlatformDiscord && c.Platform != domain.PlatformSlack {
		missing = append(missing, fmt.Sprintf("CHAT_PLATFORM (unsupported value %q)", c.Platform))
	}

	return missing
}

// ParseNotificationHour validates a 24-hour clock hour. Empty means the default.
func ParseNotificationHour(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultNotificationHour, nil
	}

	hour, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid BIRTHDAY_NOTIFICATION_HOUR %q: must be 0-23 (24-hour format)", raw)
	}

	if err := ValidateNotificationHour(hour); err != nil {
		return 0, err
	}

	return hour, nil
}

func ValidateNotificationHour(hour int) error {
	err := validation.Validate(hour,
		validation.Min(0),
		validation.Max(23),
	)
	if err != nil {
		return fmt.Errorf("invalid BIRTHDAY_NOTIFICATION_HOUR %d: must be 0-23 (24-hour format)", hour)
	}
	return nil
}

// HourDisplay renders a 24-hour clock hour as "10:00 AM"
func HourDisplay(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration like 1m or 5m", key, value)
	}
	return d, nil
}
