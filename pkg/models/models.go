package models

import "time"

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthRecord is the status snapshot written to the health file, printed by
// the CLI health check and served on /health. External supervisors read it,
// so field names are part of the public contract.
type HealthRecord struct {
	Status        string            `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
	Uptime        float64           `json:"uptime"`
	Version       VersionInfo       `json:"version"`
	Configuration ConfigurationInfo `json:"configuration"`
	Platform      string            `json:"platform,omitempty"`
	// Discord holds the chat connection state for every platform; the key
	// name is what supervisors already check.
	Discord  *ConnectionInfo `json:"discord,omitempty"`
	Database DatabaseInfo    `json:"database"`
	Timezone TimezoneInfo    `json:"timezone"`
}

type VersionInfo struct {
	Hash      string `json:"hash"`
	Date      string `json:"date,omitempty"`
	Modified  bool   `json:"modified"`
	GoVersion string `json:"goVersion"`
}

type ConfigurationInfo struct {
	Timezone         string `json:"timezone"`
	NotificationHour int    `json:"notificationHour"`
}

type ConnectionInfo struct {
	Connected bool   `json:"connected"`
	User      string `json:"user,omitempty"`
	Guilds    int    `json:"guilds"`
	Ping      int64  `json:"ping"` // milliseconds
}

type DatabaseInfo struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type TimezoneInfo struct {
	Configured string `json:"configured"`
	Current    string `json:"current"`
	Local      string `json:"local"`
}

func (h HealthRecord) Healthy() bool {
	return h.Status == StatusHealthy
}
