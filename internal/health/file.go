package health

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/diegoclair/birthday-bot/pkg/models"
)

var (
	ErrStale        = errors.New("health record is stale")
	ErrUnhealthy    = errors.New("bot reported unhealthy")
	ErrDisconnected = errors.New("bot is not connected to the chat platform")
)

func ReadFile(path string) (*models.HealthRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read health file: %w", err)
	}

	var record models.HealthRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse health file: %w", err)
	}
	return &record, nil
}

// Evaluate applies the supervisor policy to a record read from the health
// file. A record older than maxAge is unhealthy whatever its status says.
func Evaluate(record *models.HealthRecord, now time.Time, maxAge time.Duration) error {
	if age := now.Sub(record.Timestamp); age > maxAge {
		return fmt.Errorf("%w: %s old", ErrStale, age.Round(time.Second))
	}
	if !record.Healthy() {
		return ErrUnhealthy
	}
	if record.Discord == nil || !record.Discord.Connected {
		return ErrDisconnected
	}
	return nil
}
