package health

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/diegoclair/birthday-bot/pkg/models"
	"github.com/rs/zerolog/log"
)

type Options struct {
	// Platform may be nil for a probe that only checks the database
	Platform    contract.ChatPlatform
	DataManager contract.DataManager

	Timezone         string
	Location         *time.Location
	NotificationHour int

	// File is where WriteFile puts the record; empty disables the file
	File string

	// RequirePlatform makes a disconnected platform unhealthy
	RequirePlatform bool
}

type Reporter struct {
	opts    Options
	started time.Time
	now     func() time.Time

	writeMu sync.Mutex
}

func NewReporter(opts Options) *Reporter {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Reporter{
		opts:    opts,
		started: time.Now(),
		now:     time.Now,
	}
}

// Sample gathers one health record. It never fails: unreachable parts are
// reported as disconnected.
func (r *Reporter) Sample(ctx context.Context) models.HealthRecord {
	now := r.now()

	record := models.HealthRecord{
		Status:    models.StatusHealthy,
		Timestamp: now.UTC(),
		Uptime:    now.Sub(r.started).Seconds(),
		Version:   buildVersion(),
		Configuration: models.ConfigurationInfo{
			Timezone:         r.opts.Timezone,
			NotificationHour: r.opts.NotificationHour,
		},
		Timezone: models.TimezoneInfo{
			Configured: r.opts.Timezone,
			Current:    now.Format(time.RFC1123Z),
			Local:      now.In(r.opts.Location).Format("1/2/2006, 3:04:05 PM"),
		},
	}

	if err := r.opts.DataManager.Ping(ctx); err != nil {
		record.Database = models.DatabaseInfo{Connected: false, Error: err.Error()}
		record.Status = models.StatusUnhealthy
	} else {
		record.Database = models.DatabaseInfo{Connected: true}
	}

	if r.opts.Platform != nil {
		status := r.opts.Platform.Status(ctx)
		record.Platform = r.opts.Platform.Name()
		record.Discord = &models.ConnectionInfo{
			Connected: status.Connected,
			User:      status.User,
			Guilds:    status.Guilds,
			Ping:      status.Ping.Milliseconds(),
		}
	}

	if r.opts.RequirePlatform && (record.Discord == nil || !record.Discord.Connected) {
		record.Status = models.StatusUnhealthy
	}

	return record
}

// WriteFile samples and atomically replaces the health file
func (r *Reporter) WriteFile(ctx context.Context) error {
	_, err := r.sampleAndWrite(ctx)
	return err
}

// SampleAndWrite is the periodic health job: sample, log, publish metrics
// and rewrite the file.
func (r *Reporter) SampleAndWrite(ctx context.Context) error {
	record, err := r.sampleAndWrite(ctx)

	var ping int64
	if record.Discord != nil {
		ping = record.Discord.Ping
		if record.Discord.Connected {
			metrics.BotConnected.Set(1)
		} else {
			metrics.BotConnected.Set(0)
		}
		metrics.BotLatency.Set(float64(ping) / 1000)
	}

	log.Info().
		Str("status", record.Status).
		Int64("uptime", int64(record.Uptime)).
		Int64("ping_ms", ping).
		Msg("health check")

	return err
}

func (r *Reporter) sampleAndWrite(ctx context.Context) (models.HealthRecord, error) {
	record := r.Sample(ctx)
	if r.opts.File == "" {
		return record, nil
	}
	if err := r.write(record); err != nil {
		return record, err
	}
	return record, nil
}

// write replaces the file through a temp file and rename, so readers never
// see a partial record
func (r *Reporter) write(record models.HealthRecord) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	path := r.opts.File

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal health record: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create health directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".health-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp health file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write health file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close health file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace health file: %w", err)
	}
	return nil
}

var buildVersion = sync.OnceValue(func() models.VersionInfo {
	v := models.VersionInfo{Hash: "unknown", GoVersion: runtime.Version()}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			v.Hash = s.Value
			if len(v.Hash) > 7 {
				v.Hash = v.Hash[:7]
			}
		case "vcs.time":
			v.Date = s.Value
		case "vcs.modified":
			v.Modified = s.Value == "true"
		}
	}
	return v
})
