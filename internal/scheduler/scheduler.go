package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/birthday-bot/internal/config"
	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	NotificationHour int
	Location         *time.Location
	HealthInterval   time.Duration
}

// Scheduler fires the daily birthday check at NotificationHour:00 local time
// and the health sample every HealthInterval. A job never overlaps itself.
type Scheduler struct {
	cfg     Config
	checker contract.BirthdayChecker
	sampler contract.HealthSampler

	cron   *cron.Cron
	chain  cron.JobWrapper
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
	checkAt cron.Schedule
}

func New(cfg Config, checker contract.BirthdayChecker, sampler contract.HealthSampler) (*Scheduler, error) {
	if err := config.ValidateNotificationHour(cfg.NotificationHour); err != nil {
		return nil, domain.ConfigError("%v", err)
	}
	if cfg.Location == nil {
		return nil, domain.ConfigError("scheduler timezone is not set")
	}
	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = domain.DefaultHealthInterval
	}

	cronLogger := cronLogger{logger: log.With().Str("component", "scheduler").Logger()}

	ctx, cancel := context.WithCancel(context.Background())

	chain := cron.NewChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))

	return &Scheduler{
		cfg:     cfg,
		checker: checker,
		sampler: sampler,
		cron: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithLogger(cronLogger),
		),
		chain:  chain.Then,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Start registers both triggers and starts the cron loop. Calling it again,
// even after Stop, is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	checkAt, err := cron.ParseStandard(fmt.Sprintf("0 %d * * *", s.cfg.NotificationHour))
	if err != nil {
		return fmt.Errorf("failed to parse birthday check schedule: %w", err)
	}

	s.cron.Schedule(checkAt, s.chain(cron.FuncJob(func() {
		s.runJob("birthday_check", s.checker.CheckBirthdays)
	})))
	s.cron.Schedule(cron.Every(s.cfg.HealthInterval), s.chain(cron.FuncJob(func() {
		s.runJob("health_sample", s.sampler.SampleAndWrite)
	})))
	s.checkAt = checkAt

	s.cron.Start()
	s.started = true

	log.Info().
		Str("timezone", s.cfg.Location.String()).
		Str("notification_time", config.HourDisplay(s.cfg.NotificationHour)).
		Dur("health_interval", s.cfg.HealthInterval).
		Time("next_check", s.nextCheck()).
		Msg("scheduler started")

	return nil
}

// Stop stops new triggers. The returned context is done once running jobs
// finish; callers may ignore it and abandon them.
func (s *Scheduler) Stop() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	log.Info().Msg("scheduler stopped")
	return s.cron.Stop()
}

// NextCheck returns the next daily check time in the configured timezone,
// zero if the scheduler is not started
func (s *Scheduler) NextCheck() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextCheck()
}

func (s *Scheduler) nextCheck() time.Time {
	if s.checkAt == nil {
		return time.Time{}
	}
	return s.checkAt.Next(time.Now().In(s.cfg.Location))
}

// runJob executes one firing. Errors and panics are logged and the trigger
// stays scheduled.
func (s *Scheduler) runJob(name string, job func(ctx context.Context) error) {
	logger := log.With().Str("job", name).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("scheduled job panicked")
		}
	}()

	started := time.Now()
	if err := job(s.ctx); err != nil {
		logger.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("scheduled job failed")
		return
	}
	logger.Debug().Dur("elapsed", time.Since(started)).Msg("scheduled job finished")
}

// cronLogger adapts zerolog to cron.Logger
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
