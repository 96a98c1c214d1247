package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"travel-weather-api/internal/domain/usecase/weather"
	"travel-weather-api/pkg/log"
	"travel-weather-api/pkg/msg"
	"travel-weather-api/pkg/redis"
)

// PrewarmSchedulerConfig holds configuration for the snapshot prewarm scheduler
type PrewarmSchedulerConfig struct {
	CronExpression  string
	Cities          []string
	UseQueue        bool
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// PrewarmScheduler refreshes the configured cities on a cron so the first
// user request of the day hits a warm cache. When several instances run
// against the same redis, a distributed lock keeps the cron on one of them.
type PrewarmScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      *PrewarmSchedulerConfig
}

// NewPrewarmScheduler creates a new prewarm scheduler. A nil redis client
// skips distributed locking, which is the single-instance memory backend case.
func NewPrewarmScheduler(useCase weather.UseCase, redisClient *redis.Client, config *PrewarmSchedulerConfig) *PrewarmScheduler {
	return &PrewarmScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitPrewarmScheduleTasks initializes the prewarm cron, guarded by a
// distributed lock when redis is available
func (s *PrewarmScheduler) InitPrewarmScheduleTasks(ctx context.Context) {
	go func() {
		var refreshErrChan <-chan error

		if s.redisClient != nil {
			opts := redis.NewLockOptions().
				WithTTL(s.getLockTTL()).
				WithRefreshInterval(s.getRefreshInterval()).
				WithLockNamespace("weather_schedules").
				WithMaxRetries(0)

			lock := redis.NewLock(s.redisClient, "snapshot_prewarm_scheduler", opts)
			if err := lock.Lock(ctx); err != nil {
				log.Warnf("Prewarm lock held elsewhere, scheduler will not start here: %v", err)
				return
			}
			refreshErrChan = lock.AutoRefresh(ctx)
		}

		if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
			log.Errorf("Failed to initialize prewarm scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Snapshot prewarm scheduler started with cron expression: %s", s.config.CronExpression)

		if refreshErrChan == nil {
			<-ctx.Done()
			s.Stop()
			return
		}

		err := <-refreshErrChan
		s.Stop()
		if err != nil {
			log.Errorf("Snapshot prewarm scheduler stopped due to lock refresh failure: %v", err)
		} else {
			log.Info("Snapshot prewarm scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask refreshes every configured city, either by enqueueing
// refresh messages or by scraping inline when no queue is configured
func (s *PrewarmScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("prewarm.cron-start"), zap.String("request_id", requestID))

	if s.config.UseQueue {
		if err := s.useCase.EnqueueRefreshAll(s.config.Cities, requestID); err != nil {
			log.Error("Failed to enqueue prewarm refresh batch",
				zap.String("request_id", requestID), zap.Error(err))
			return
		}
	} else {
		for _, city := range s.config.Cities {
			if err := s.useCase.RefreshCity(context.Background(), city); err != nil {
				log.Warn("Prewarm refresh failed",
					zap.String("request_id", requestID),
					zap.String("city", city),
					zap.Error(err))
			}
		}
	}

	log.Info(msg.GetMessage("prewarm.cron-end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *PrewarmScheduler) Stop() {
	if s.cron != nil {
		cronCtx := s.cron.Stop()
		<-cronCtx.Done()
	}
}

func (s *PrewarmScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *PrewarmScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return time.Minute
}
