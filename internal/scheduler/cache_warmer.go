package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/loading"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// CacheWarmerConfig representa a configuração do aquecimento de cache
type CacheWarmerConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetWarmResult guarda o resultado do último aquecimento de um dataset
type DatasetWarmResult struct {
	Rows     int       `json:"rows"`
	Error    string    `json:"error,omitempty"`
	WarmedAt time.Time `json:"warmed_at"`
}

// CacheWarmerService recarrega periodicamente os datasets no cache, para que a
// primeira visita depois da expiração não espere pela fonte
type CacheWarmerService struct {
	scheduler         *gocron.Scheduler
	config            CacheWarmerConfig
	loader            loading.Loader
	datasets          []domain.DatasetSpec
	warmRunning       bool
	warmMutex         sync.Mutex
	lastWarmStartedAt time.Time
	lastWarmEndedAt   time.Time
	results           map[string]DatasetWarmResult
}

func NewCacheWarmerService(loader loading.Loader, datasets []domain.DatasetSpec, appConfig *config.Config) *CacheWarmerService {
	warmerConfig := CacheWarmerConfig{
		CronSchedule: appConfig.CacheWarmer.CronSchedule,
		Enabled:      appConfig.CacheWarmer.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmerConfig.CronSchedule,
		"enabled":       warmerConfig.Enabled,
		"datasets":      len(datasets),
	}).Info("cache warmer: configuration loaded")

	return &CacheWarmerService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    warmerConfig,
		loader:    loader,
		datasets:  datasets,
		results:   make(map[string]DatasetWarmResult),
	}
}

// Start agenda o aquecimento; desabilitado por configuração não faz nada
func (s *CacheWarmerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("cache warmer: disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warm(ctx)
	})
	if err != nil {
		return fmt.Errorf("cache warmer: error scheduling cron %q: %w", s.config.CronSchedule, err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("cache warmer: scheduler started")

	go func() {
		<-ctx.Done()
		logrus.Info("cache warmer: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara um aquecimento fora do agendamento e retorna
// falso quando já existe um em andamento
func (s *CacheWarmerService) TriggerManualSync(ctx context.Context) bool {
	if !s.begin() {
		logrus.Info("cache warmer: warm already running, ignoring manual trigger")
		return false
	}

	logrus.Info("cache warmer: manual warm triggered")
	go s.run(context.WithoutCancel(ctx))
	return true
}

// begin marca o aquecimento como em andamento; falso se outro já o marcou
func (s *CacheWarmerService) begin() bool {
	s.warmMutex.Lock()
	defer s.warmMutex.Unlock()

	if s.warmRunning {
		return false
	}
	s.warmRunning = true
	s.lastWarmStartedAt = time.Now()
	return true
}

func (s *CacheWarmerService) warm(ctx context.Context) {
	if !s.begin() {
		logrus.Info("cache warmer: warm already running, skipping")
		return
	}
	s.run(ctx)
}

// run recarrega os datasets; quem chama já passou por begin
func (s *CacheWarmerService) run(ctx context.Context) {
	startTime := time.Now()
	failures := 0

	for _, spec := range s.datasets {
		result := DatasetWarmResult{}

		table, err := s.loader.Refresh(ctx, spec)
		if err != nil {
			failures++
			result.Error = err.Error()
			logrus.WithFields(logrus.Fields{
				"dataset": spec.Name,
				"error":   err.Error(),
			}).Error("cache warmer: failed to refresh dataset")
		} else {
			result.Rows = table.Len()
		}
		result.WarmedAt = time.Now()

		s.warmMutex.Lock()
		s.results[spec.Name] = result
		s.warmMutex.Unlock()
	}

	s.warmMutex.Lock()
	s.warmRunning = false
	s.lastWarmEndedAt = time.Now()
	s.warmMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"datasets": len(s.datasets),
		"failures": failures,
	}).Info("cache warmer: warm finished")
}

// GetStatus retorna o estado atual do aquecimento
func (s *CacheWarmerService) GetStatus() map[string]any {
	s.warmMutex.Lock()
	defer s.warmMutex.Unlock()

	results := make(map[string]DatasetWarmResult, len(s.results))
	for name, result := range s.results {
		results[name] = result
	}

	return map[string]any{
		"warm_running":           s.warmRunning,
		"warm_cron":              s.config.CronSchedule,
		"warm_enabled":           s.config.Enabled,
		"last_warm_started_at":   s.lastWarmStartedAt,
		"last_warm_completed_at": s.lastWarmEndedAt,
		"datasets":               results,
	}
}
