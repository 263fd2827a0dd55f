package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/loading/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var warmDatasets = []domain.DatasetSpec{
	{Name: "ridership", DateField: "date"},
	{Name: "case_count", DateField: "date_of_interest", SinglePage: true},
}

func warmerConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		CacheWarmer: config.CacheWarmer{CronSchedule: cron, Enabled: enabled},
	}
}

func oneRowTable() *domain.Table {
	return domain.NewTable("date", []domain.Date{domain.NewDate(2024, time.January, 1)})
}

func TestCacheWarmerService_Warm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Refresh(gomock.Any(), warmDatasets[0]).Return(oneRowTable(), nil)
	loader.EXPECT().Refresh(gomock.Any(), warmDatasets[1]).Return(nil, errors.New("source unavailable"))

	service := NewCacheWarmerService(loader, warmDatasets, warmerConfig(false, "0 * * * *"))
	service.warm(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["warm_running"])
	assert.Equal(t, "0 * * * *", status["warm_cron"])
	assert.False(t, status["last_warm_completed_at"].(time.Time).IsZero())

	results := status["datasets"].(map[string]DatasetWarmResult)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results["ridership"].Rows)
	assert.Empty(t, results["ridership"].Error)
	assert.Equal(t, "source unavailable", results["case_count"].Error)
}

func TestCacheWarmerService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(oneRowTable(), nil).Times(2)

	service := NewCacheWarmerService(loader, warmDatasets, warmerConfig(false, "0 * * * *"))
	assert.True(t, service.TriggerManualSync(context.Background()))

	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		return !status["warm_running"].(bool) && len(status["datasets"].(map[string]DatasetWarmResult)) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestCacheWarmerService_TriggerWhileRunning(t *testing.T) {
	service := NewCacheWarmerService(nil, warmDatasets, warmerConfig(false, "0 * * * *"))
	service.warmRunning = true

	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestCacheWarmerService_ConcurrentTriggersStartOneWarm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Refresh(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, spec domain.DatasetSpec) (*domain.Table, error) {
			<-release
			return oneRowTable(), nil
		}).Times(2)

	service := NewCacheWarmerService(loader, warmDatasets, warmerConfig(false, "0 * * * *"))

	const callers = 8
	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if service.TriggerManualSync(context.Background()) {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, true, service.GetStatus()["warm_running"])

	close(release)
	assert.Eventually(t, func() bool {
		return !service.GetStatus()["warm_running"].(bool)
	}, time.Second, 10*time.Millisecond)
}

func TestCacheWarmerService_Start(t *testing.T) {
	t.Run("disabled does not schedule", func(t *testing.T) {
		service := NewCacheWarmerService(nil, warmDatasets, warmerConfig(false, "not a cron"))
		assert.NoError(t, service.Start(context.Background()))
		assert.Equal(t, 0, service.scheduler.Len())
	})

	t.Run("invalid cron is rejected", func(t *testing.T) {
		service := NewCacheWarmerService(nil, warmDatasets, warmerConfig(true, "not a cron"))
		err := service.Start(context.Background())
		assert.Error(t, err)
	})

	t.Run("enabled schedules and stops with context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 1º de janeiro à meia-noite: não dispara durante o teste
		service := NewCacheWarmerService(nil, warmDatasets, warmerConfig(true, "0 0 1 1 *"))
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, service.scheduler.Len())
		assert.True(t, service.scheduler.IsRunning())
	})
}
