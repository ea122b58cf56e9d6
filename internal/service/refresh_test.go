package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRefreshRunner(t *testing.T) (*RefreshRunner, *mocks.MockMonitorService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockMonitorService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RefreshInterval: 5 * time.Minute,
		RetryInterval:   time.Minute,
	}

	return NewRefreshRunner(mockService, logger, cfg), mockService
}

func TestRunOnce_SuccessReturnsRefreshInterval(t *testing.T) {
	runner, mockService := newTestRefreshRunner(t)
	ctx := context.Background()

	mockService.EXPECT().Refresh(ctx).Return(nil).Times(1)

	delay := runner.runOnce(ctx)

	assert.Equal(t, 5*time.Minute, delay)
}

func TestRunOnce_FailureReturnsRetryInterval(t *testing.T) {
	runner, mockService := newTestRefreshRunner(t)
	ctx := context.Background()

	mockService.EXPECT().
		Refresh(ctx).
		Return(fmt.Errorf("openweather: timeout")).
		Times(1)

	delay := runner.runOnce(ctx)

	assert.Equal(t, time.Minute, delay)
}

func TestStart_BootstrapsAndRefreshesImmediately(t *testing.T) {
	runner, mockService := newTestRefreshRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	mockService.EXPECT().Bootstrap(gomock.Any()).Times(1)
	mockService.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		}).
		Times(1)

	runner.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was not triggered on start")
	}
}
