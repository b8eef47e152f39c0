// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/mock"
	"github.com/MKhiriev/go-fee-sponsor/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// countingWorker counts Run calls and blocks until ctx is cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_RunsAllUntilCancelled(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return w1.runs.Load() == 1 && w2.runs.Load() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_Empty(t *testing.T) {
	NewWorkers().Run(context.Background())
}

// checkerFunc adapts a function to BalanceChecker.
type checkerFunc func(ctx context.Context) (models.SponsorBalance, error)

func (f checkerFunc) CheckSponsorBalance(ctx context.Context) (models.SponsorBalance, error) {
	return f(ctx)
}

type recordingHealth struct {
	mu       sync.Mutex
	statuses []bool
}

func (h *recordingHealth) SetSponsorServing(serving bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, serving)
}

func (h *recordingHealth) get() []bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]bool(nil), h.statuses...)
}

func TestBalanceMonitor_FlipsHealth(t *testing.T) {
	readings := []models.SponsorBalance{{Low: true}, {Low: false}}
	var calls atomic.Int32
	checker := checkerFunc(func(context.Context) (models.SponsorBalance, error) {
		i := int(calls.Add(1)) - 1
		if i >= len(readings) {
			return models.SponsorBalance{}, errors.New("ledger unavailable")
		}
		return readings[i], nil
	})
	health := &recordingHealth{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewBalanceMonitor(checker, health, 5*time.Millisecond, logger.Nop()).Run(ctx)

	assert.Eventually(t, func() bool { return calls.Load() >= 4 }, time.Second, time.Millisecond)

	// failed checks leave the last status in place
	assert.Equal(t, []bool{false, true}, health.get())
}

func TestBalanceMonitor_NilHealth(t *testing.T) {
	checker := checkerFunc(func(context.Context) (models.SponsorBalance, error) {
		return models.SponsorBalance{Low: true}, nil
	})

	m := NewBalanceMonitor(checker, nil, time.Hour, logger.Nop())
	m.check(context.Background())
}

func TestKeypairPurger_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	purger := mock.NewMockExpiredKeypairPurger(ctrl)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	p := NewKeypairPurger(purger, time.Hour, logger.Nop())
	p.now = func() time.Time { return now }

	purger.EXPECT().PurgeExpired(gomock.Any(), now).Return(int64(3), nil)
	p.purge(context.Background())

	purger.EXPECT().PurgeExpired(gomock.Any(), now).Return(int64(0), errors.New("db down"))
	p.purge(context.Background())
}

func TestKeypairPurger_RunsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	purger := mock.NewMockExpiredKeypairPurger(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	purger.EXPECT().PurgeExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			cancel()
			return 0, nil
		})

	done := make(chan struct{})
	go func() {
		NewKeypairPurger(purger, time.Hour, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purger did not stop")
	}
}
