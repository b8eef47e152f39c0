// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/models"
)

// DailyBudget is the in-process [BudgetCounter]. The day boundary is taken
// in loc and the counter resets lazily on the first call after it.
type DailyBudget struct {
	limit uint64
	loc   *time.Location
	now   func() time.Time

	mu      sync.Mutex
	day     string
	epoch   uint64
	used    uint64
	pending uint64
}

// NewDailyBudget returns a budget of limit gas per day in loc. A nil loc
// means UTC; a nil now means time.Now.
func NewDailyBudget(limit uint64, loc *time.Location, now func() time.Time) *DailyBudget {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	b := &DailyBudget{limit: limit, loc: loc, now: now}
	b.day = b.today()
	return b
}

func (b *DailyBudget) today() string {
	return b.now().In(b.loc).Format(time.DateOnly)
}

// rollover must be called with mu held. Reservations from an earlier day
// are forgotten together with the usage.
func (b *DailyBudget) rollover() {
	if day := b.today(); day != b.day {
		b.day = day
		b.epoch++
		b.used = 0
		b.pending = 0
	}
}

// Reserve holds estimate gas while a sponsorship is in flight. It fails
// with ErrGasLimitExceeded once used plus pending has reached the limit.
func (b *DailyBudget) Reserve(estimate uint64) (Reservation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollover()
	if b.used+b.pending >= b.limit {
		return nil, fmt.Errorf("%w: used %d, pending %d of %d", ErrGasLimitExceeded, b.used, b.pending, b.limit)
	}

	b.pending += estimate
	return &budgetReservation{budget: b, amount: estimate, epoch: b.epoch}, nil
}

func (b *DailyBudget) Snapshot() models.BudgetSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollover()
	return models.BudgetSnapshot{
		DailyUsed:     b.used,
		Pending:       b.pending,
		DailyGasLimit: b.limit,
		LastResetDate: b.day,
	}
}

func (b *DailyBudget) Restore(used uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollover()
	b.used = used
}

// StartOfDay returns midnight of the current budget day in its time zone.
func (b *DailyBudget) StartOfDay() time.Time {
	now := b.now().In(b.loc)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, b.loc)
}

type budgetReservation struct {
	budget *DailyBudget
	amount uint64
	epoch  uint64
	done   bool
}

func (r *budgetReservation) settle() {
	if r.epoch == r.budget.epoch {
		r.budget.pending -= r.amount
	}
	r.done = true
}

func (r *budgetReservation) Commit(actual uint64) uint64 {
	b := r.budget
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollover()
	if r.done {
		return b.used
	}
	r.settle()
	b.used += actual
	return b.used
}

func (r *budgetReservation) Release() {
	b := r.budget
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollover()
	if r.done {
		return
	}
	r.settle()
}
