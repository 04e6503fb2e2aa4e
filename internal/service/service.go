// Package service implements the Ludus Connect services on top of a
// storage.Store.
package service

import (
	"time"

	"github.com/mmynk/ludus/internal/calculator"
	"github.com/mmynk/ludus/internal/models"
)

// Option configures a service.
type Option func(*options)

type options struct {
	now         func() time.Time
	lockedScope models.LockedScope
}

// WithClock replaces the clock used for timestamps, "today" and the
// current month.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLockedScope selects which locked persons the dashboard counts.
func WithLockedScope(scope models.LockedScope) Option {
	return func(o *options) {
		o.lockedScope = scope
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:         time.Now,
		lockedScope: models.LockedScopeAll,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// today is the current calendar date in the server's location.
func (o options) today() string {
	return o.now().Format(models.DateLayout)
}

func (o options) currentMonth() calculator.Month {
	return calculator.MonthOf(o.now())
}

// month resolves an optional "YYYY-MM" reference, defaulting to the current month.
func (o options) month(ref string) (calculator.Month, error) {
	if ref == "" {
		return o.currentMonth(), nil
	}
	return calculator.ParseMonth(ref, o.now().Location())
}
