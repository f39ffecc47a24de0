package service

import (
	"context"
	"time"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/websocket"
)

// DefaultWriteTimeout bounds a single persistence write
const DefaultWriteTimeout = 10 * time.Second

// Options holds settings shared by the services
type Options struct {
	// Location is the calendar time zone month and day boundaries are computed in
	Location *time.Location
	// WriteTimeout is the deadline applied to each write
	WriteTimeout time.Duration
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o Options) now() time.Time {
	return o.Now().In(o.Location)
}

// writeContext derives the deadline-bounded context for a write
func (o Options) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, o.WriteTimeout)
}

// monthFilters selects the expenses dated inside one calendar month
func (o Options) monthFilters(year, month int) *domain.ExpenseFilters {
	w := aggregation.MonthWindow(year, time.Month(month), o.Location)
	return &domain.ExpenseFilters{StartDate: &w.Start, EndDate: &w.End}
}

// events publishes change notifications once a write succeeded
type events struct {
	eventPublisher websocket.EventPublisher
}

// SetEventPublisher sets the event publisher for real-time updates
func (e *events) SetEventPublisher(publisher websocket.EventPublisher) {
	e.eventPublisher = publisher
}

func (e *events) publishEvent(userID string, event websocket.Event) {
	if e.eventPublisher != nil {
		e.eventPublisher.Publish(userID, event)
	}
}

func monthOf(month int) time.Month {
	return time.Month(month)
}
