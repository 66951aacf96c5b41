package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventKind string

const (
	EventCustomerStatusChanged      EventKind = "customer.status_changed"
	EventCustomerSelectionCompleted EventKind = "customer.selection_completed"
	EventShootCreated               EventKind = "shoot.created"
)

// DomainEvent is a side-effect request raised after a successful write.
type DomainEvent interface {
	Kind() EventKind
}

// StatusField names which status column changed.
type StatusField string

const (
	FieldAppointmentStatus StatusField = "appointmentStatus"
	FieldAlbumStatus       StatusField = "albumStatus"
)

type CustomerStatusChanged struct {
	CustomerID     uuid.UUID
	PhotographerID uuid.UUID
	CustomerName   string
	CustomerEmail  string
	Field          StatusField
	From           string
	To             string
	// Label is the display text of To.
	Label string
}

func (CustomerStatusChanged) Kind() EventKind { return EventCustomerStatusChanged }

type CustomerSelectionCompleted struct {
	CustomerID     uuid.UUID
	PhotographerID uuid.UUID
	CustomerName   string
}

func (CustomerSelectionCompleted) Kind() EventKind { return EventCustomerSelectionCompleted }

type ShootCreated struct {
	ShootID        uuid.UUID
	CustomerID     uuid.UUID
	PhotographerID uuid.UUID
	CustomerName   string
	Date           time.Time
	Type           string
}

func (ShootCreated) Kind() EventKind { return EventShootCreated }

// EventHandler performs one side effect. A returned error is logged by the
// dispatcher and never reaches the caller of Publish.
type EventHandler func(ctx context.Context, event DomainEvent) error

// EventPublisher hands events to their side-effect handlers. Publish is
// best-effort: it has no result and must not fail the primary operation.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent)
}

type EventDispatcher struct {
	mu       sync.RWMutex
	handlers map[EventKind][]EventHandler
	log      *zap.Logger
}

func NewEventDispatcher(log *zap.Logger) *EventDispatcher {
	return &EventDispatcher{
		handlers: map[EventKind][]EventHandler{},
		log:      log,
	}
}

func (d *EventDispatcher) Subscribe(kind EventKind, h EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Publish runs handlers synchronously in registration order. There is no
// retry; a failed side effect is logged and dropped.
func (d *EventDispatcher) Publish(ctx context.Context, events ...DomainEvent) {
	for _, ev := range events {
		d.mu.RLock()
		hs := d.handlers[ev.Kind()]
		d.mu.RUnlock()

		for _, h := range hs {
			d.run(ctx, ev, h)
		}
	}
}

func (d *EventDispatcher) run(ctx context.Context, ev DomainEvent, h EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("event handler panicked",
				append(eventFields(ev), zap.Any("panic", r))...)
		}
	}()

	if err := h(ctx, ev); err != nil {
		d.log.Error("event handler failed",
			append(eventFields(ev), zap.Error(err))...)
	}
}

func eventFields(ev DomainEvent) []zap.Field {
	fields := []zap.Field{zap.String("event", string(ev.Kind()))}
	switch e := ev.(type) {
	case CustomerStatusChanged:
		fields = append(fields,
			zap.String("customer_id", e.CustomerID.String()),
			zap.String("photographer_id", e.PhotographerID.String()),
			zap.String("field", string(e.Field)))
	case CustomerSelectionCompleted:
		fields = append(fields,
			zap.String("customer_id", e.CustomerID.String()),
			zap.String("photographer_id", e.PhotographerID.String()))
	case ShootCreated:
		fields = append(fields,
			zap.String("shoot_id", e.ShootID.String()),
			zap.String("customer_id", e.CustomerID.String()),
			zap.String("photographer_id", e.PhotographerID.String()))
	}
	return fields
}
