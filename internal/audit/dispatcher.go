package audit

import "go.uber.org/zap"

// Lifecycle actions recorded on the audit trail.
const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentStatus    = "appointment_status_updated"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionPaymentOrderCreated  = "payment_order_created"
	ActionPaymentVerified      = "payment_verified"
	ActionPaymentSimulated     = "payment_simulated"
	ActionReviewCreated        = "review_created"
	ActionReviewUpdated        = "review_updated"
	ActionReviewDeleted        = "review_deleted"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink receives dispatched events. The gorm-backed Logger is the
// production sink.
type Sink interface {
	Log(userID *uint, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher records audit events off the request path. The queue is
// bounded; when full, events are dropped rather than blocking the API.
type Dispatcher struct {
	logger Sink
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.With(zap.String("service", "audit")),
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
