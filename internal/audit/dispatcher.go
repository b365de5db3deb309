package audit

import (
	"go.uber.org/zap"

	applog "github.com/AgendariaApp/salon-scheduler/internal/logger"
)

type Event struct {
	SalonID    uint
	EmployeeID *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.SalonID,
			ev.EmployeeID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			applog.L().Warn("audit error", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		applog.L().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
