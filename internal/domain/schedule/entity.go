package schedule

import (
	"time"

	"github.com/AgendariaApp/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================
// As transições de status existem no modelo, mas não há fluxo de
// cancelamento/reagendamento exposto pela API nesta fase.

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
