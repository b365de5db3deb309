package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AgendariaApp/salon-scheduler/internal/audit"
	"github.com/AgendariaApp/salon-scheduler/internal/cache"
	domain "github.com/AgendariaApp/salon-scheduler/internal/domain/schedule"
	"github.com/AgendariaApp/salon-scheduler/internal/httperr"
	"github.com/AgendariaApp/salon-scheduler/internal/models"
	"github.com/AgendariaApp/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	SalonID uint

	ServiceName string
	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	UserID      string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.SlotCache
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slotCache cache.SlotCache,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		cache: slotCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida e grava uma única reserva. Toda validação acontece
// antes de qualquer escrita; o único erro possível no commit é
// slot_conflict, vindo do insert atômico do repositório, e é tratado
// igual a um conflito detectado antes.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Salão e fuso de apresentação
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	start, err := timezone.ParseDateTime(in.Date, in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Serviço (primeiro profissional que oferece)
	// --------------------------------------------------
	service, err := uc.repo.GetServiceByName(ctx, in.SalonID, in.ServiceName)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 3. Janela de expediente
	// --------------------------------------------------
	ws, err := uc.repo.GetWeeklySchedule(ctx, service.EmployeeID)
	if err != nil {
		return nil, err
	}

	window, err := domain.ResolveWindow(ws, start, loc)
	if err != nil {
		return nil, err
	}

	requested := domain.TimeRange{
		Start: timezone.ToCanonical(start),
		End:   timezone.ToCanonical(end),
	}

	if !window.Contains(requested) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 4. Commit atômico (checagem de conflito + insert)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicID:   uuid.NewString(),
		SalonID:    in.SalonID,
		EmployeeID: service.EmployeeID,
		ServiceID:  service.ID,
		UserID:     in.UserID,

		ServiceName: service.Name,
		Price:       service.Price,
		DurationMin: service.DurationMin,

		StartTime: requested.Start,
		EndTime:   requested.End,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auditoria + invalidação da agenda do dia
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			SalonID:    in.SalonID,
			EmployeeID: &ap.EmployeeID,
			Action:     "appointment_created",
			Entity:     "appointment",
			EntityID:   &ap.ID,
		})
	}

	uc.cache.InvalidateDay(ctx, in.SalonID, in.Date)

	return ap, nil
}
