package booking

import (
	"context"
	"time"

	domain "github.com/AgendariaApp/salon-scheduler/internal/domain/schedule"
	"github.com/AgendariaApp/salon-scheduler/internal/cache"
	"github.com/AgendariaApp/salon-scheduler/internal/dto"
	"github.com/AgendariaApp/salon-scheduler/internal/httperr"
	"github.com/AgendariaApp/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ListAvailableSlotsInput struct {
	SalonID     uint
	ServiceName string

	// Meia-noite local no fuso do salão (timezone.ParseDate).
	Date time.Time
}

// ======================================================
// USE CASE
// ======================================================

type ListAvailableSlots struct {
	repo  domain.Repository
	cache cache.SlotCache
}

func NewListAvailableSlots(
	repo domain.Repository,
	slotCache cache.SlotCache,
) *ListAvailableSlots {
	return &ListAvailableSlots{
		repo:  repo,
		cache: slotCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute monta a agenda livre do dia, agrupada por profissional que
// oferece o serviço. Profissional sem horário livre (ou sem agenda
// cadastrada, ou fechado no dia) é omitido; lista vazia com erro nil é
// o caso "nenhum horário", distinto de serviço inexistente.
func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	in ListAvailableSlotsInput,
) ([]dto.EmployeeAgendaDTO, error) {

	dateKey := in.Date.Format(timezone.DateLayout)

	if agenda, ok := uc.cache.GetDay(ctx, in.SalonID, in.ServiceName, dateKey); ok {
		return agenda, nil
	}

	services, err := uc.repo.ListServicesByName(ctx, in.SalonID, in.ServiceName)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := in.Date.Location()
	agenda := make([]dto.EmployeeAgendaDTO, 0, len(services))

	for _, svc := range services {

		ws, err := uc.repo.GetWeeklySchedule(ctx, svc.EmployeeID)
		if err != nil {
			if httperr.IsBusiness(err, "employee_not_configured") {
				continue
			}
			return nil, err
		}

		window, err := domain.ResolveWindow(ws, in.Date, loc)
		if err != nil {
			if httperr.IsBusiness(err, "closed_on_weekday") {
				continue
			}
			return nil, err
		}

		busy, err := uc.busyRanges(ctx, svc.EmployeeID, window)
		if err != nil {
			return nil, err
		}

		duration := time.Duration(svc.DurationMin) * time.Minute
		slots := domain.FreeSlots(window, duration, busy)
		if len(slots) == 0 {
			continue
		}

		out := make([]dto.TimeSlotDTO, 0, len(slots))
		for _, s := range slots {
			out = append(out, dto.TimeSlotDTO{
				Start: timezone.ToLocal(s.Start, loc).Format(timezone.WallClockLayout),
				End:   timezone.ToLocal(s.End, loc).Format(timezone.WallClockLayout),
			})
		}

		agenda = append(agenda, dto.EmployeeAgendaDTO{
			EmployeeID:   svc.EmployeeID,
			EmployeeName: svc.Employee.Name,
			Slots:        out,
		})
	}

	uc.cache.SetDay(ctx, in.SalonID, in.ServiceName, dateKey, agenda)

	return agenda, nil
}

func (uc *ListAvailableSlots) busyRanges(
	ctx context.Context,
	employeeID uint,
	window domain.TimeRange,
) ([]domain.TimeRange, error) {

	appointments, err := uc.repo.ListAppointmentsBetween(
		ctx,
		employeeID,
		window.Start,
		window.End,
	)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.TimeRange, 0, len(appointments))
	for _, ap := range appointments {
		busy = append(busy, domain.TimeRange{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	return busy, nil
}
