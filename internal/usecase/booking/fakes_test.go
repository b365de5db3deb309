package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/AgendariaApp/salon-scheduler/internal/domain/schedule"
	"github.com/AgendariaApp/salon-scheduler/internal/dto"
	"github.com/AgendariaApp/salon-scheduler/internal/httperr"
	"github.com/AgendariaApp/salon-scheduler/internal/models"
)

// fakeRepo simula o gateway de persistência. O mutex em
// CreateAppointmentIfFree reproduz a garantia transacional do banco:
// checagem de conflito e insert indivisíveis.
type fakeRepo struct {
	mu sync.Mutex

	salon        models.Salon
	services     []models.Service
	schedules    map[uint]domain.WeeklySchedule
	appointments []models.Appointment

	nextID uint
}

func (r *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if r.salon.ID != id {
		return nil, fmt.Errorf("salon %d not found", id)
	}
	salon := r.salon
	return &salon, nil
}

func (r *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if r.salon.Slug != slug {
		return nil, fmt.Errorf("salon %q not found", slug)
	}
	salon := r.salon
	return &salon, nil
}

func (r *fakeRepo) GetServiceByName(_ context.Context, salonID uint, name string) (*models.Service, error) {
	for _, svc := range r.services {
		if svc.SalonID == salonID && strings.EqualFold(svc.Name, name) {
			out := svc
			return &out, nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (r *fakeRepo) ListServicesByName(_ context.Context, salonID uint, name string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		if svc.SalonID == salonID && strings.EqualFold(svc.Name, name) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetWeeklySchedule(_ context.Context, employeeID uint) (domain.WeeklySchedule, error) {
	ws, ok := r.schedules[employeeID]
	if !ok {
		return domain.WeeklySchedule{}, httperr.ErrBusiness("employee_not_configured")
	}
	return ws, nil
}

func (r *fakeRepo) ListAppointmentsBetween(
	_ context.Context,
	employeeID uint,
	start, end time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.EmployeeID != employeeID || ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out, nil
}

func (r *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	requested := domain.TimeRange{Start: ap.StartTime, End: ap.EndTime}
	for _, existing := range r.appointments {
		if existing.EmployeeID != ap.EmployeeID || existing.Status != string(domain.StatusScheduled) {
			continue
		}
		busy := domain.TimeRange{Start: existing.StartTime, End: existing.EndTime}
		if requested.Overlaps(busy) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeCache registra sets e invalidações para inspeção nos testes.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]dto.EmployeeAgendaDTO
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]dto.EmployeeAgendaDTO{}}
}

func cacheKey(salonID uint, serviceName, date string) string {
	return fmt.Sprintf("%d:%s:%s", salonID, strings.ToLower(serviceName), date)
}

func (c *fakeCache) GetDay(_ context.Context, salonID uint, serviceName, date string) ([]dto.EmployeeAgendaDTO, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	agenda, ok := c.entries[cacheKey(salonID, serviceName, date)]
	return agenda, ok
}

func (c *fakeCache) SetDay(_ context.Context, salonID uint, serviceName, date string, agenda []dto.EmployeeAgendaDTO) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(salonID, serviceName, date)] = agenda
}

func (c *fakeCache) InvalidateDay(_ context.Context, salonID uint, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, fmt.Sprintf("%d:", salonID)) && strings.HasSuffix(key, ":"+date) {
			delete(c.entries, key)
		}
	}
}
