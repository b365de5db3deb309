package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/AgendariaApp/salon-scheduler/internal/domain/schedule"
	"github.com/AgendariaApp/salon-scheduler/internal/dto"
	"github.com/AgendariaApp/salon-scheduler/internal/httperr"
	"github.com/AgendariaApp/salon-scheduler/internal/models"
	"github.com/AgendariaApp/salon-scheduler/internal/timezone"
)

// Dois profissionais oferecem "Corte": Bianca trabalha segunda de
// manhã, Carla não tem agenda cadastrada.
func newListFixture() (*fakeRepo, *fakeCache, *ListAvailableSlots) {
	var monday domain.WeeklySchedule
	monday[time.Monday] = domain.DaySchedule{Available: true, Start: "09:00", End: "12:00"}

	repo := &fakeRepo{
		salon: models.Salon{ID: 1, Slug: "agendaria", Timezone: "America/Sao_Paulo"},
		services: []models.Service{
			{
				ID: 100, SalonID: 1, EmployeeID: 10,
				Employee: models.Employee{ID: 10, Name: "Bianca"},
				Name:     "Corte", DurationMin: 30, Price: 80, Active: true,
			},
			{
				ID: 101, SalonID: 1, EmployeeID: 20,
				Employee: models.Employee{ID: 20, Name: "Carla"},
				Name:     "Corte", DurationMin: 30, Price: 90, Active: true,
			},
		},
		schedules: map[uint]domain.WeeklySchedule{
			10: monday,
		},
	}

	slotCache := newFakeCache()
	uc := NewListAvailableSlots(repo, slotCache)
	return repo, slotCache, uc
}

func listInput(t *testing.T, dateStr string) ListAvailableSlotsInput {
	t.Helper()
	loc := timezone.Location("America/Sao_Paulo")
	date, err := timezone.ParseDate(dateStr, loc)
	require.NoError(t, err)

	return ListAvailableSlotsInput{
		SalonID:     1,
		ServiceName: "corte",
		Date:        date,
	}
}

func TestListSlotsGroupsByEmployee(t *testing.T) {
	_, _, uc := newListFixture()

	agenda, err := uc.Execute(context.Background(), listInput(t, "2026-03-02"))
	require.NoError(t, err)

	// Carla não tem agenda cadastrada: omitida, não é erro.
	require.Len(t, agenda, 1)
	assert.Equal(t, "Bianca", agenda[0].EmployeeName)

	slots := agenda[0].Slots
	require.Len(t, slots, 11) // 09:00 ... 11:30, passo de 15min
	assert.Equal(t, dto.TimeSlotDTO{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, dto.TimeSlotDTO{Start: "11:30", End: "12:00"}, slots[len(slots)-1])
}

func TestListSlotsSkipsBookedTimes(t *testing.T) {
	repo, _, uc := newListFixture()

	// 10:00–10:30 local = 13:00–13:30 UTC já reservado.
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 1, EmployeeID: 10,
		StartTime: time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC),
		Status:    string(domain.StatusScheduled),
	})

	agenda, err := uc.Execute(context.Background(), listInput(t, "2026-03-02"))
	require.NoError(t, err)
	require.Len(t, agenda, 1)

	starts := map[string]bool{}
	for _, s := range agenda[0].Slots {
		starts[s.Start] = true
	}

	assert.True(t, starts["09:30"], "adjacente antes")
	assert.True(t, starts["10:30"], "adjacente depois")
	assert.False(t, starts["09:45"])
	assert.False(t, starts["10:00"])
	assert.False(t, starts["10:15"])
}

func TestListSlotsCancelledAppointmentFreesTheTime(t *testing.T) {
	repo, _, uc := newListFixture()

	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 1, EmployeeID: 10,
		StartTime: time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC),
		Status:    string(domain.StatusCancelled),
	})

	agenda, err := uc.Execute(context.Background(), listInput(t, "2026-03-02"))
	require.NoError(t, err)
	require.Len(t, agenda, 1)
	assert.Len(t, agenda[0].Slots, 11)
}

func TestListSlotsClosedDayIsEmptySuccess(t *testing.T) {
	_, _, uc := newListFixture()

	// Terça: todo mundo fechado → lista vazia, sem erro.
	agenda, err := uc.Execute(context.Background(), listInput(t, "2026-03-03"))
	require.NoError(t, err)
	assert.Empty(t, agenda)
}

func TestListSlotsUnknownServiceIsAnError(t *testing.T) {
	_, _, uc := newListFixture()

	in := listInput(t, "2026-03-02")
	in.ServiceName = "luzes"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestListSlotsUsesCachedAgenda(t *testing.T) {
	_, slotCache, uc := newListFixture()

	cached := []dto.EmployeeAgendaDTO{
		{EmployeeID: 10, EmployeeName: "Bianca", Slots: []dto.TimeSlotDTO{{Start: "09:00", End: "09:30"}}},
	}
	slotCache.SetDay(context.Background(), 1, "corte", "2026-03-02", cached)

	agenda, err := uc.Execute(context.Background(), listInput(t, "2026-03-02"))
	require.NoError(t, err)
	assert.Equal(t, cached, agenda)
}

func TestListSlotsStoresResultInCache(t *testing.T) {
	_, slotCache, uc := newListFixture()

	agenda, err := uc.Execute(context.Background(), listInput(t, "2026-03-02"))
	require.NoError(t, err)

	got, ok := slotCache.GetDay(context.Background(), 1, "corte", "2026-03-02")
	require.True(t, ok)
	assert.Equal(t, agenda, got)
}

// Ponta a ponta com os fakes: reservar derruba a agenda cacheada do
// dia e a listagem seguinte não oferece mais o horário.
func TestListSlotsAfterBookingReflectsCommit(t *testing.T) {
	repo, slotCache, listUC := newListFixture()
	bookUC := NewBookAppointment(repo, nil, slotCache)

	before, err := listUC.Execute(context.Background(), listInput(t, "2026-03-02"))
	require.NoError(t, err)
	require.Len(t, before[0].Slots, 11)

	_, err = bookUC.Execute(context.Background(), BookAppointmentInput{
		SalonID:     1,
		ServiceName: "corte",
		Date:        "2026-03-02",
		Time:        "10:00",
		UserID:      "user-42",
	})
	require.NoError(t, err)

	after, err := listUC.Execute(context.Background(), listInput(t, "2026-03-02"))
	require.NoError(t, err)

	starts := map[string]bool{}
	for _, s := range after[0].Slots {
		starts[s.Start] = true
	}
	assert.False(t, starts["10:00"])
	assert.True(t, starts["09:30"])
	assert.True(t, starts["10:30"])
}
