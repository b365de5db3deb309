package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/AgendariaApp/salon-scheduler/internal/domain/schedule"
	"github.com/AgendariaApp/salon-scheduler/internal/httperr"
	"github.com/AgendariaApp/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *ScheduleGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetServiceByName(
	ctx context.Context,
	salonID uint,
	name string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true AND LOWER(name) = LOWER(?)", salonID, name).
		Order("id ASC").
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &service, nil
}

func (r *ScheduleGormRepository) ListServicesByName(
	ctx context.Context,
	salonID uint,
	name string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("salon_id = ? AND active = true AND LOWER(name) = LOWER(?)", salonID, name).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWeeklySchedule(
	ctx context.Context,
	employeeID uint,
) (domain.WeeklySchedule, error) {

	var days []models.DayAvailability
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {
		return domain.WeeklySchedule{}, err
	}

	if len(days) == 0 {
		return domain.WeeklySchedule{}, httperr.ErrBusiness("employee_not_configured")
	}

	var ws domain.WeeklySchedule
	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			continue
		}
		ws[d.Weekday] = domain.DaySchedule{
			Available: d.Available,
			Start:     d.StartTime,
			End:       d.EndTime,
		}
	}

	return ws, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	employeeID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"employee_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			employeeID, end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// CreateAppointmentIfFree executa checagem de conflito e insert como
// unidade atômica. O pg_advisory_xact_lock serializa commits do mesmo
// profissional: duas requisições simultâneas para o mesmo horário
// resultam em exatamente um insert e um slot_conflict.
func (r *ScheduleGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			int64(ap.EmployeeID),
		).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"employee_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
				ap.EmployeeID,
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(ap).Error
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
