package schedule

import (
	"context"
	"time"

	"github.com/AgendariaApp/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service --------
	// GetServiceByName devolve o primeiro serviço ativo com o nome
	// (comparação sem caixa); service_not_found quando não há.
	GetServiceByName(
		ctx context.Context,
		salonID uint,
		name string,
	) (*models.Service, error)

	// ListServicesByName devolve todos os profissionais que oferecem
	// o serviço com esse nome, com Employee pré-carregado.
	ListServicesByName(
		ctx context.Context,
		salonID uint,
		name string,
	) ([]models.Service, error)

	// -------- Availability --------
	// GetWeeklySchedule falha com employee_not_configured quando o
	// profissional não tem nenhum dia cadastrado — caso distinto de
	// "fechado neste dia da semana".
	GetWeeklySchedule(
		ctx context.Context,
		employeeID uint,
	) (WeeklySchedule, error)

	// -------- Appointment (read) --------
	// ListAppointmentsBetween devolve os agendamentos ativos do
	// profissional que sobrepõem [start, end), ordenados por início.
	ListAppointmentsBetween(
		ctx context.Context,
		employeeID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (commit) --------
	// CreateAppointmentIfFree verifica conflito e insere em uma única
	// transação serializada por profissional; falha com slot_conflict.
	// É a única forma de gravar um agendamento.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
