package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendariaApp/salon-scheduler/internal/dto"
	"github.com/AgendariaApp/salon-scheduler/internal/httperr"
	"github.com/AgendariaApp/salon-scheduler/internal/models"
	"github.com/AgendariaApp/salon-scheduler/internal/timezone"
	"github.com/AgendariaApp/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// BookingHandler é a superfície chamada pelo front conversacional:
// os parâmetros já chegam extraídos (serviço, data, hora, usuário).
type BookingHandler struct {
	db     *gorm.DB
	listUC *booking.ListAvailableSlots
	bookUC *booking.BookAppointment
}

func NewBookingHandler(
	db *gorm.DB,
	listUC *booking.ListAvailableSlots,
	bookUC *booking.BookAppointment,
) *BookingHandler {
	return &BookingHandler{
		db:     db,
		listUC: listUC,
		bookUC: bookUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type BookAppointmentRequest struct {
	ServiceName string `json:"service_name" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	UserID      string `json:"user_id" binding:"required"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) ListAvailability(c *gin.Context) {
	slug := c.Param("slug")
	serviceName := c.Query("service")
	dateStr := c.Query("date")

	if serviceName == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Serviço e data são obrigatórios.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	agenda, err := h.listUC.Execute(
		c.Request.Context(),
		booking.ListAvailableSlotsInput{
			SalonID:     salon.ID,
			ServiceName: serviceName,
			Date:        date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found",
				fmt.Sprintf("Desculpe, não oferecemos o serviço %q.", serviceName))
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	// Agenda vazia é sucesso: o front renderiza "nenhum horário
	// disponível", o que não é um erro de consulta.
	resp := gin.H{
		"date":    dateStr,
		"service": serviceName,
		"agenda":  agenda,
	}
	if len(agenda) == 0 {
		resp["message"] = "Nenhum horário disponível para este dia."
	}

	c.JSON(http.StatusOK, resp)
}

////////////////////////////////////////////////////////
// BOOK
////////////////////////////////////////////////////////

func (h *BookingHandler) BookAppointment(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(
		c.Request.Context(),
		booking.BookAppointmentInput{
			SalonID:     salon.ID,
			ServiceName: req.ServiceName,
			Date:        req.Date,
			Time:        req.Time,
			UserID:      req.UserID,
		},
	)

	if err != nil {
		mapBookingErrors(c, err, req.ServiceName)
		return
	}

	loc := locationFromSalon(&salon)
	c.JSON(http.StatusCreated, dto.AppointmentDTO{
		PublicID:     ap.PublicID,
		EmployeeName: employeeName(h.db, ap.EmployeeID),
		ServiceName:  ap.ServiceName,
		Date:         timezone.ToLocal(ap.StartTime, loc).Format(timezone.DateLayout),
		Start:        timezone.ToLocal(ap.StartTime, loc).Format(timezone.WallClockLayout),
		End:          timezone.ToLocal(ap.EndTime, loc).Format(timezone.WallClockLayout),
		Price:        ap.Price,
		Status:       ap.Status,
	})
}

func employeeName(db *gorm.DB, employeeID uint) string {
	var employee models.Employee
	if err := db.First(&employee, employeeID).Error; err != nil {
		return ""
	}
	return employee.Name
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

func mapBookingErrors(c *gin.Context, err error, serviceName string) {
	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found",
			fmt.Sprintf("Desculpe, não oferecemos o serviço %q.", serviceName))

	case httperr.IsBusiness(err, "employee_not_configured"):
		httperr.BadRequest(c, "employee_not_configured",
			"Desculpe, o profissional não tem horários cadastrados.")

	case httperr.IsBusiness(err, "closed_on_weekday"):
		httperr.BadRequest(c, "closed_on_weekday",
			"Desculpe, não há atendimento neste dia. Por favor, escolha outro dia.")

	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours",
			"Este horário está fora do expediente.")

	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict",
			"Desculpe, este horário já está ocupado. Por favor, tente outro.")

	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")

	case httperr.IsBusiness(err, "invalid_schedule"):
		httperr.Internal(c, "invalid_schedule", "Agenda do profissional mal configurada.")

	default:
		httperr.Internal(c, "booking_failed", "Erro ao criar agendamento.")
	}
}
