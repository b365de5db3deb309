package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendariaApp/salon-scheduler/internal/httpresp"
	"github.com/AgendariaApp/salon-scheduler/internal/middleware"
	"github.com/AgendariaApp/salon-scheduler/internal/models"
	"github.com/AgendariaApp/salon-scheduler/internal/timezone"
)

// Cadastro da agenda semanal do profissional autenticado.
type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type DayAvailabilityConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Available bool   `json:"available"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityUpdateRequest struct {
	Days []DayAvailabilityConfig `json:"days" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	employeeIDVal, _ := c.Get(middleware.ContextEmployeeID)
	employeeID := employeeIDVal.(uint)

	var days []models.DayAvailability
	if err := h.db.
		Where("employee_id = ?", employeeID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	httpresp.List(c, days)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	employeeIDVal, _ := c.Get(middleware.ContextEmployeeID)
	employeeID := employeeIDVal.(uint)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Dia disponível exige janela bem formada com início antes do fim;
	// é aqui que a invariante da agenda é garantida na escrita.
	for _, d := range req.Days {
		if !d.Available {
			continue
		}
		if !validWindow(d.StartTime, d.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_window",
				"message": "Horário de início deve ser anterior ao de término.",
			})
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ?", employeeID).
			Delete(&models.DayAvailability{}).Error; err != nil {
			return err
		}

		var toCreate []models.DayAvailability
		for _, d := range req.Days {
			toCreate = append(toCreate, models.DayAvailability{
				EmployeeID: employeeID,
				Weekday:    d.Weekday,
				Available:  d.Available,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func validWindow(startStr, endStr string) bool {
	start, err := time.Parse(timezone.WallClockLayout, startStr)
	if err != nil {
		return false
	}
	end, err := time.Parse(timezone.WallClockLayout, endStr)
	if err != nil {
		return false
	}
	return start.Before(end)
}
