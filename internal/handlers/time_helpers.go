package handlers

import (
	"time"

	"github.com/AgendariaApp/salon-scheduler/internal/models"
	"github.com/AgendariaApp/salon-scheduler/internal/timezone"
)

// resolve o fuso oficial do salão
func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location("")
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return timezone.ParseDate(dateStr, locationFromSalon(salon))
}
