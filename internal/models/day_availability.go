package models

import "time"

// Expediente fixo de um profissional em um dia da semana.
// Weekday segue time.Weekday (0 = domingo ... 6 = sábado).
// StartTime/EndTime são horários de parede ("15:04") no fuso do salão.
type DayAvailability struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EmployeeID uint `gorm:"index:idx_employee_weekday,unique" json:"employee_id"`

	Weekday   int    `gorm:"index:idx_employee_weekday,unique" json:"weekday"`
	Available bool   `json:"available"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
