package models

import "time"

type Appointment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"size:36;uniqueIndex" json:"public_id"`

	SalonID uint `json:"salon_id"`

	EmployeeID uint     `json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Identificador do cliente vindo do front conversacional.
	UserID string `gorm:"size:100;not null" json:"user_id"`

	// Snapshot no momento da reserva: o agendamento não muda se o
	// serviço for editado depois.
	ServiceName string  `gorm:"size:100" json:"service_name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	// Instantes canônicos (UTC).
	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
