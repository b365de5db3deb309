package dto

type TimeSlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type EmployeeAgendaDTO struct {
	EmployeeID   uint          `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Slots        []TimeSlotDTO `json:"slots"`
}
