package dto

type AppointmentDTO struct {
	PublicID     string  `json:"public_id"`
	EmployeeName string  `json:"employee_name"`
	ServiceName  string  `json:"service_name"`
	Date         string  `json:"date"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
}
