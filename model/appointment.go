package model

// Trạng thái lịch hẹn (giữ nguyên chữ hoa/thường theo API PetWell)
const (
	StatusPending   = "Pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Appointment struct {
	ID              string  `json:"id"`
	PetName         string  `json:"petName"`
	PetSpecies      string  `json:"petSpecies"`
	PetGender       string  `json:"petGender"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ClinicName      string  `json:"clinicName"`
	AppointmentDate string  `json:"appointment_date"` // ISO-8601, múi giờ cố định +07:00
	Status          string  `json:"status"`
	Symptoms        string  `json:"symptoms,omitempty"`
	CancelReason    string  `json:"cancelReason,omitempty"` // chỉ có khi Cancelled
	DepositAmount   string  `json:"depositAmount,omitempty"`
	IsDepositPaid   bool    `json:"isDepositPaid"`
	PaymentMethod   string  `json:"paymentMethod"`
	IsServicePaid   bool    `json:"isServicePaid"`
	TotalCost       float64 `json:"totalCost"`
	FinalPaid       float64 `json:"finalPaid"`
}

type CancelAppointmentInput struct {
	Reason string `json:"reason" validate:"required"`
}

type AvailabilityInput struct {
	AppointmentDate string `json:"appointmentDate"`
	ClinicID        string `json:"clinicId"`
}
