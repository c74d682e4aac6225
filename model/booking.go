package model

// Phương thức thanh toán
const (
	PaymentMethodCash  = "Cash"
	PaymentMethodVNPay = "VNPay"

	VNPayOptionDeposit = "deposit"
	VNPayOptionTotal   = "total"

	// Tiền cọc cố định (VND) cho mọi phương thức trả trước
	FixedDepositAmount = 100000
)

// BookingDraft là bản nháp đặt lịch, chỉ sống trong một phiên wizard,
// bị huỷ khi đóng/huỷ/đặt thành công, không bao giờ lưu dở dang
type BookingDraft struct {
	PetID         string `json:"petId"`
	ClinicID      string `json:"clinicId"`
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:mm
	Symptoms      string `json:"symptoms"`
	ContactName   string `json:"contactName"`
	ContactPhone  string `json:"contactPhone"`
	PaymentMethod string `json:"paymentMethod"`
	VNPayOption   string `json:"vnpayOption"` // deposit | total, chỉ dùng với VNPay
}

type BookingDetailsInput struct {
	PetID        string `json:"petId" validate:"required"`
	ClinicID     string `json:"clinicId" validate:"required"`
	ServiceID    string `json:"serviceId" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	Symptoms     string `json:"symptoms"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

type BookingConfirmInput struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	VNPayOption   string `json:"vnpayOption" validate:"omitempty,oneof=deposit total"`
}

// CreateAppointmentInput là payload gửi lên API PetWell khi chốt đặt lịch.
// DepositAmount/TotalServicePrice là con trỏ để key biến mất khỏi JSON
// đúng theo từng nhánh thanh toán.
type CreateAppointmentInput struct {
	PetID             string   `json:"petId"`
	ClinicID          string   `json:"clinicId"`
	ServiceID         string   `json:"serviceId"`
	AppointmentDate   string   `json:"appointmentDate"` // ISO-8601 +07:00
	Symptoms          string   `json:"symptoms,omitempty"`
	ContactName       string   `json:"contactName,omitempty"`
	ContactPhone      string   `json:"contactPhone,omitempty"`
	PaymentMethod     string   `json:"paymentMethod"`
	DepositAmount     *string  `json:"depositAmount,omitempty"`
	IsDepositPaid     bool     `json:"isDepositPaid"`
	TotalServicePrice *float64 `json:"totalServicePrice,omitempty"`
	IsServicePaid     bool     `json:"isServicePaid"`
}
