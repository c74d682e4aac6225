package model

// paymentType gửi kèm khi xin URL thanh toán
const (
	PaymentTypeFull    = "full"
	PaymentTypeDeposit = "deposit"
)

// PaymentInitiation mô tả kết quả khởi tạo thanh toán: hoặc chuyển hướng
// sang cổng (Redirect=true, URL), hoặc không cần cổng
type PaymentInitiation struct {
	Redirect bool   `json:"redirect"`
	URL      string `json:"url,omitempty"`
}

// PaymentVerifyResult là kết quả xác minh giao dịch sau khi cổng trả về
type PaymentVerifyResult struct {
	IsSuccess     bool   `json:"isSuccess"`
	AppointmentID string `json:"appointmentId,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	Status        string `json:"status,omitempty"`
	Message       string `json:"message,omitempty"`
}
