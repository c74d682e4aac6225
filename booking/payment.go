package booking

import (
	"strconv"

	"petwell_client/model"
	"petwell_client/utils"
)

// PaymentFields là các trường thanh toán gửi kèm payload đặt lịch,
// rẽ nhánh theo phương thức và tuỳ chọn VNPay
type PaymentFields struct {
	DepositAmount     *string
	IsDepositPaid     bool
	TotalServicePrice *float64
	IsServicePaid     bool
	PaymentType       string // full | deposit, chỉ có nghĩa khi qua cổng
}

// ComputePayment rẽ nhánh thanh toán:
//   - Cash: cọc "0", chưa trả gì, trả đủ khi tới khám
//   - VNPay + total: trả trọn giá dịch vụ qua cổng, không gửi key cọc
//   - VNPay + deposit và MỌI phương thức còn lại: cọc cố định 100000 trả
//     ngay (giữ nguyên hành vi fallback của hệ thống cũ, không suy diễn
//     thêm phương thức mới)
func ComputePayment(method, vnpayOption string, servicePrice float64) PaymentFields {
	switch {
	case method == model.PaymentMethodCash:
		return PaymentFields{
			DepositAmount: utils.Ptr("0"),
		}
	case method == model.PaymentMethodVNPay && vnpayOption == model.VNPayOptionTotal:
		return PaymentFields{
			TotalServicePrice: utils.Ptr(servicePrice),
			IsServicePaid:     true,
			PaymentType:       model.PaymentTypeFull,
		}
	default:
		return PaymentFields{
			DepositAmount: utils.Ptr(strconv.Itoa(model.FixedDepositAmount)),
			IsDepositPaid: true,
			PaymentType:   model.PaymentTypeDeposit,
		}
	}
}

// Apply gắn các trường thanh toán vào payload đặt lịch
func (f PaymentFields) Apply(input *model.CreateAppointmentInput) {
	input.DepositAmount = f.DepositAmount
	input.IsDepositPaid = f.IsDepositPaid
	input.TotalServicePrice = f.TotalServicePrice
	input.IsServicePaid = f.IsServicePaid
}
