package booking

import (
	"context"
	"errors"
	"time"

	"petwell_client/model"
	"petwell_client/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Step là trạng thái tường minh của wizard đặt lịch
type Step int

const (
	StepDetails Step = iota // bước 1: chọn thú cưng / phòng khám / dịch vụ / giờ
	StepConfirmPayment      // bước 2: chọn phương thức thanh toán và chốt
	StepClosed              // đã đóng (đặt xong hoặc huỷ)
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepConfirmPayment:
		return "confirm_payment"
	default:
		return "closed"
	}
}

var (
	ErrWrongStep = errors.New("wizard đang không ở bước này")
	ErrClosed    = errors.New("phiên đặt lịch đã đóng")
)

var validate = validator.New()

// AvailabilityChecker là vòng gọi server kiểm tra khung giờ còn trống
type AvailabilityChecker interface {
	CheckTimeAvailability(ctx context.Context, token, instant, clinicID string) error
}

// Submitter là các vòng gọi server cần cho bước chốt đặt lịch
type Submitter interface {
	CreateAppointment(ctx context.Context, token string, input model.CreateAppointmentInput) (model.Appointment, error)
	CreatePaymentURL(ctx context.Context, token, appointmentID, paymentType string) (string, error)
}

// Wizard giữ bản nháp đặt lịch của một phiên. Step chỉ tiến khi qua được
// guard; mọi lỗi server giữ nguyên bước hiện tại, không tự retry.
type Wizard struct {
	ID           string
	UserID       uint
	Step         Step
	Draft        model.BookingDraft
	Instant      string  // ISO +07:00, chốt khi qua bước 1
	ServicePrice float64 // giá dịch vụ đã chọn, chốt ở bước 1
	UpdatedAt    time.Time
}

func New(userID uint) *Wizard {
	return &Wizard{
		ID:        uuid.NewString(),
		UserID:    userID,
		Step:      StepDetails,
		UpdatedAt: time.Now(),
	}
}

// SubmitDetails là chuyển tiếp bước 1 → bước 2. Guard: đủ trường bắt buộc
// (fail thì KHÔNG gọi mạng) VÀ server xác nhận khung giờ còn trống.
// Ngày + giờ được ghép thành instant ISO +07:00 trước khi gửi đi.
func (w *Wizard) SubmitDetails(ctx context.Context, token string, input model.BookingDetailsInput, servicePrice float64, checker AvailabilityChecker) error {
	if w.Step == StepClosed {
		return ErrClosed
	}
	if w.Step != StepDetails {
		return ErrWrongStep
	}

	if err := validate.Struct(&input); err != nil {
		return err
	}

	instant, err := utils.CombineDateTime(input.Date, input.Time)
	if err != nil {
		return err
	}

	if err := checker.CheckTimeAvailability(ctx, token, instant, input.ClinicID); err != nil {
		return err // ở lại bước 1, lỗi hiện cho người dùng
	}

	copier.Copy(&w.Draft, &input)
	w.Instant = instant
	w.ServicePrice = servicePrice
	w.Step = StepConfirmPayment
	w.UpdatedAt = time.Now()
	return nil
}

// Back quay về bước 1 từ bước 2; bản nháp giữ nguyên
func (w *Wizard) Back() error {
	if w.Step != StepConfirmPayment {
		return ErrWrongStep
	}
	w.Step = StepDetails
	w.UpdatedAt = time.Now()
	return nil
}

// Close đóng wizard và huỷ trọn bản nháp (không bao giờ lưu dở dang)
func (w *Wizard) Close() {
	w.Draft = model.BookingDraft{}
	w.Instant = ""
	w.ServicePrice = 0
	w.Step = StepClosed
	w.UpdatedAt = time.Now()
}

// Outcome là kết quả chốt đặt lịch
type Outcome struct {
	Appointment model.Appointment
	Initiation  model.PaymentInitiation
	NeedRefetch bool // true khi không qua cổng → caller fetch lại cache lịch hẹn
}

// Confirm chốt bước 2. Thứ tự: (1) tạo lịch hẹn trên server;
// (2) nếu qua cổng VNPay, xin URL thanh toán theo id lịch hẹn và
// paymentType full|deposit rồi trả về Redirect — lỗi ở bước này giữ
// nguyên bước 2 và KHÔNG đụng cache; (3) không qua cổng thì báo caller
// fetch lại danh sách và đóng wizard.
func (w *Wizard) Confirm(ctx context.Context, token string, input model.BookingConfirmInput, api Submitter) (Outcome, error) {
	if w.Step == StepClosed {
		return Outcome{}, ErrClosed
	}
	if w.Step != StepConfirmPayment {
		return Outcome{}, ErrWrongStep
	}

	if err := validate.Struct(&input); err != nil {
		return Outcome{}, err
	}

	w.Draft.PaymentMethod = input.PaymentMethod
	w.Draft.VNPayOption = input.VNPayOption
	w.UpdatedAt = time.Now()

	var payload model.CreateAppointmentInput
	copier.Copy(&payload, &w.Draft)
	payload.AppointmentDate = w.Instant

	fields := ComputePayment(input.PaymentMethod, input.VNPayOption, w.ServicePrice)
	fields.Apply(&payload)

	appt, err := api.CreateAppointment(ctx, token, payload)
	if err != nil {
		return Outcome{}, err // ở lại bước 2
	}

	if input.PaymentMethod == model.PaymentMethodVNPay {
		url, err := api.CreatePaymentURL(ctx, token, appt.ID, fields.PaymentType)
		if err != nil {
			// lịch đã tạo nhưng chưa có URL: giữ bước 2, không đụng cache
			return Outcome{}, err
		}
		w.Close()
		return Outcome{
			Appointment: appt,
			Initiation:  model.PaymentInitiation{Redirect: true, URL: url},
		}, nil
	}

	w.Close()
	return Outcome{Appointment: appt, NeedRefetch: true}, nil
}
