package api

import (
	"context"

	"petwell_client/model"
)

func (c *Client) FetchAppointments(ctx context.Context, token string) ([]model.Appointment, error) {
	var list []model.Appointment
	err := c.do(ctx, MethodOf("appointments"), PathOf("appointments"), token, nil, nil, &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateAppointment(ctx context.Context, token string, input model.CreateAppointmentInput) (model.Appointment, error) {
	var appt model.Appointment
	err := c.do(ctx, MethodOf("createAppointment"), PathOf("createAppointment"), token, nil, input, &appt)
	return appt, err
}

func (c *Client) CancelAppointment(ctx context.Context, token, id, reason string) error {
	body := model.CancelAppointmentInput{Reason: reason}
	return c.do(ctx, MethodOf("cancelAppointment"), PathOf("cancelAppointment", id), token, nil, body, nil)
}

type availabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// CheckTimeAvailability hỏi server khung giờ còn trống không.
// Chỉ coi là qua khi server trả tín hiệu thành công tường minh.
func (c *Client) CheckTimeAvailability(ctx context.Context, token, instant, clinicID string) error {
	body := model.AvailabilityInput{AppointmentDate: instant, ClinicID: clinicID}

	var out availabilityResponse
	if err := c.do(ctx, MethodOf("checkAvailability"), PathOf("checkAvailability"), token, nil, body, &out); err != nil {
		return err
	}
	if !out.Available {
		msg := out.Message
		if msg == "" {
			msg = "Khung giờ này đã kín lịch, vui lòng chọn giờ khác"
		}
		return &Error{StatusCode: 409, Message: msg}
	}
	return nil
}
