package handler

import (
	"petwell_client/api"
	"petwell_client/booking"
	"petwell_client/helper"
	"petwell_client/model"
	"petwell_client/store"
	"petwell_client/utils"

	"github.com/gofiber/fiber/v2"
)

// StartBooking mở một phiên wizard mới ở bước chọn thông tin
func StartBooking(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)

	w := booking.New(claim.UserId)
	booking.Sessions.Put(w)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"wizardId": w.ID,
		"step":     w.Step.String(),
	})
}

// BookingDetails nộp bước 1: đủ trường + server xác nhận giờ trống thì
// mới sang bước thanh toán, sai ở đâu đứng yên ở đó
func BookingDetails(c *fiber.Ctx) error {
	w := currentWizard(c)
	if w == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phiên đặt lịch không tồn tại", nil)
	}

	token := helper.BearerToken(c)
	ctx := c.Context()
	input := c.Locals("bookingDetails").(model.BookingDetailsInput)

	// chốt giá dịch vụ ngay tại bước này để bước 2 tính tiền
	svc, err := api.PetWell.FetchServiceByID(ctx, token, input.ServiceID)
	if err != nil {
		return upstreamError(c, err)
	}

	if err := w.SubmitDetails(ctx, token, input, svc.Price, api.PetWell); err != nil {
		return stepError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"wizardId":     w.ID,
		"step":         w.Step.String(),
		"servicePrice": w.ServicePrice,
	})
}

// BookingConfirm chốt bước 2. Qua cổng VNPay thì trả URL chuyển hướng và
// không đụng cache; còn lại fetch lại danh sách lịch hẹn rồi đóng wizard.
func BookingConfirm(c *fiber.Ctx) error {
	w := currentWizard(c)
	if w == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phiên đặt lịch không tồn tại", nil)
	}

	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()
	input := c.Locals("bookingConfirm").(model.BookingConfirmInput)

	outcome, err := w.Confirm(ctx, token, input, api.PetWell)
	if err != nil {
		return stepError(c, err)
	}

	if outcome.Initiation.Redirect {
		// hard exit sang cổng: trình duyệt rời app, cache để nguyên
		booking.Sessions.Remove(w.ID)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"redirect":      true,
			"paymentUrl":    outcome.Initiation.URL,
			"appointmentId": outcome.Appointment.ID,
		})
	}

	// đường chính là re-fetch đầy đủ; fetch hỏng thì nối lạc quan bằng
	// AddAppointment để danh sách không thiếu lịch vừa tạo
	if list, ferr := api.PetWell.FetchAppointments(ctx, token); ferr == nil {
		store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
			s.Appointments.SetAppointments(list)
		})
	} else {
		store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
			s.Appointments.AddAppointment(outcome.Appointment)
		})
	}

	booking.Sessions.Remove(w.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"redirect":    false,
		"appointment": outcome.Appointment,
		"closeAfter":  2, // giây, UI chờ rồi tự đóng form
	})
}

// BookingBack quay từ bước thanh toán về bước chọn thông tin
func BookingBack(c *fiber.Ctx) error {
	w := currentWizard(c)
	if w == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phiên đặt lịch không tồn tại", nil)
	}

	if err := w.Back(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không quay lại được từ bước này", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"wizardId": w.ID,
		"step":     w.Step.String(),
	})
}

// BookingCancel đóng wizard từ nút đóng tổng: huỷ trọn bản nháp
func BookingCancel(c *fiber.Ctx) error {
	w := currentWizard(c)
	if w == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phiên đặt lịch không tồn tại", nil)
	}

	w.Close()
	booking.Sessions.Remove(w.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"step": booking.StepClosed.String(),
	})
}
