package handler

import (
	"petwell_client/api"
	"petwell_client/helper"
	"petwell_client/model"
	"petwell_client/store"
	"petwell_client/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAppointments fetch lại toàn bộ danh sách từ server và thay cache.
// Cờ loading bật trước khi gọi và luôn hạ ở cả hai nhánh.
func GetAppointments(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Appointments.SetLoading(true)
	})
	defer store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Appointments.SetLoading(false)
	})

	list, err := api.PetWell.FetchAppointments(ctx, token)
	if err != nil {
		// fetch hỏng thì không giữ dữ liệu cũ
		store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
			s.Appointments.Reset()
		})
		return upstreamError(c, err)
	}

	var out []model.Appointment
	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Appointments.SetAppointments(list)
		out = s.Appointments.Appointments
	})

	return utils.SuccessResponse(c, fiber.StatusOK, out)
}

// CancelAppointment đổi trạng thái lạc quan tại chỗ rồi báo server.
// Server từ chối thì fetch lại để cache không giữ trạng thái sai.
func CancelAppointment(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()

	id := c.Locals("inputId").(string)
	input := c.Locals("cancelInput").(model.CancelAppointmentInput)

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Appointments.UpdateAppointmentStatus(id, model.StatusCancelled)
	})

	if err := api.PetWell.CancelAppointment(ctx, token, id, input.Reason); err != nil {
		if list, ferr := api.PetWell.FetchAppointments(ctx, token); ferr == nil {
			store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
				s.Appointments.SetAppointments(list)
			})
		}
		return upstreamError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     id,
		"status": model.StatusCancelled,
	})
}

// GetAppointmentQR trả về PNG mã QR check-in cho một lịch hẹn chưa huỷ
func GetAppointmentQR(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	ctx := c.Context()

	id := c.Locals("inputId").(string)

	found := false
	store.Mgr.View(ctx, claim.UserId, func(s *store.Store) {
		for _, a := range s.Appointments.Appointments {
			if a.ID == id && a.Status != model.StatusCancelled {
				found = true
			}
		}
	})
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy lịch hẹn", nil)
	}

	png, err := utils.GenerateQRCode("petwell:checkin:"+id, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không tạo được mã QR", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
