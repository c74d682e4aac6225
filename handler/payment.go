package handler

import (
	"net/url"

	"petwell_client/api"
	"petwell_client/helper"

	"github.com/gofiber/fiber/v2"
)

// Trang kết quả đếm ngược chừng này giây rồi tự quay về trang chủ,
// thành công hay thất bại đều vậy
const resultRedirectCountdown = 5

// PaymentReturn là điểm cổng thanh toán quay về sau chuyển hướng:
// đọc query cổng trả, đưa nguyên cho server xác minh rồi mới báo kết quả.
// Không tin bất kỳ tham số nào khi chưa xác minh.
func PaymentReturn(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"isSuccess":     false,
			"message":       "Tham số cổng thanh toán không hợp lệ",
			"redirectAfter": resultRedirectCountdown,
		})
	}

	result, verr := api.PetWell.VerifyPaymentReturn(c.Context(), helper.BearerToken(c), query)
	if verr != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"isSuccess":     false,
			"message":       api.UserMessage(verr),
			"redirectAfter": resultRedirectCountdown,
		})
	}

	return c.JSON(fiber.Map{
		"isSuccess":     result.IsSuccess,
		"appointmentId": result.AppointmentID,
		"amount":        result.Amount,
		"message":       result.Message,
		"redirectAfter": resultRedirectCountdown,
	})
}
