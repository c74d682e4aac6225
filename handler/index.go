package handler

import (
	"errors"

	"petwell_client/api"
	"petwell_client/booking"
	"petwell_client/helper"
	"petwell_client/utils"

	"github.com/gofiber/fiber/v2"
)

// upstreamError đổ lỗi API PetWell ra response: message nghiệp vụ của
// server giữ nguyên văn, lỗi mạng chỉ có câu fallback
func upstreamError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	var apiErr *api.Error
	if errors.As(err, &apiErr) && !apiErr.Transport && apiErr.StatusCode != 0 {
		status = apiErr.StatusCode
	}
	return utils.ErrorResponse(c, status, api.UserMessage(err), err)
}

// stepError phân loại lỗi một bước wizard: lỗi API giữ status server,
// còn lại là lỗi kiểm tra đầu vào phía client
func stepError(c *fiber.Ctx, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return upstreamError(c, err)
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
}

// currentWizard tra phiên wizard theo path param, buộc đúng chủ phiên
func currentWizard(c *fiber.Ctx) *booking.Wizard {
	claim := helper.GetUserFromToken(c)
	return booking.Sessions.Get(c.Params("wizardId"), claim.UserId)
}
