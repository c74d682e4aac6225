package handler

import (
	"petwell_client/api"
	"petwell_client/helper"
	"petwell_client/utils"

	"github.com/gofiber/fiber/v2"
)

// Các danh mục phục vụ form đặt lịch: đọc thẳng từ server, không cache
// (màn danh sách nhẹ, dữ liệu ít đổi trong một phiên)

func GetClinics(c *fiber.Ctx) error {
	list, err := api.PetWell.FetchClinics(c.Context(), helper.BearerToken(c))
	if err != nil {
		return upstreamError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, list)
}

func GetNearbyClinics(c *fiber.Ctx) error {
	lat := c.Locals("lat").(float64)
	lng := c.Locals("lng").(float64)

	list, err := api.PetWell.FetchNearbyClinics(c.Context(), helper.BearerToken(c), lat, lng)
	if err != nil {
		return upstreamError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, list)
}

func GetServices(c *fiber.Ctx) error {
	list, err := api.PetWell.FetchServices(c.Context(), helper.BearerToken(c), c.Query("clinicId"))
	if err != nil {
		return upstreamError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, list)
}

func GetPets(c *fiber.Ctx) error {
	list, err := api.PetWell.FetchPets(c.Context(), helper.BearerToken(c))
	if err != nil {
		return upstreamError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, list)
}
