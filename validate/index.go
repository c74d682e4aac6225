package validate

import (
	"errors"
	"fmt"
	"strconv"

	"petwell_client/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById bắt buộc path param không rỗng, lưu vào Locals
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Params(key)
		if value == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu tham số "+key, errors.New("params invalid"))
		}

		c.Locals("inputId", value)
		return c.Next()
	}
}

// body parse + validate một input struct rồi lưu vào Locals theo key
func body[T any](localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals(localKey, input)
		return c.Next()
	}
}

// LatLng đọc và kiểm tra query lat/lng cho tìm phòng khám gần đây
func LatLng() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Toạ độ lat/lng không hợp lệ", errors.New("invalid coordinates"))
		}

		c.Locals("lat", lat)
		c.Locals("lng", lng)
		return c.Next()
	}
}
