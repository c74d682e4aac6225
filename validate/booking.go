package validate

import (
	"petwell_client/model"

	"github.com/gofiber/fiber/v2"
)

func BookingDetails() fiber.Handler {
	return body[model.BookingDetailsInput]("bookingDetails")
}

func BookingConfirm() fiber.Handler {
	return body[model.BookingConfirmInput]("bookingConfirm")
}

func CancelAppointment() fiber.Handler {
	return body[model.CancelAppointmentInput]("cancelInput")
}
