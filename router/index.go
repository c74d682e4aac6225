package router

import (
	"petwell_client/handler"
	"petwell_client/middleware"
	"petwell_client/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	appointment := v1.Group("/appointments", logger.New())
	appointment.Get("/", middleware.Protected(), handler.GetAppointments)
	appointment.Patch("/:appointmentId/cancel", middleware.Protected(), validate.GetById("appointmentId"), validate.CancelAppointment(), handler.CancelAppointment)
	appointment.Get("/:appointmentId/qr", middleware.Protected(), validate.GetById("appointmentId"), handler.GetAppointmentQR)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.Protected(), handler.StartBooking)
	booking.Post("/:wizardId/details", middleware.Protected(), validate.BookingDetails(), handler.BookingDetails)
	booking.Post("/:wizardId/confirm", middleware.Protected(), validate.BookingConfirm(), handler.BookingConfirm)
	booking.Post("/:wizardId/back", middleware.Protected(), handler.BookingBack)
	booking.Delete("/:wizardId", middleware.Protected(), handler.BookingCancel)

	post := v1.Group("/posts", logger.New())
	post.Get("/", middleware.Protected(), handler.GetPosts)
	post.Post("/", middleware.Protected(), handler.CreatePost)
	post.Post("/:postId/react", middleware.Protected(), validate.GetById("postId"), validate.React(), handler.ReactPost)

	post.Get("/:postId/comments", middleware.Protected(), handler.GetComments)
	post.Post("/:postId/comments", middleware.Protected(), validate.AddComment(), handler.AddComment)
	post.Post("/:postId/comments/:commentId/react", middleware.Protected(), validate.React(), handler.ReactComment)
	post.Put("/:postId/comments/:commentId", middleware.Protected(), validate.UpdateComment(), handler.UpdateComment)
	post.Delete("/:postId/comments/:commentId", middleware.Protected(), handler.DeleteComment)

	clinic := v1.Group("/clinics", logger.New())
	clinic.Get("/", middleware.Protected(), handler.GetClinics)
	clinic.Get("/nearby", middleware.Protected(), validate.LatLng(), handler.GetNearbyClinics)

	v1.Get("/services", middleware.Protected(), handler.GetServices)
	v1.Get("/pets", middleware.Protected(), handler.GetPets)

	// cổng thanh toán quay về đây sau chuyển hướng, không bắt buộc token
	payment := v1.Group("/payment", logger.New())
	payment.Get("/return", middleware.OptionalJWT(), handler.PaymentReturn)
}
