package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/MH-Sifat/Machine-House-Server/controllers/bookings"
	"github.com/MH-Sifat/Machine-House-Server/middlewares"
)

func BookingRoute(app *fiber.App, bc *controllers.BookingController, auth *middlewares.Auth) {
	app.Post("/booked", auth.RequireAuth, bc.CreateBooking)
	app.Get("/booked", auth.RequireAuth, bc.GetBookingsByEmail)
	app.Get("/booked/:id", auth.RequireAuth, bc.GetBookingByID)

	app.Get("/orders", auth.RequireAuth, auth.RequireAdmin, bc.GetAllOrders)
}
