package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/MH-Sifat/Machine-House-Server/controllers/payments"
	"github.com/MH-Sifat/Machine-House-Server/middlewares"
)

func PaymentRoute(app *fiber.App, pc *controllers.PaymentController, auth *middlewares.Auth) {
	app.Post("/create-payment-intent", auth.RequireAuth, pc.CreatePaymentIntent)
	app.Post("/payments", auth.RequireAuth, pc.ConfirmPayment)
}
