package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MH-Sifat/Machine-House-Server/configs"
	bookingcontrollers "github.com/MH-Sifat/Machine-House-Server/controllers/bookings"
	paymentcontrollers "github.com/MH-Sifat/Machine-House-Server/controllers/payments"
	productcontrollers "github.com/MH-Sifat/Machine-House-Server/controllers/products"
	usercontrollers "github.com/MH-Sifat/Machine-House-Server/controllers/users"
	"github.com/MH-Sifat/Machine-House-Server/gateway"
	"github.com/MH-Sifat/Machine-House-Server/middlewares"
	"github.com/MH-Sifat/Machine-House-Server/responses"
	"github.com/MH-Sifat/Machine-House-Server/routes"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

func main() {
	configs.Load()

	client, err := configs.ConnectDB(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()
	log.Println("Connected to MongoDB")

	db := store.NewMongoStore(client)
	stripeGateway := gateway.NewStripeGateway(configs.EnvStripeSecretKey())
	auth := middlewares.NewAuth(configs.EnvJWTSecret(), db)

	app := fiber.New(fiber.Config{
		AppName: "Machine House Server",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(responses.ApiResponse{
				Status:  code,
				Message: msg,
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello Machine House!")
	})

	routes.ProductsRoute(app, productcontrollers.NewProductController(db), auth)
	routes.UserRoute(app, usercontrollers.NewUserController(db, configs.EnvJWTSecret()), auth)
	routes.BookingRoute(app, bookingcontrollers.NewBookingController(db), auth)
	routes.PaymentRoute(app, paymentcontrollers.NewPaymentController(db, stripeGateway), auth)

	log.Printf("Machine House server running on port %s", configs.EnvPort())
	if err := app.Listen(":" + configs.EnvPort()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
