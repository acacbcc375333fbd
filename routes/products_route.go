package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/MH-Sifat/Machine-House-Server/controllers/products"
	"github.com/MH-Sifat/Machine-House-Server/middlewares"
)

func ProductsRoute(app *fiber.App, pc *controllers.ProductController, auth *middlewares.Auth) {
	app.Get("/products", pc.GetAllProducts)
	app.Get("/products/:category", pc.GetProductsByCategory)

	app.Post("/products", auth.RequireAuth, pc.AddProduct)

	app.Delete("/products/:id", auth.RequireAuth, auth.RequireAdmin, pc.DeleteProduct)
}
