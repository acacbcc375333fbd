package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/MH-Sifat/Machine-House-Server/controllers/users"
	"github.com/MH-Sifat/Machine-House-Server/middlewares"
)

func UserRoute(app *fiber.App, uc *controllers.UserController, auth *middlewares.Auth) {
	app.Post("/users", uc.CreateUser)
	app.Post("/signin", uc.SignIn)

	app.Get("/users", auth.RequireAuth, auth.RequireAdmin, uc.GetAllUsers)

	// Role checks for the signed-in client.
	app.Get("/users/admin/:email", auth.RequireAuth, uc.CheckAdmin)
	app.Get("/users/seller/:email", auth.RequireAuth, uc.CheckSeller)

	// Elevation and demotion are admin-only capabilities.
	app.Put("/users/admin/:id", auth.RequireAuth, auth.RequireAdmin, uc.MakeAdmin)
	app.Delete("/users/admin/:id", auth.RequireAuth, auth.RequireAdmin, uc.RevokeAdmin)
	app.Put("/users/seller/:id", auth.RequireAuth, auth.RequireAdmin, uc.MakeSeller)
	app.Delete("/users/seller/:id", auth.RequireAuth, auth.RequireAdmin, uc.RevokeSeller)

	// Account removal, registered after the admin/seller paths so the
	// static segments win over :id.
	app.Delete("/users/:id", auth.RequireAuth, auth.RequireAdmin, uc.DeleteUser)
}
