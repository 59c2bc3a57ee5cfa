package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crunchyspot/crunchyspot-api/internal/application/auth"
	"github.com/crunchyspot/crunchyspot-api/internal/application/payments"
	"github.com/crunchyspot/crunchyspot-api/internal/application/usecase"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	MenuUC    *usecase.MenuUseCase
	CartUC    *usecase.CartUseCase
	PaymentUC *payments.PaymentUseCase
	Users     repository.UserRepository // para RequireAdmin
	JWTSecret string
}

// Router registra las rutas de la API. Los guards van por ruta porque la
// sensibilidad varía dentro de un mismo recurso (ej. GET /menu es público,
// POST /menu es solo admin). Orden fijo: AuthMiddleware y después RequireAdmin.
func Router(app *fiber.App, deps RouterDeps) {
	authn := AuthMiddleware(deps.JWTSecret)
	admin := RequireAdmin(deps.Users)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/jwt", authHandler.IssueToken)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", authn, admin, userHandler.List)
	app.Post("/users", userHandler.Create)
	app.Get("/users/admin/:email", authn, authHandler.AdminStatus)
	app.Patch("/users/admin/:id", authn, admin, userHandler.PromoteToAdmin)
	app.Delete("/users/:id", authn, admin, userHandler.Delete)

	// Menu (lecturas públicas, escrituras solo admin)
	menuHandler := NewMenuHandler(deps.MenuUC)
	app.Get("/menu", menuHandler.List)
	app.Get("/menu/:id", menuHandler.Get)
	app.Post("/menu", authn, admin, menuHandler.Create)
	app.Patch("/menu/:id", authn, admin, menuHandler.Update)
	app.Delete("/menu/:id", authn, admin, menuHandler.Delete)

	// Carts (público: el alcance es por email del dueño)
	cartHandler := NewCartHandler(deps.CartUC)
	app.Get("/carts", cartHandler.List)
	app.Post("/carts", cartHandler.Add)
	app.Delete("/carts/:id", cartHandler.Remove)

	// Payments
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	app.Post("/create-payment-intent", paymentHandler.CreateIntent)
	app.Post("/payments", paymentHandler.Record)
	app.Get("/payments/:email", authn, paymentHandler.ListByEmail)

	// Reportes (solo admin)
	app.Get("/admin-stats", authn, admin, paymentHandler.AdminStats)
	app.Get("/order-stats", authn, admin, paymentHandler.OrderStats)
}
