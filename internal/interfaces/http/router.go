package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/comercio-pro/internal/application/auth"
	"github.com/tu-usuario/comercio-pro/internal/application/provisioning"
	"github.com/tu-usuario/comercio-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProvisionUC *provisioning.UseCase
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *usecase.OrderUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/token", authHandler.Token)
	authGroup.Post("/token/refresh", authHandler.Refresh)

	// Registro de cuentas (público)
	accountHandler := NewAccountHandler(deps.ProvisionUC, deps.UserUC)
	api.Post("/accounts", accountHandler.Provision)

	// Rutas protegidas (requieren Bearer Token de acceso)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuentas (protegido; listado y baja solo admin)
	protected.Get("/accounts/me", accountHandler.Me)
	protected.Get("/accounts", RequireAdmin(), accountHandler.List)
	protected.Delete("/accounts/:id", RequireAdmin(), accountHandler.Deactivate)

	// Products (protegido; escrituras solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireAdmin(), productHandler.Create)
	products.Put("/:id", RequireAdmin(), productHandler.Update)
	products.Delete("/:id", RequireAdmin(), productHandler.Deactivate)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt.pdf", orderHandler.Receipt)
}
