package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Maestros-api/internal/application/auth"
	"github.com/jhoicas/Maestros-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RoleUC     *usecase.RoleUseCase
	SupplierUC *usecase.SupplierUseCase
	UnitUC     *usecase.UnitUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Cada ruta de maestros exige el Bearer Token
// más el permiso puntual de la operación (<Entidad>-View/Create/Edit/Delete).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Roles (protegido)
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/all", RequirePermission("Role-View"), roleHandler.All)
	roles.Get("/permissions", RequirePermission("Role-View"), roleHandler.Permissions)
	roles.Get("/", RequirePermission("Role-View"), roleHandler.List)
	roles.Post("/", RequirePermission("Role-Create"), roleHandler.Create)
	roles.Get("/:id", RequirePermission("Role-View"), roleHandler.GetByID)
	roles.Put("/:id", RequirePermission("Role-Edit"), roleHandler.Update)
	roles.Delete("/:id", RequirePermission("Role-Delete"), roleHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/all", RequirePermission("Supplier-View"), supplierHandler.All)
	suppliers.Get("/export/pdf", RequirePermission("Supplier-View"), supplierHandler.ExportPDF)
	suppliers.Get("/", RequirePermission("Supplier-View"), supplierHandler.List)
	suppliers.Post("/", RequirePermission("Supplier-Create"), supplierHandler.Create)
	suppliers.Get("/:id", RequirePermission("Supplier-View"), supplierHandler.GetByID)
	suppliers.Put("/:id", RequirePermission("Supplier-Edit"), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission("Supplier-Delete"), supplierHandler.Delete)

	// Units (protegido)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Get("/all", RequirePermission("Unit-View"), unitHandler.All)
	units.Get("/", RequirePermission("Unit-View"), unitHandler.List)
	units.Post("/", RequirePermission("Unit-Create"), unitHandler.Create)
	units.Get("/:id", RequirePermission("Unit-View"), unitHandler.GetByID)
	units.Put("/:id", RequirePermission("Unit-Edit"), unitHandler.Update)
	units.Delete("/:id", RequirePermission("Unit-Delete"), unitHandler.Delete)
}
