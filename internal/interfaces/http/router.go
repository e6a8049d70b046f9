package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/auth"
	appslip "github.com/tu-usuario/activos-pro/internal/application/slip"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CreateSlip   *appslip.CreateSlipUseCase
	SlipQueries  *appslip.QueryUseCase
	SlipPDF      *appslip.PDFUseCase
	AssetUC      *usecase.AssetUseCase
	ItemUC       *usecase.ItemUseCase
	PropertyUC   *usecase.PropertyUseCase
	LocationUC   *usecase.LocationUseCase
	DepartmentUC *usecase.DepartmentUseCase
	AuditUC      *usecase.AuditQueryUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Vales de movimiento: crear restringido a admin y bodeguero
	slips := protected.Group("/slips")
	slipHandler := NewSlipHandler(deps.CreateSlip, deps.SlipQueries, deps.SlipPDF)
	slips.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), slipHandler.Create)
	slips.Get("/", slipHandler.List)
	slips.Get("/:id", slipHandler.GetByID)
	slips.Get("/:id/pdf", slipHandler.PDF)

	// Histórico de movimientos
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.SlipQueries)
	movements.Get("/", movementHandler.List)

	// Activos
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), assetHandler.Create)
	assets.Get("/search", assetHandler.Search)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), assetHandler.Update)

	// Items fungibles
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), itemHandler.Update)

	// Propiedades y ubicaciones (datos maestros: solo admin muta)
	properties := protected.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC, deps.LocationUC)
	properties.Post("/", RequireRole(entity.RoleAdmin), propertyHandler.Create)
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.GetByID)
	properties.Delete("/:id", RequireRole(entity.RoleAdmin), propertyHandler.Delete)
	properties.Get("/:id/locations", propertyHandler.ListLocations)

	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", RequireRole(entity.RoleAdmin), locationHandler.Create)
	locations.Get("/:id", locationHandler.GetByID)

	// Departamentos
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Post("/", RequireRole(entity.RoleAdmin), departmentHandler.Create)
	departments.Get("/", departmentHandler.List)

	// Bitácora de auditoría (solo admin)
	auditGroup := protected.Group("/audit-events", RequireRole(entity.RoleAdmin))
	auditHandler := NewAuditHandler(deps.AuditUC)
	auditGroup.Get("/", auditHandler.List)
}
