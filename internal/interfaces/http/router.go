package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Verduleria-api/internal/application/accounts"
	"github.com/jhoicas/Verduleria-api/internal/application/catalog"
	"github.com/jhoicas/Verduleria-api/internal/application/inventory"
	"github.com/jhoicas/Verduleria-api/internal/application/reports"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Accounts  *accounts.UseCase
	Inventory *inventory.UseCase
	Reports   *reports.UseCase
	Catalog   *catalog.UseCase
	JWTSecret string
	// AdminRoles roles que pueden eliminar facturas. Vacío: cualquier usuario autenticado.
	AdminRoles []string
	// SwaggerFile ruta del swagger.json; si no existe no se monta /docs.
	SwaggerFile string
	AppName     string
	Log         *logger.Logger
}

// NewApp crea la app Fiber con el manejador de errores y el logger de peticiones.
func NewApp(deps RouterDeps, cfg fiber.Config) *fiber.App {
	cfg.ErrorHandler = ErrorHandler(deps.Log)
	if cfg.AppName == "" {
		cfg.AppName = deps.AppName
	}
	app := fiber.New(cfg)
	app.Use(RequestLogger(deps.Log))
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			// Swagger UI: http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Verdulería API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	invoiceHandler := NewInvoiceHandler(deps.Accounts, deps.Log)
	invoices := api.Group("/invoices")
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	if len(deps.AdminRoles) > 0 {
		invoices.Delete("/:id", RequireRole(deps.AdminRoles...), invoiceHandler.Delete)
	} else {
		invoices.Delete("/:id", invoiceHandler.Delete)
	}
	invoices.Get("/:id/verify", invoiceHandler.Verify)

	payments := api.Group("/payments")
	payments.Get("/", invoiceHandler.ListPayments)
	payments.Post("/", invoiceHandler.ApplyPayment)

	// /purchases antes de /:id
	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Log)
	inv := api.Group("/inventory")
	inv.Get("/purchases", inventoryHandler.Purchases)
	inv.Post("/purchases", inventoryHandler.Purchase)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Post("/:id/withdrawals", inventoryHandler.Withdraw)
	inv.Get("/:id/movements", inventoryHandler.Movements)
	inv.Post("/:id/reconcile", inventoryHandler.Reconcile)

	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Log)
	api.Get("/products/active", catalogHandler.ActiveProducts)
	api.Get("/counterparties", catalogHandler.Counterparties)

	reportHandler := NewReportHandler(deps.Reports, deps.Log)
	rep := api.Group("/reports")
	rep.Get("/balances", reportHandler.Balances)
	rep.Get("/inventory", reportHandler.Inventory)
}
