// Package http expõe os módulos do painel como uma API Fiber: login público,
// healthcheck e um grupo de rotas por módulo atrás do middleware de auth e da
// checagem de capacidade.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucashmelo/painel-gestao/internal/application/auth"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Sales         *report.SalesService
	Orders        *report.OrdersService
	OrderProducts *report.OrderProductsService
	Receivables   *report.ReceivablesService
	Boletos       *report.BoletosService
	Statements    *report.StatementsService
	ServiceOrders *report.ServiceOrdersService
	Customers     *report.CustomersService
	Products      *report.ProductsService
	Health        *HealthHandler
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health (público)
	api.Get("/health", deps.Health.Health)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Relatórios (protegidos por token + capacidade do módulo)
	reports := api.Group("/reports", AuthMiddleware(deps.JWTSecret))

	sales := reports.Group("/sales", RequirePermission(auth.ModuleSales))
	salesHandler := NewSalesHandler(deps.Sales)
	sales.Post("/refresh", salesHandler.Refresh)
	sales.Get("/grid", salesHandler.Grid)
	sales.Get("/metrics", salesHandler.Metrics)
	sales.Get("/by-person", salesHandler.ByPerson)
	sales.Get("/trend", salesHandler.Trend)
	sales.Get("/update-info", salesHandler.UpdateInfo)
	sales.Get("/update-info/history", salesHandler.UpdateHistory)
	sales.Get("/export/:format", salesHandler.Export)

	orders := reports.Group("/orders", RequirePermission(auth.ModuleOrders))
	ordersHandler := NewOrdersHandler(deps.Orders, deps.OrderProducts)
	orders.Post("/refresh", ordersHandler.Refresh)
	orders.Get("/grid", ordersHandler.Grid)
	orders.Get("/totals", ordersHandler.Totals)
	orders.Get("/update-info", ordersHandler.UpdateInfo)
	orders.Get("/export/:format", ordersHandler.Export)

	// Consolidação de produtos em pedidos (capacidade própria)
	orderProducts := reports.Group("/orders/products", RequirePermission(auth.ModuleOrderProducts))
	orderProducts.Get("/grid", ordersHandler.ProductsGrid)
	orderProducts.Get("/export/:format", ordersHandler.ProductsExport)

	receivables := reports.Group("/receivables", RequirePermission(auth.ModuleReceivables))
	receivablesHandler := NewReceivablesHandler(deps.Receivables)
	receivables.Post("/refresh", receivablesHandler.Refresh)
	receivables.Get("/grid", receivablesHandler.Grid)
	receivables.Get("/totals", receivablesHandler.Totals)
	receivables.Get("/update-info", receivablesHandler.UpdateInfo)
	receivables.Get("/export/:format", receivablesHandler.Export)

	boletos := reports.Group("/boletos", RequirePermission(auth.ModuleBoletos))
	boletosHandler := NewBoletosHandler(deps.Boletos)
	boletos.Post("/refresh", boletosHandler.Refresh)
	boletos.Get("/grid", boletosHandler.Grid)
	boletos.Get("/totals", boletosHandler.Totals)
	boletos.Get("/update-info", boletosHandler.UpdateInfo)
	boletos.Get("/export/:format", boletosHandler.Export)

	statements := reports.Group("/statements", RequirePermission(auth.ModuleStatements))
	statementsHandler := NewStatementsHandler(deps.Statements)
	statements.Post("/refresh", statementsHandler.Refresh)
	statements.Get("/grid", statementsHandler.Grid)
	statements.Get("/totals", statementsHandler.Totals)
	statements.Get("/update-info", statementsHandler.UpdateInfo)
	statements.Get("/export/:format", statementsHandler.Export)

	serviceOrders := reports.Group("/service-orders", RequirePermission(auth.ModuleServiceOrders))
	serviceOrdersHandler := NewServiceOrdersHandler(deps.ServiceOrders)
	serviceOrders.Post("/refresh", serviceOrdersHandler.Refresh)
	serviceOrders.Get("/grid", serviceOrdersHandler.Grid)
	serviceOrders.Post("/selection", serviceOrdersHandler.Selection)
	serviceOrders.Get("/products/grid", serviceOrdersHandler.ProductsGrid)
	serviceOrders.Get("/products/export/:format", serviceOrdersHandler.ProductsExport)
	serviceOrders.Get("/totals", serviceOrdersHandler.Totals)
	serviceOrders.Get("/update-info", serviceOrdersHandler.UpdateInfo)
	serviceOrders.Get("/export/:format", serviceOrdersHandler.Export)

	customers := reports.Group("/customers", RequirePermission(auth.ModuleCustomers))
	customersHandler := NewCustomersHandler(deps.Customers)
	customers.Get("/grid", customersHandler.Grid)
	customers.Get("/totals", customersHandler.Totals)
	customers.Get("/update-info", customersHandler.UpdateInfo)
	customers.Get("/export/:format", customersHandler.Export)
	customers.Get("/:id", customersHandler.ByID)

	products := reports.Group("/products", RequirePermission(auth.ModuleProducts))
	productsHandler := NewProductsHandler(deps.Products)
	products.Get("/grid", productsHandler.Grid)
	products.Get("/totals", productsHandler.Totals)
	products.Get("/update-info", productsHandler.UpdateInfo)
	products.Get("/export/:format", productsHandler.Export)
}
