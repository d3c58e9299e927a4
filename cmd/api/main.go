package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-api/internal/handler"
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/database"
	applogger "go-inventory-api/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zlog := applogger.Must(applogger.New())
	defer zlog.Sync()

	// 2. Setup database
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Purchase{},
		&model.Sale{},
		&model.User{},
	); err != nil {
		zlog.Fatal("auto migrate failed", zap.Error(err))
	}

	// 3. Seed default admin user
	seedAdminUser(db, zlog)

	// 4. Setup WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	dashRepo := repository.NewDashboardRepo(db)

	invService := service.NewInventoryService(productRepo, wsHub)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	ledgerService := service.NewLedgerService(productRepo, purchaseRepo, saleRepo, db, wsHub, zlog)
	dashService := service.NewDashboardService(dashRepo)

	invHandler := handler.NewInventoryHandler(invService)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory System API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Inventory System API is running!")
	})

	api := app.Group("/api")

	// Auth placeholder, no authentication implemented
	api.Get("/auth", func(c *fiber.Ctx) error {
		return c.SendString("Auth routes are working.")
	})

	// Product routes
	api.Get("/products", invHandler.GetProducts)
	api.Post("/products", invHandler.CreateProduct)
	api.Put("/products/:id", invHandler.UpdateProduct)
	api.Delete("/products/:id", invHandler.DeleteProduct)

	// Customer routes
	api.Get("/customers", customerHandler.GetCustomers)
	api.Post("/customers", customerHandler.CreateCustomer)

	// Supplier routes
	api.Get("/suppliers", supplierHandler.GetSuppliers)
	api.Post("/suppliers", supplierHandler.CreateSupplier)

	// Ledger routes (stock transaction workflow)
	api.Get("/purchases", ledgerHandler.GetPurchases)
	api.Post("/purchases", ledgerHandler.CreatePurchase)
	api.Get("/sales", ledgerHandler.GetSales)
	api.Post("/sales", ledgerHandler.CreateSale)

	// Dashboard routes
	api.Get("/dashboard/summary", dashHandler.GetSummary)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		zlog.Info("server listening", zap.String("port", port))
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}

// seedAdminUser creates the default admin account if it does not exist yet.
func seedAdminUser(db *gorm.DB, zlog *zap.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		zlog.Warn("failed to hash admin password", zap.Error(err))
		return
	}

	if err := userRepo.Create(admin); err != nil {
		zlog.Warn("failed to create admin user", zap.Error(err))
		return
	}
	zlog.Info("admin user created", zap.String("username", "admin"))
}
