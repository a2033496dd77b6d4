package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"

	"Gudang/Backend"
	"Gudang/Controllers"
	"Gudang/Store"
	"Gudang/middleware"
)

func SetupRoutes(app *fiber.App, client *Backend.Client, inventoryStore *Store.InventoryStore, reportStore *Store.ReportStore) {
	// Initialize handlers
	inventoryController := Controllers.NewInventoryController(client, inventoryStore)
	reportController := Controllers.NewReportController(client, reportStore, inventoryStore)
	exportController := Controllers.NewExportController(inventoryStore)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/inventory")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	app.Get("/login", Controllers.LoginPage)
	app.Post("/login", Controllers.Login)
	app.Post("/logout", Controllers.Logout)

	// Inventory routes
	inventory := app.Group("/inventory", middleware.Verify(1))
	inventory.Get("/", inventoryController.ListPage)
	inventory.Get("/export", exportController.Download)
	inventory.Post("/add", inventoryController.AddItem)
	inventory.Post("/update/:id", inventoryController.UpdateItem)
	inventory.Post("/delete/:id", inventoryController.DeleteItem)

	// Daily report routes
	reports := app.Group("/reports", middleware.Verify(1))
	reports.Get("/", reportController.CardsPage)
	reports.Get("/table", reportController.TablePage)
	reports.Post("/add", reportController.AddReport)
	reports.Post("/update/:id", reportController.UpdateReport)
	reports.Post("/delete/:id", reportController.DeleteReport)

	// JSON endpoints for page scripts - keep the fixed paths BEFORE the ID
	// route to avoid conflicts
	api := app.Group("/api", middleware.Verify(1))
	api.Get("/inventory", inventoryController.Data)
	api.Get("/reports/line-total", reportController.LineTotal)
	api.Get("/reports/:id", reportController.Detail)
}

func FiberConfig(client *Backend.Client, inventoryStore *Store.InventoryStore, reportStore *Store.ReportStore) {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, client, inventoryStore, reportStore)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
