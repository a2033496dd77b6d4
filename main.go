package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"Gudang/Backend"
	"Gudang/CronJobs"
	"Gudang/DevBackend"
	"Gudang/FiberConfig"
	"Gudang/Models"
	"Gudang/Store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}

	Models.Connect()

	// The bundled dev backend serves the REST contract locally when no real
	// backend is around. Point BACKEND_URL at it.
	if os.Getenv("DEV_BACKEND") == "1" {
		go func() {
			port := os.Getenv("DEV_BACKEND_PORT")
			if port == "" {
				port = "3001"
			}
			log.Fatal(DevBackend.App(Models.DB).Listen(":" + port))
		}()
	}

	client := Backend.NewClient()
	inventoryStore := Store.NewInventoryStore(client)
	reportStore := Store.NewReportStore(client)

	refresher := CronJobs.NewSnapshotRefresher(inventoryStore, reportStore, true)
	schedule := os.Getenv("REFRESH_SCHEDULE")
	if schedule == "" {
		schedule = "0 */15 * * * *"
	}
	if err := refresher.Start(schedule); err != nil {
		log.Println("Failed to start snapshot refresher:", err)
	}

	// Setup routes
	FiberConfig.FiberConfig(client, inventoryStore, reportStore)
}
