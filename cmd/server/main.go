// @title Invoice Hub API
// @version 1.0
// @description Invoicing backend: clients, billable items and invoices with line items.
// @BasePath /
package main

import (
	"context"
	"log"

	_ "github.com/karthikbhat/invoice-hub-service/docs"
	"github.com/karthikbhat/invoice-hub-service/internal/config"
	"github.com/karthikbhat/invoice-hub-service/internal/database"
	"github.com/karthikbhat/invoice-hub-service/internal/handler"
	"github.com/karthikbhat/invoice-hub-service/internal/repository"
	"github.com/karthikbhat/invoice-hub-service/internal/server"
	"github.com/karthikbhat/invoice-hub-service/internal/service"
)

func main() {
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Connecting to database...")
	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	clientRepo := repository.NewPostgresClientRepository(db)
	itemRepo := repository.NewPostgresItemRepository(db)
	invoiceRepo := repository.NewPostgresInvoiceRepository(db)

	clientService := service.NewClientService(clientRepo)
	itemService := service.NewItemService(itemRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo)

	clientHandler := handler.NewClientHandler(clientService)
	itemHandler := handler.NewItemHandler(itemService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, clientHandler, itemHandler, invoiceHandler)

	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
