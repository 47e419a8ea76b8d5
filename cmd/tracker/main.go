package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"customer-tracker/internal/cli"
	"customer-tracker/internal/config"
	"customer-tracker/internal/database"
	"customer-tracker/internal/logger"
	"customer-tracker/internal/repository"
	"customer-tracker/internal/service"
	"customer-tracker/internal/validation"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	v := validation.New()
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	customers := service.NewCustomerService(customerRepo, v, cfg.LatePaymentDays)
	products := service.NewProductService(productRepo, v)
	assignments := service.NewAssignmentService(assignmentRepo, customerRepo, productRepo, v)

	menu := cli.New(customers, products, assignments, logger.New(), os.Stdin, os.Stdout)

	// Interrupt exits with the same farewell as option 14
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		os.Stdout.WriteString("\nExiting the customer tracking system. Goodbye!\n")
		os.Exit(0)
	}()

	if err := menu.Run(); err != nil {
		logrus.Fatal("Session ended with an error:", err)
	}
}
