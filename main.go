package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"jerseystore/internal/config"
	"jerseystore/internal/database"
	"jerseystore/internal/handlers"
	"jerseystore/internal/mailer"
	"jerseystore/internal/notify"
	"jerseystore/internal/receipt"
	"jerseystore/internal/repositories"
	"jerseystore/internal/services"
	"jerseystore/pkg/rabbitmq"
)

const storeName = "Sports Jersey Store"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.SeedProducts(db); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Notification pipeline ---
	// Order events are handed off to a queue so mail-transport latency
	// stays off the request path. With a broker configured the events
	// go through RabbitMQ; otherwise an in-process worker consumes them.
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	receipts := receipt.NewRenderer(storeName)
	dispatcher := notify.NewDispatcher(orderRepo, receipts, smtpMailer, storeName, cfg.SMTPUsername, cfg.AdminEmail)

	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	var worker *notify.Worker
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		if err := mqClient.ConsumeNotifications(dispatcher.HandleEvent); err != nil {
			log.Fatalf("Failed to start RabbitMQ consumer: %v", err)
		}
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, using in-process notification worker")
		worker = notify.NewWorker(dispatcher, cfg.NotifyBuffer)
		publisher = worker
	}

	// --- Services ---
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, publisher)
	contactService := services.NewContactService(smtpMailer, cfg.SMTPUsername, cfg.AdminEmail)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	contactHandler := handlers.NewContactHandler(contactService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if worker != nil {
		if err := worker.Close(); err != nil {
			log.Printf("Error closing notification worker: %v", err)
		}
	}

	log.Println("Server gracefully stopped")
}
