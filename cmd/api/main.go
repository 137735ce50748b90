package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/infra/database"
	"github.com/rsharda/kam-leads/internal/infra/http/handlers"
	"github.com/rsharda/kam-leads/internal/infra/http/middleware"
	"github.com/rsharda/kam-leads/internal/infra/mail"
	"github.com/rsharda/kam-leads/internal/infra/queue"
	"github.com/rsharda/kam-leads/internal/infra/storage"
	"github.com/rsharda/kam-leads/internal/infra/worker"
	"github.com/rsharda/kam-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	mongoClient, err := database.NewMongoConnection(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("mongodb connection failed: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "kam_leads"
	}
	db := mongoClient.Database(dbName)

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatalf("rabbitmq connection failed: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	uploads, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		log.Fatalf("upload store init failed: %v", err)
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	restaurantRepo := database.NewRestaurantRepository(db)
	pocRepo := database.NewPOCRepository(db)
	orderRepo := database.NewOrderRepository(db)
	interactionRepo := database.NewInteractionRepository(db)
	userRepo := database.NewUserRepository(db)

	// Messaging and mail
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// Notification worker consumes lead events and mails the KAM.
	notifyWorker := queue.NewWorker(rabbitMQ.Ch, mailSender, userRepo)
	go notifyWorker.Start(queue.QueueName)

	// Call reminder worker flags overdue leads.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reminderWorker := worker.NewCallReminderWorker(leadRepo, producer, 1*time.Hour)
	go reminderWorker.Start(ctx)

	// Use cases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, producer)
	assignLeadUC := usecase.NewAssignLeadUseCase(leadRepo, producer)
	logCallUC := usecase.NewLogCallUseCase(leadRepo)
	callHistoryUC := usecase.NewGetCallHistoryUseCase(leadRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(
		createLeadUC, updateStatusUC, assignLeadUC, logCallUC, callHistoryUC,
		leadRepo, uploads,
	)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantRepo)
	pocHandler := handlers.NewPOCHandler(pocRepo, restaurantRepo)
	orderHandler := handlers.NewOrderHandler(orderRepo, restaurantRepo)
	interactionHandler := handlers.NewInteractionHandler(interactionRepo, leadRepo)
	authHandler := handlers.NewAuthHandler(userRepo, []byte(jwtSecret))
	healthHandler := handlers.NewHealthHandler(mongoClient, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Welcome to the KAM Lead Management System API"))
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Authenticator([]byte(jwtSecret)))

		api.Post("/leads", leadHandler.Create)
		api.Get("/leads", leadHandler.GetAll)
		api.Get("/leads/calls-due", leadHandler.CallsDue)
		api.Get("/leads/{id}", leadHandler.GetOne)

		api.With(middleware.RequireRole(entity.RoleAdmin)).Put("/leads/{id}", leadHandler.Update)
		api.With(middleware.RequireRole(entity.RoleAdmin)).Delete("/leads/{id}", leadHandler.Delete)

		api.With(middleware.RequireRole(entity.RoleAdmin, entity.RoleKAM)).Put("/leads/{id}/status", leadHandler.UpdateStatusAndFile)
		api.With(middleware.RequireRole(entity.RoleAdmin, entity.RoleKAM)).Put("/leads/{id}/assign", leadHandler.Assign)
		api.With(middleware.RequireRole(entity.RoleAdmin, entity.RoleKAM)).Post("/leads/{id}/calls", leadHandler.LogCall)
		api.With(middleware.RequireRole(entity.RoleAdmin, entity.RoleKAM, entity.RoleViewer)).Get("/leads/{id}/call-history", leadHandler.GetCallHistory)

		api.Post("/restaurants", restaurantHandler.Create)
		api.Get("/restaurants", restaurantHandler.GetAll)
		api.Get("/restaurants/{id}", restaurantHandler.GetOne)
		api.Get("/restaurants/{id}/pocs", pocHandler.GetByRestaurant)
		api.Get("/restaurants/{id}/orders", orderHandler.GetByRestaurant)

		api.Post("/pocs", pocHandler.Create)
		api.Get("/pocs/{id}", pocHandler.GetOne)
		api.Put("/pocs/{id}", pocHandler.Update)
		api.Delete("/pocs/{id}", pocHandler.Delete)

		api.Post("/orders", orderHandler.Create)
		api.Put("/orders/{id}/status", orderHandler.UpdateStatus)

		api.Post("/interactions", interactionHandler.Create)
		api.Get("/interactions/{leadId}", interactionHandler.GetByLead)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 KAM lead server running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
