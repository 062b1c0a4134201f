// @title           Mahoney Makes Backend API
// @version         1.0.0
// @description     Backend for the Mahoney Makes custom-cake bakery: public order-request intake with rate limiting and email notifications, plus the authenticated operator dashboard (requests, orders, payments, supplies, menu, calendar).

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/snoutandabout-dev/mahoneymakes/docs"
	"github.com/snoutandabout-dev/mahoneymakes/internal/config"
	"github.com/snoutandabout-dev/mahoneymakes/internal/database"
	"github.com/snoutandabout-dev/mahoneymakes/internal/handlers"
	"github.com/snoutandabout-dev/mahoneymakes/internal/mailer"
	"github.com/snoutandabout-dev/mahoneymakes/internal/middleware"
	"github.com/snoutandabout-dev/mahoneymakes/internal/services"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	// Storage and realtime need Supabase credentials; without them the
	// dashboard still works, minus image uploads and live events.
	var storageClient *supabase.StorageClient
	var realtimeClient *supabase.RealtimeClient
	if cfg.SupabaseURL != "" {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}
		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}
		realtimeClient = supabase.NewRealtimeClient(supabaseClient.Supabase)
	} else {
		log.Println("Warning: SUPABASE_URL not set. Image uploads and realtime events are disabled.")
	}

	resendClient := mailer.NewClient(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.MailFrom)
	notificationService := services.NewNotificationService(dbClient, resendClient)
	smtpSender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailDefaultSender)

	submitHandler := handlers.NewSubmitHandler(dbClient, dbClient, notificationService, realtimeClient)
	notifyHandler := handlers.NewNotifyHandler(notificationService)
	legacyNotifyHandler := handlers.NewLegacyNotifyHandler(smtpSender, cfg.MailAlertTo, cfg.MailDefaultSender)
	requestsHandler := handlers.NewRequestsHandler(dbClient, storageClient, realtimeClient)
	ordersHandler := handlers.NewOrdersHandler(dbClient, storageClient)
	paymentsHandler := handlers.NewPaymentsHandler(dbClient)
	suppliesHandler := handlers.NewSuppliesHandler(dbClient)
	inventoryHandler := handlers.NewInventoryHandler(dbClient)
	menuHandler := handlers.NewMenuHandler(dbClient)
	specialsHandler := handlers.NewSpecialsHandler(dbClient)
	calendarHandler := handlers.NewCalendarHandler(dbClient)
	settingsHandler := handlers.NewSettingsHandler(dbClient)
	reportsHandler := handlers.NewReportsHandler(dbClient)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.Health)

	// Public endpoints called by the marketing site.
	router.POST("/functions/submit-order-request", submitHandler.Submit)
	router.POST("/functions/send-order-notification", notifyHandler.Send)
	router.Any("/functions/send-order-notification-smtp", legacyNotifyHandler.Handle)
	router.GET("/menu", menuHandler.PublicList)
	router.GET("/specials", specialsHandler.PublicList)

	// Operator dashboard.
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	api.GET("/requests", requestsHandler.List)
	api.GET("/requests/:id", requestsHandler.Get)
	api.PATCH("/requests/:id/status", requestsHandler.SetStatus)
	api.DELETE("/requests/:id", requestsHandler.Delete)
	api.GET("/requests/:id/images", requestsHandler.ListImages)
	api.POST("/requests/:id/convert", requestsHandler.Convert)

	api.GET("/orders", ordersHandler.List)
	api.POST("/orders", ordersHandler.Create)
	api.GET("/orders/:id", ordersHandler.Get)
	api.PUT("/orders/:id", ordersHandler.Update)
	api.DELETE("/orders/:id", ordersHandler.Delete)
	api.GET("/orders/:id/images", ordersHandler.ListImages)
	api.POST("/orders/:id/images", ordersHandler.UploadImage)
	api.GET("/orders/:id/supplies", suppliesHandler.ListOrderSupplies)
	api.POST("/orders/:id/supplies", suppliesHandler.AddOrderSupply)

	api.GET("/payments", paymentsHandler.List)
	api.POST("/payments", paymentsHandler.Create)
	api.DELETE("/payments/:id", paymentsHandler.Delete)

	api.GET("/supplies", suppliesHandler.List)
	api.POST("/supplies", suppliesHandler.Create)
	api.PUT("/supplies/:id", suppliesHandler.Update)
	api.DELETE("/supplies/:id", suppliesHandler.Delete)
	api.DELETE("/order-supplies/:id", suppliesHandler.DeleteOrderSupply)

	api.GET("/inventory", inventoryHandler.List)
	api.POST("/inventory", inventoryHandler.Create)
	api.PATCH("/inventory/:id/checked", inventoryHandler.SetChecked)
	api.DELETE("/inventory/:id", inventoryHandler.Delete)

	api.GET("/menu", menuHandler.List)
	api.POST("/menu", menuHandler.Create)
	api.PUT("/menu/:id", menuHandler.Update)
	api.PATCH("/menu/:id/availability", menuHandler.SetAvailability)
	api.DELETE("/menu/:id", menuHandler.Delete)

	api.GET("/specials", specialsHandler.List)
	api.POST("/specials", specialsHandler.Create)
	api.PUT("/specials/:id", specialsHandler.Update)
	api.DELETE("/specials/:id", specialsHandler.Delete)

	api.GET("/calendar", calendarHandler.List)
	api.POST("/calendar", calendarHandler.Create)
	api.PATCH("/calendar/:id/completed", calendarHandler.SetCompleted)
	api.DELETE("/calendar/:id", calendarHandler.Delete)

	api.GET("/settings", settingsHandler.List)
	api.GET("/settings/:key", settingsHandler.Get)
	api.PUT("/settings/:key", settingsHandler.Set)

	api.GET("/reports/revenue", reportsHandler.Revenue)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
