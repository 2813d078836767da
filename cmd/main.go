package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/auth"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/config"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/db"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/handlers"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/logger"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/middleware"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/payments"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/services"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		zlog.Fatalw("mongodb init failed", "error", err)
	}
	database := client.Database(cfg.MongoDB)
	zlog.Infow("connected to mongodb", "database", cfg.MongoDB)

	images, err := storage.NewMinioStore(cfg.Minio)
	if err != nil {
		zlog.Fatalw("minio init failed", "error", err)
	}

	// Stores
	userStore := repository.NewUserStore(database)
	medicineStore := repository.NewMedicineStore(database)
	cartStore := repository.NewCartStore(database)
	paymentStore := repository.NewPaymentStore(database)
	settler := repository.NewSettler(client, database)

	// Services
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	provider := payments.NewStripeProvider(cfg.StripeSecretKey)
	authSvc := services.NewAuthService(userStore, tokens, zlog)
	medicineSvc := services.NewMedicineService(medicineStore, userStore, images, zlog)
	cartSvc := services.NewCartService(cartStore)
	paymentSvc := services.NewPaymentService(paymentStore, settler, provider, zlog)
	statsSvc := services.NewStatsService(userStore, medicineStore, paymentStore)

	// Handlers
	authHandler := handlers.NewAuthHandler(authSvc)
	userHandler := handlers.NewUserHandler(authSvc)
	medicineHandler := handlers.NewMedicineHandler(medicineSvc)
	cartHandler := handlers.NewCartHandler(cartSvc)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc, authSvc)
	statsHandler := handlers.NewStatsHandler(statsSvc, authSvc)

	protected := middleware.Protected(tokens)
	adminOnly := middleware.RequireAdmin(userStore)
	sellerOnly := middleware.RequireSeller(userStore)

	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("medicines project is running")
	})

	// Auth and user routes
	app.Post("/jwt", authHandler.CreateToken)
	app.Post("/users", authHandler.Register)
	app.Get("/user/:email", protected, userHandler.GetUser)
	app.Get("/users", protected, adminOnly, userHandler.ListUsers)
	app.Get("/users/admin/:email", protected, userHandler.CheckAdmin)
	app.Patch("/users/admin/:id", protected, adminOnly, userHandler.MakeAdmin)
	app.Patch("/users/seller/:id", protected, adminOnly, userHandler.MakeSeller)
	app.Patch("/users/role/:id", protected, adminOnly, userHandler.UpdateRole)

	// Catalog routes
	app.Get("/medicines", medicineHandler.List)
	app.Get("/medicines/seller/:email", protected, sellerOnly, medicineHandler.ListBySeller)
	app.Post("/medicines", protected, sellerOnly, medicineHandler.Create)
	app.Patch("/medicines/:id", protected, sellerOnly, medicineHandler.Update)
	app.Delete("/medicines/:id", protected, sellerOnly, medicineHandler.Delete)
	app.Post("/medicines/:id/image", protected, sellerOnly, medicineHandler.UploadImage)

	// Cart routes
	app.Post("/carts", cartHandler.Add)
	app.Get("/carts", cartHandler.List)
	app.Patch("/carts/:id", cartHandler.UpdateQuantity)
	app.Delete("/carts/:id", cartHandler.Remove)

	// Payment routes
	app.Post("/create-payment-intent", paymentHandler.CreateIntent)
	app.Post("/payments", paymentHandler.Settle)
	app.Get("/payments", protected, adminOnly, paymentHandler.List)
	app.Get("/payments/:email", protected, paymentHandler.ListByEmail)
	app.Patch("/payments/:id", protected, adminOnly, paymentHandler.MarkPaid)

	// Stats routes
	app.Get("/admin-stats", protected, adminOnly, statsHandler.AdminStats)
	app.Get("/seller-stats", protected, sellerOnly, statsHandler.SellerStats)

	zlog.Infow("medicines server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
