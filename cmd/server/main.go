package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"estate-hub.backend/internal/config"
	"estate-hub.backend/internal/infrastructure/jobs"
	"estate-hub.backend/internal/infrastructure/repositories"
	"estate-hub.backend/internal/interfaces/http/handlers"
	"estate-hub.backend/internal/interfaces/http/middleware"
	"estate-hub.backend/internal/usecases"
	"estate-hub.backend/pkg/jwt"
	"estate-hub.backend/pkg/logger"
	"estate-hub.backend/pkg/metrics"
	"estate-hub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize metrics collectors
	metrics.Init()

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	bankRepo := repositories.NewCachedBankingPartnerRepository(
		repositories.NewBankingPartnerRepository(db),
		cfg.Redis.BankCacheTTL,
	)
	staffRepo := repositories.NewStaffProfileRepository(db)
	enquiryRepo := repositories.NewEnquiryRepository(db)
	titleSearchRepo := repositories.NewTitleSearchRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	propertyUsecase := usecases.NewPropertyUsecase(propertyRepo, staffRepo)
	bankUsecase := usecases.NewBankingPartnerUsecase(bankRepo)
	loanOptionsUsecase := usecases.NewLoanOptionsUsecase(propertyRepo, bankRepo)
	appointmentUsecase := usecases.NewAppointmentUsecase(appointmentRepo, propertyRepo, staffRepo)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, propertyRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	propertyHandler := handlers.NewPropertyHandler(propertyUsecase)
	bankingPartnerHandler := handlers.NewBankingPartnerHandler(bankUsecase, loanOptionsUsecase)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryRepo, propertyRepo)
	titleSearchHandler := handlers.NewTitleSearchHandler(titleSearchRepo)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUsecase)
	userHandler := handlers.NewUserHandler(userRepo, propertyRepo)
	adminHandler := handlers.NewAdminHandler(userRepo, staffRepo, propertyRepo, bankRepo)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Rate limit the credential endpoints
	authLimiter := middleware.NewRateLimiter(rate.Limit(5), 10)
	go authLimiter.Cleanup(ctx)

	expiryJob := jobs.NewExpirySweepJob(bankRepo, appointmentRepo, cfg.Jobs.ExpirySweepInterval)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		propertyHandler:       propertyHandler,
		bankingPartnerHandler: bankingPartnerHandler,
		enquiryHandler:        enquiryHandler,
		titleSearchHandler:    titleSearchHandler,
		reviewHandler:         reviewHandler,
		appointmentHandler:    appointmentHandler,
		userHandler:           userHandler,
		adminHandler:          adminHandler,
		authMiddleware:        authMiddleware,
		authRateLimiter:       middleware.RateLimitMiddleware(authLimiter),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Estate-Hub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
