package app

import (
	"time"

	"constancias-backend/internal/auth"
	"constancias-backend/internal/config"
	"constancias-backend/internal/constancias"
	"constancias-backend/internal/database"
	"constancias-backend/internal/folio"
	"constancias-backend/internal/health"
	"constancias-backend/internal/middleware"
	"constancias-backend/internal/render"
	"constancias-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. Returns the DB and Redis handles so main can verify
// connections at startup.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowLocalhost: cfg.Env != "production",
	}))

	// Session (Redis)
	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	// Request ID, route logger
	app.Use(middleware.RequestID())
	app.Use(middleware.RouteLogger())

	// Database (may be absent in tests; DB-backed modules are skipped then)
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return nil, nil, nil, err
		}
	}

	// --- Routes (no auth) ---
	healthHandlers := &health.Handlers{DB: db, Rdb: rdb}
	app.Get("/", healthHandlers.Root)
	app.Get("/health/json", healthHandlers.JSON)

	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{UserFinder: userFinder, Rdb: rdb, Config: sessionCfg}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// --- Constancias module ---
	if db != nil {
		store := &storage.SupabaseStore{
			BaseURL:   cfg.SupabaseURL,
			SecretKey: cfg.SupabaseSecretKey,
			Bucket:    cfg.StorageBucket,
		}
		service := &constancias.Service{
			DB:        db,
			Repo:      &constancias.Repository{DB: db},
			Folios:    &folio.Allocator{DB: db},
			Renderer:  &render.Renderer{TemplatePath: cfg.TemplatePath},
			Store:     store,
			BulkDelay: time.Duration(cfg.BulkDelayMs) * time.Millisecond,
		}
		handlers := &constancias.Handlers{Service: service, PublicBaseURL: cfg.PublicBaseURL}

		// Public verification route (no auth)
		app.Get("/api/v1/constancias/public/validar/:folio", handlers.Validar)

		// Admin routes (auth required)
		group := app.Group("/api/v1/constancias", middleware.RequireAuth())
		group.Post("/create-constancia", handlers.CreateConstancia)
		group.Post("/bulk-create", handlers.BulkCreate)
		group.Get("/list-constancias", handlers.ListConstancias)
	}

	return app, db, rdb, nil
}
