package main

import (
	"log"
	"time"

	"sge-logistics/internal/core/cache"
	"sge-logistics/internal/core/config"
	"sge-logistics/internal/core/database"
	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/core/server"
	announcementadapter "sge-logistics/internal/features/announcements/adapters"
	announcementhandler "sge-logistics/internal/features/announcements/handler"
	announcementservice "sge-logistics/internal/features/announcements/service"
	authadapter "sge-logistics/internal/features/auth/adapters"
	authhandler "sge-logistics/internal/features/auth/handler"
	authports "sge-logistics/internal/features/auth/ports"
	blogadapter "sge-logistics/internal/features/blog/adapters"
	blogdomain "sge-logistics/internal/features/blog/domain"
	bloghandler "sge-logistics/internal/features/blog/handler"
	blogservice "sge-logistics/internal/features/blog/service"
	contactadapter "sge-logistics/internal/features/contact/adapters"
	contactdomain "sge-logistics/internal/features/contact/domain"
	contacthandler "sge-logistics/internal/features/contact/handler"
	contactports "sge-logistics/internal/features/contact/ports"
	contactservice "sge-logistics/internal/features/contact/service"
	notifadapter "sge-logistics/internal/features/notifications/adapters"
	notifservice "sge-logistics/internal/features/notifications/service"
	settingsadapter "sge-logistics/internal/features/settings/adapters"
	settingsdomain "sge-logistics/internal/features/settings/domain"
	settingshandler "sge-logistics/internal/features/settings/handler"
	settingsservice "sge-logistics/internal/features/settings/service"
	shipmentadapter "sge-logistics/internal/features/shipments/adapters"
	shipmentdomain "sge-logistics/internal/features/shipments/domain"
	shipmenthandler "sge-logistics/internal/features/shipments/handler"
	shipmentports "sge-logistics/internal/features/shipments/ports"
	shipmentservice "sge-logistics/internal/features/shipments/service"

	"go.uber.org/zap"
)

// @title SGE Logistics API
// @version 1.0
// @description Shipment tracking, contact and back-office API for the SGE Logistics site.
// @contact.name API Support
// @contact.email support@sgelogistics.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Database
	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db,
		&shipmentdomain.Shipment{},
		&shipmentdomain.TrackingEvent{},
		&contactdomain.ContactMessage{},
		&blogdomain.BlogPost{},
		&settingsdomain.MapProviderSetting{},
	); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Database ready")

	// Redis backs the dashboard stats cache and the site announcement.
	// Optional: without it the dashboard scans on every request and the
	// announcement endpoints are not registered.
	var redisCache cache.Cache
	var statsCache shipmentports.StatsCache
	if cfg.Redis.URL != "" {
		adapter, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		redisCache = adapter
		statsCache = shipmentadapter.NewRedisStatsCache(
			adapter,
			time.Duration(cfg.Redis.StatsTTLSeconds)*time.Second,
		)
		l.Info("Redis connection verified")
	}

	// Notifications. Without a mail API the dispatcher is skipped entirely
	// and shipment/contact flows run without side effects.
	var dispatcher *notifservice.Dispatcher
	if cfg.Mail.APIURL != "" {
		mailer := notifadapter.NewMailAPIMailer(cfg.Mail.APIURL, cfg.Mail.APIKey, cfg.Mail.From)
		dispatcher = notifservice.NewDispatcher(mailer, cfg.Mail.AdminEmail)
		defer dispatcher.Close()
	}

	// Auth: hosted provider when configured, locally signed tokens otherwise.
	var sessionProvider authports.SessionProvider
	if cfg.Auth.ProviderURL != "" {
		sessionProvider = authadapter.NewHTTPSessionProvider(cfg.Auth.ProviderURL, cfg.Auth.APIKey)
	} else {
		l.Warn("No auth provider configured, running in demo mode")
		sessionProvider = authadapter.NewDemoSessionProvider(
			cfg.Auth.JWTSecret,
			cfg.Auth.DemoEmail,
			cfg.Auth.DemoPassword,
		)
	}

	// Shipments
	geocoder := shipmentadapter.NewNominatimGeocoder(cfg.Geocoder.URL)
	shipmentRepo := shipmentadapter.NewPostgresShipmentRepository(db)
	var shipmentNotifier shipmentports.Notifier
	if dispatcher != nil {
		shipmentNotifier = dispatcher
	}
	shipmentSvc := shipmentservice.NewShipmentService(shipmentRepo, geocoder, shipmentNotifier, statsCache)
	shipmentHdl := shipmenthandler.NewShipmentHandler(shipmentSvc)

	// Contact
	contactRepo := contactadapter.NewPostgresContactRepository(db)
	var contactNotifier contactports.Notifier
	if dispatcher != nil {
		contactNotifier = dispatcher
	}
	contactSvc := contactservice.NewContactService(contactRepo, contactNotifier)
	contactHdl := contacthandler.NewContactHandler(contactSvc)
	contactLimiter := contacthandler.NewRateLimiter(
		cfg.Contact.RateLimitMax,
		time.Duration(cfg.Contact.RateLimitWindowMinutes)*time.Minute,
	)

	// Blog
	blogRepo := blogadapter.NewPostgresBlogRepository(db)
	blogSvc := blogservice.NewBlogService(blogRepo)
	blogHdl := bloghandler.NewBlogHandler(blogSvc)

	// Settings
	settingsRepo := settingsadapter.NewPostgresSettingsRepository(db)
	settingsSvc := settingsservice.NewSettingsService(settingsRepo)
	settingsHdl := settingshandler.NewSettingsHandler(settingsSvc)

	// Announcements
	var announcementHdl *announcementhandler.AnnouncementHandler
	if redisCache != nil {
		announcementRepo := announcementadapter.NewRedisAnnouncementRepository(redisCache)
		announcementSvc := announcementservice.NewAnnouncementService(announcementRepo)
		announcementHdl = announcementhandler.NewAnnouncementHandler(announcementSvc)
	}

	// Auth handler
	authHdl := authhandler.NewAuthHandler(
		sessionProvider,
		time.Duration(cfg.Auth.LoginTimeoutSeconds)*time.Second,
	)

	srv := server.New(cfg)
	app := srv.App

	// Public routes
	app.Post("/auth/login", authHdl.Login)
	app.Get("/auth/session", authHdl.GetSession)
	app.Get("/shipments/:trackingNumber", shipmentHdl.GetShipment)
	app.Post("/contact", contactLimiter, contactHdl.SubmitMessage)
	app.Get("/blog", blogHdl.ListPosts)
	app.Get("/blog/:slug", blogHdl.GetPost)
	app.Get("/settings/map-provider", settingsHdl.GetMapProvider)
	if announcementHdl != nil {
		app.Get("/announcement", announcementHdl.Current)
	}

	// Back-office routes
	admin := app.Group("/admin", authHdl.RequireSession)
	admin.Post("/shipments", shipmentHdl.CreateShipment)
	admin.Get("/shipments", shipmentHdl.ListShipments)
	admin.Patch("/shipments/:trackingNumber/status", shipmentHdl.UpdateStatus)
	admin.Get("/dashboard/stats", shipmentHdl.DashboardStats)
	admin.Get("/contact", contactHdl.ListMessages)
	admin.Post("/blog", blogHdl.CreatePost)
	admin.Put("/blog/:slug", blogHdl.UpdatePost)
	admin.Delete("/blog/:slug", blogHdl.DeletePost)
	admin.Put("/settings/map-provider", settingsHdl.SetMapProvider)
	if announcementHdl != nil {
		admin.Post("/announcement", announcementHdl.Publish)
		admin.Delete("/announcement", announcementHdl.Clear)
	}

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
