package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/madinahgate/umrah_travel/catalog"
	config "github.com/madinahgate/umrah_travel/configs"
	"github.com/madinahgate/umrah_travel/database"
	"github.com/madinahgate/umrah_travel/handlers"
	"github.com/madinahgate/umrah_travel/jobs"
	"github.com/madinahgate/umrah_travel/notifications"
	"github.com/madinahgate/umrah_travel/routes"
	"github.com/madinahgate/umrah_travel/storage"
	"github.com/robfig/cron/v3"
)

func main() {
	store := buildCatalogStore()
	service := catalog.NewService(store)

	imageStore, err := storage.NewImageStore(config.Config("CLOUDINARY_URL"))
	if err != nil {
		log.Fatalf("🔥 Image storage misconfigured: %v", err)
	}

	emailService := notifications.NewBrevoService(
		config.Config("BREVO_API_KEY"),
		config.Config("EMAIL_SENDER"),
		config.Config("EMAIL_SENDER_NAME"),
		config.Config("CONTACT_RECIPIENT"),
	)

	app := fiber.New(fiber.Config{
		AppName:       "Umrah Travel API",
		CaseSensitive: true,
		StrictRouting: true,
		// Image uploads are capped at 5 MiB after decoding; leave headroom
		// for multipart framing and base64 growth.
		BodyLimit:     10 * 1024 * 1024,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.PackageRoutes(app, handlers.NewPackageHandler(service))
	routes.UploadRoutes(app, handlers.NewUploadHandler(imageStore))
	routes.ContactRoutes(app, handlers.NewContactHandler(emailService))

	port := config.ConfigDefault("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}

// buildCatalogStore selects the storage backend from configuration and fails
// fast when its required settings are absent.
func buildCatalogStore() storage.CatalogStore {
	backend := config.ConfigDefault("STORAGE_BACKEND", "file")

	switch backend {
	case "file":
		path := config.ConfigDefault("PACKAGES_FILE", "data/umrahPackages.json")
		store := storage.NewFileStore(path)
		if err := store.Init(); err != nil {
			log.Fatalf("🔥 Failed to initialize catalog file: %v", err)
		}

		c := cron.New()
		c.AddFunc("0 3 * * *", func() {
			jobs.BackupCatalogFile(path, config.ConfigDefault("BACKUP_DIR", "data/backups"))
		})
		c.Start()
		log.Println("✅ Nightly catalog backup scheduled.")

		log.Printf("✅ Using file-backed catalog at %s", path)
		return store

	case "postgres":
		db, err := database.Connect(config.MustConfig("DATABASE_URL"))
		if err != nil {
			log.Fatalf("🔥 %v", err)
		}
		log.Println("✅ Using Postgres-backed catalog")
		return storage.NewDBStore(db)

	default:
		log.Fatalf("🔥 Unknown STORAGE_BACKEND %q (want file or postgres)", backend)
		return nil
	}
}
