package api

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"farm-advisor/internal/api/handlers"
)

// fallbackIndex is served when no web interface is present on disk.
const fallbackIndex = `<html>
<head><title>Farm Advisor</title></head>
<body>
	<h1>Farm Advisor</h1>
	<p>The web interface is not installed. The API is available under /api.</p>
</body>
</html>`

func SetupRouter(
	advisorHandler *handlers.AdvisorHandler,
	voiceHandler *handlers.VoiceHandler,
	webStaticDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Session-Id",
	}))
	app.Use(logger.New())

	// Web interface, when present
	if dirExists(webStaticDir) {
		appLogger.Info("Serving static files", zap.String("path", webStaticDir))
		app.Static("/static", webStaticDir)
	} else {
		appLogger.Warn("Web static directory not found, static files will not be served",
			zap.String("path", webStaticDir))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		indexPath := filepath.Join(webStaticDir, "index.html")
		if fileExists(indexPath) {
			return c.SendFile(indexPath)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(fallbackIndex)
	})

	// API routes
	api := app.Group("/api")
	api.Post("/ask", advisorHandler.Ask)
	api.Get("/categories", advisorHandler.Categories)
	api.Get("/history", advisorHandler.History)
	api.Get("/status", advisorHandler.Status)

	voice := api.Group("/voice")
	voice.Post("/start", voiceHandler.Start)
	voice.Post("/stop", voiceHandler.Stop)
	voice.Get("/status", voiceHandler.Status)

	api.Post("/speak", voiceHandler.Speak)

	return app
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
