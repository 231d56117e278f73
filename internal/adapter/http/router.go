package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type AppOptions struct {
	// RateLimitPerMinute caps requests per client IP; 0 disables the limit.
	RateLimitPerMinute int
	BodyLimit          int
}

// NewApp wires the middleware stack and routes.
func NewApp(h *Handler, opts AppOptions) *fiber.App {
	cfg := fiber.Config{AppName: "resume-builder"}
	if opts.BodyLimit > 0 {
		cfg.BodyLimit = opts.BodyLimit
	}
	app := fiber.New(cfg)

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())

	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	if opts.RateLimitPerMinute > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitPerMinute,
			Expiration: time.Minute,
		}))
	}
	api.Post("/generate-resume", h.GenerateResume)
	api.Post("/suggest-skills", h.SuggestSkills)
	api.Post("/generate-pdf", h.GeneratePDF)
	api.Post("/generate-docx", h.GenerateDOCX)
	api.Post("/import", h.ImportResume)
	api.Get("/jobs/:id", h.GetJob)

	return app
}
