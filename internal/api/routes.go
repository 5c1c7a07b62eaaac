package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	setup := api.Group("/setup")
	setup.Get("/status", handler.SetupStatus)
	setup.Post("/complete", handler.CompleteSetup)

	api.Get("/targets", handler.GetTargets)
	api.Get("/settings", handler.GetSettings)
	api.Put("/settings", handler.UpdateSettings)

	plan := api.Group("/plan")
	plan.Post("/rebuild", handler.RebuildPlan)
	plan.Get("", handler.GetPlanRange)
	plan.Get("/:date", handler.GetPlanDay)

	logs := api.Group("/logs")
	logs.Get("/:date", handler.GetLog)
	logs.Put("/:date", handler.UpdateLog)
	logs.Get("/:date/status", handler.GetLogStatus)

	api.Get("/stats/overview", handler.GetStatsOverview)

	grocery := api.Group("/grocery")
	grocery.Get("", handler.GetGrocery)
	grocery.Put("/bought/:key", handler.SetGroceryBought)

	pricing := api.Group("/pricing")
	pricing.Get("", handler.GetPricing)
	pricing.Put("/prices", handler.UpdatePrices)

	measurements := api.Group("/measurements")
	measurements.Get("", handler.GetMeasurements)
	measurements.Post("", handler.CreateMeasurement)

	backup := api.Group("/backup")
	backup.Get("/export", handler.ExportBackup)
	backup.Post("/import", handler.ImportBackup)

	api.Get("/lookup/products", handler.LookupProducts)
}
