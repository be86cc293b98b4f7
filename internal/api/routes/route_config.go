package routes

import (
	"movelist-backend/internal/api/handlers"
	"movelist-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	ItemHandler      handlers.ItemHandler
	PersonHandler    handlers.PersonHandler
	SettingsHandler  handlers.SettingsHandler
	BreakdownHandler handlers.BreakdownHandler
	StreamHandler    handlers.StreamHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Items()
	c.People()
	c.Settings()
	c.Breakdown()
	c.GuestRoute()
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items")

	// Basic CRUD operations
	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:id", c.ItemHandler.GetItemDetails)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)

	// Purchase workflow
	items.Post("/receipt", c.ItemHandler.UploadReceipt)
	items.Post("/:id/purchase", c.ItemHandler.PurchaseItem)
	items.Post("/:id/revert", c.ItemHandler.RevertItem)
}

func (c *Config) People() {
	people := c.App.Group("/api/v1/people")

	people.Post("", c.PersonHandler.AddPerson)
	people.Get("", c.PersonHandler.GetPeople)
	people.Put("/:id", c.PersonHandler.UpdatePerson)
	people.Delete("/:id", c.PersonHandler.DeletePerson)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings")

	settings.Get("", c.SettingsHandler.GetSettings)
	settings.Put("/budget", c.SettingsHandler.UpdateBudget)
	settings.Put("/alert-email", c.SettingsHandler.UpdateAlertEmail)
	settings.Post("/categories", c.SettingsHandler.AddCategory)
	settings.Put("/categories/:index", c.SettingsHandler.RenameCategory)
	settings.Delete("/categories/:index", c.SettingsHandler.RemoveCategory)
}

func (c *Config) Breakdown() {
	breakdown := c.App.Group("/api/v1/breakdown")

	breakdown.Get("", c.BreakdownHandler.GetSpendBreakdown)
	breakdown.Get("/budget", c.BreakdownHandler.GetBudgetStatus)
	breakdown.Get("/summary", c.BreakdownHandler.GetSummary)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/v1/stream", c.StreamHandler.Stream)
}
