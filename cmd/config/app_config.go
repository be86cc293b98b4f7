package config

import (
	"movelist-backend/internal/api/handlers"
	"movelist-backend/internal/api/routes"
	"movelist-backend/internal/middleware"
	"movelist-backend/internal/utils"
	"movelist-backend/internal/utils/storage"
	"movelist-backend/pkg/breakdown"
	"movelist-backend/pkg/item"
	"movelist-backend/pkg/person"
	"movelist-backend/pkg/settings"
	"movelist-backend/pkg/watch"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jerusalem",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	hub := watch.NewHub()

	// Repository
	itemRepository := item.NewItemRepository(db)
	personRepository := person.NewPersonRepository(db)
	settingsRepository := settings.NewSettingsRepository(db)

	// Service
	settingsService := settings.NewSettingsService(settingsRepository, hub)
	personService := person.NewPersonService(personRepository, hub)
	itemService := item.NewItemService(itemRepository, personRepository, settingsService, s3, hub)
	breakdownService := breakdown.NewBreakdownService(itemRepository, personRepository, settingsRepository)

	// Handler
	itemHandler := handlers.NewItemHandler(itemService, validator)
	personHandler := handlers.NewPersonHandler(personService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)
	breakdownHandler := handlers.NewBreakdownHandler(breakdownService)
	streamHandler := handlers.NewStreamHandler(hub)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ItemHandler:      itemHandler,
		PersonHandler:    personHandler,
		SettingsHandler:  settingsHandler,
		BreakdownHandler: breakdownHandler,
		StreamHandler:    streamHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
