package FiberConfig

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Momentum/Controllers"
	"Momentum/Recurring"
	"Momentum/Store"
	"Momentum/middleware"
)

// SetupRoutes wires every endpoint of the local surface.
func SetupRoutes(app *fiber.App, store *Store.Store, planner *Recurring.Planner, db *gorm.DB) {
	// Initialize handlers
	authController := Controllers.NewAuthController(store)
	plannerController := Controllers.NewPlannerController(planner, store)
	goalsController := Controllers.NewGoalsController(store, planner)
	scheduleController := Controllers.NewScheduleController(store)
	todoController := Controllers.NewTodoController(store)
	statsController := Controllers.NewStatsController(store, planner)
	preferencesController := Controllers.NewPreferencesController(db)

	// Session routes
	app.Post("/api/login", authController.Login)
	app.Post("/api/register", authController.Register)
	app.Post("/api/logout", authController.Logout)
	app.Get("/api/user", middleware.Verify(), authController.User)

	api := app.Group("/api", middleware.Verify())

	// Day planner routes
	plan := api.Group("/planner")
	plan.Get("/recurring", plannerController.GetRecurring)
	plan.Post("/recurring/reload", plannerController.ReloadRecurring)
	plan.Post("/recurring/:id/toggle", plannerController.ToggleRecurring)
	plan.Get("/today", plannerController.GetToday)
	plan.Get("/date/:date", plannerController.GetByDate)

	// Goal routes
	goals := api.Group("/goals")
	goals.Get("/", goalsController.GetGoals)
	goals.Post("/", goalsController.CreateGoal)
	goals.Put("/:id", goalsController.UpdateGoal)
	goals.Delete("/:id", goalsController.DeleteGoal)
	goals.Post("/:id/milestones", goalsController.AddMilestone)
	goals.Put("/:id/milestones/:milestoneId", goalsController.UpdateMilestone)
	goals.Delete("/:id/milestones/:milestoneId", goalsController.DeleteMilestone)

	// Schedule routes
	schedules := api.Group("/schedules")
	schedules.Get("/", scheduleController.GetSchedules)
	schedules.Post("/", scheduleController.CreateOrUpdateSchedule)
	schedules.Delete("/:id", scheduleController.DeleteSchedule)
	schedules.Post("/:id/tasks", scheduleController.AddTask)
	schedules.Put("/:id/tasks/:taskId", scheduleController.UpdateTask)
	schedules.Delete("/:id/tasks/:taskId", scheduleController.DeleteTask)

	// Todo routes
	todos := api.Group("/todos")
	todos.Get("/", todoController.GetTodos)
	todos.Post("/", todoController.CreateTodo)
	todos.Put("/:id", todoController.UpdateTodo)
	todos.Delete("/:id", todoController.DeleteTodo)
	todos.Post("/:id/items", todoController.AddItem)
	todos.Put("/:id/items/:itemId", todoController.UpdateItem)
	todos.Delete("/:id/items/:itemId", todoController.DeleteItem)

	// Statistics routes
	stats := api.Group("/stats")
	stats.Get("/summary", statsController.Summary)
	stats.Get("/export", statsController.Export)

	// Preference routes
	preferences := api.Group("/preferences")
	preferences.Get("/", preferencesController.GetPreferences)
	preferences.Put("/:key", preferencesController.SetPreference)
	preferences.Delete("/:key", preferencesController.DeletePreference)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

// FiberConfig builds the local surface and starts listening.
func FiberConfig(listenAddr string, store *Store.Store, planner *Recurring.Planner, db *gorm.DB) error {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, store, planner, db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "Momentum",
		})
	})

	return app.Listen(listenAddr)
}
