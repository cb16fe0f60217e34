package routes

import (
	"pooja-booking/controllers/admin"
	"pooja-booking/controllers/auth"
	"pooja-booking/controllers/booking"
	"pooja-booking/controllers/user"
	"pooja-booking/logger"
	"pooja-booking/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, asyncLogger)
	bookingController := booking.NewBookingController(db, asyncLogger)
	adminController := admin.NewAdminController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "pooja-booking",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)
	api.Post("/admin/login", authController.AdminLogin)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuthentication())
	authGroup.Get("/profile", user.GetUserInfo)
	authGroup.Post("/logout", authController.LogOut)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking").Use(middleware.RequireAuthentication())
	bookingGroup.Post("/create", bookingController.Store)
	bookingGroup.Get("/my", bookingController.Dashboard)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	adminGroup := api.Group("/admin/bookings").Use(middleware.RequireAdmin())
	adminGroup.Get("/", adminController.Index)
	adminGroup.Post("/:id/approve", adminController.Approve)
	adminGroup.Post("/:id/reject", adminController.Reject)
	adminGroup.Post("/:id/meeting-link", adminController.AttachMeetingLink)
}
