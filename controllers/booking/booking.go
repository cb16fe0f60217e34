package booking

import (
	"fmt"
	"os"
	"time"

	"pooja-booking/logger"
	bookingModel "pooja-booking/models/booking"
	"pooja-booking/types"
	bookingTypes "pooja-booking/types/booking"
	"pooja-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store creates a new booking with status pending.
// Resubmitting the same form creates a second record; bookings carry no
// client-supplied identifier to dedupe on.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	claims, err := utils.ClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "You need to be logged in to book a pooja",
			Status:  fiber.StatusUnauthorized,
		})
	}

	userUUID, ok := claims["uuid"].(string)
	if !ok || userUUID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "User UUID not found in token",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	userInfo, err := utils.GetUserByUUID(bc.DB, userUUID)
	if err != nil {
		logger.Error("Error finding user by UUID", err)
		status := fiber.StatusInternalServerError
		msg := "Database error"
		if err.Error() == "user not found" {
			status = fiber.StatusUnauthorized
			msg = "User not found"
		}
		return c.Status(status).JSON(types.ApiResponse{
			Message: msg,
			Status:  status,
		})
	}

	booking := bookingModel.Booking{
		UserID:       userInfo.ID,
		PoojaType:    req.PoojaType,
		Date:         req.Date,
		Time:         req.Time,
		Requirements: req.Requirements,
		Status:       bookingModel.BookingStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to book pooja. Please try again.",
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	bc.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", booking.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    booking,
	})
}

// Dashboard returns the current user's profile together with their bookings,
// split into upcoming and past by booking date.
func (bc *BookingController) Dashboard(c *fiber.Ctx) error {
	claims, err := utils.ClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "You need to be logged in to view the dashboard",
			Status:  fiber.StatusUnauthorized,
		})
	}

	userUUID, ok := claims["uuid"].(string)
	if !ok || userUUID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "User UUID not found in token",
			Status:  fiber.StatusUnauthorized,
		})
	}

	userInfo, err := utils.GetUserByUUID(bc.DB, userUUID)
	if err != nil {
		logger.Error("Error finding user by UUID", err)
		status := fiber.StatusInternalServerError
		msg := "Database error"
		if err.Error() == "user not found" {
			status = fiber.StatusUnauthorized
			msg = "User not found"
		}
		return c.Status(status).JSON(types.ApiResponse{
			Message: msg,
			Status:  status,
		})
	}

	var bookings []bookingModel.Booking
	if err := bc.DB.Where("user_id = ?", userInfo.ID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch bookings for dashboard", err)
		if strictDashboardErrors() {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to fetch bookings",
				Status:  fiber.StatusInternalServerError,
			})
		}
		// Lenient mode: degrade to an empty list so the dashboard still
		// renders the profile and the booking call-to-action.
		bookings = []bookingModel.Booking{}
	}

	upcoming, past := splitByDate(bookings, time.Now())

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dashboard fetched successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"profile": map[string]interface{}{
				"full_name": userInfo.FullName,
				"email":     userInfo.Email,
				"city":      userInfo.City,
				"country":   userInfo.Country,
			},
			"bookings": bookings,
			"upcoming": upcoming,
			"past":     past,
		},
	})
}

// strictDashboardErrors reports whether a failed booking fetch should surface
// as an error instead of an empty list.
func strictDashboardErrors() bool {
	return os.Getenv("DASHBOARD_STRICT_ERRORS") == "true"
}

// splitByDate partitions bookings into upcoming and past relative to the
// start of the reference day. Unparseable dates stay in upcoming so they
// remain visible.
func splitByDate(bookings []bookingModel.Booking, ref time.Time) (upcoming, past []bookingModel.Booking) {
	upcoming = []bookingModel.Booking{}
	past = []bookingModel.Booking{}
	today := now.With(ref).BeginningOfDay()

	for _, b := range bookings {
		d, err := time.Parse("2006-01-02", b.Date)
		if err != nil || !d.Before(today) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}
	return upcoming, past
}
