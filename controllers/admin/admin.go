package admin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pooja-booking/logger"
	bookingModel "pooja-booking/models/booking"
	"pooja-booking/types"
	bookingTypes "pooja-booking/types/booking"
	"pooja-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminController handles the admin-side booking table and its actions
type AdminController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewAdminController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AdminController {
	return &AdminController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Index lists bookings for the admin table. The whole collection is loaded
// and the search/status filters are applied in-process, matching the table's
// visible filtering contract: case-insensitive substring search across the
// rendered columns combined with the status filter via logical AND.
func (ac *AdminController) Index(c *fiber.Ctx) error {
	search := c.Query("search")
	status := c.Query("status", "all")

	if status != "all" && !bookingModel.BookingStatus(status).IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Unknown status filter: %s", status),
			Status:  fiber.StatusBadRequest,
		})
	}

	var bookings []bookingModel.Booking
	if err := ac.DB.Preload("User").Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	filtered := filterBookings(bookings, search, status)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"bookings": filtered,
			"total":    len(filtered),
		},
	})
}

// Approve transitions a pending booking to approved. The status check runs
// inside the UPDATE itself so a concurrent decision cannot be overwritten.
func (ac *AdminController) Approve(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	result := ac.DB.Model(&bookingModel.Booking{}).
		Where("id = ? AND status = ?", id, bookingModel.BookingStatusPending).
		Update("status", bookingModel.BookingStatusApproved)
	if result.Error != nil {
		logger.Error("Failed to approve booking", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to approve booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if result.RowsAffected == 0 {
		return ac.decisionConflict(c, uint(id), "approve")
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	ac.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Booking %d approved", id))
	return ac.respondWithBooking(c, uint(id), "Booking approved successfully")
}

// Reject transitions a pending booking to rejected. The reason is mandatory;
// an empty reason aborts the action with no state change.
func (ac *AdminController) Reject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req bookingTypes.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnprocessableEntity,
		})
	}

	result := ac.DB.Model(&bookingModel.Booking{}).
		Where("id = ? AND status = ?", id, bookingModel.BookingStatusPending).
		Updates(map[string]interface{}{
			"status":           bookingModel.BookingStatusRejected,
			"rejection_reason": req.Reason,
		})
	if result.Error != nil {
		logger.Error("Failed to reject booking", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to reject booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if result.RowsAffected == 0 {
		return ac.decisionConflict(c, uint(id), "reject")
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	ac.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Booking %d rejected", id))
	return ac.respondWithBooking(c, uint(id), "Booking rejected successfully")
}

// AttachMeetingLink stores the meeting URL on an approved booking. The link
// is kept verbatim; only approval gates the action, not the URL format.
func (ac *AdminController) AttachMeetingLink(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req bookingTypes.MeetingLinkRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnprocessableEntity,
		})
	}

	result := ac.DB.Model(&bookingModel.Booking{}).
		Where("id = ? AND status = ?", id, bookingModel.BookingStatusApproved).
		Update("meeting_link", req.MeetingLink)
	if result.Error != nil {
		logger.Error("Failed to attach meeting link", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to add meeting link",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if result.RowsAffected == 0 {
		var existing bookingModel.Booking
		if err := ac.DB.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
					Message: "Booking not found",
					Status:  fiber.StatusNotFound,
				})
			}
			logger.Error("Failed to find booking", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Internal server error",
				Status:  fiber.StatusInternalServerError,
			})
		}
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Meeting links can only be attached to approved bookings",
			Status:  fiber.StatusConflict,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	ac.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Meeting link added to booking %d", id))
	return ac.respondWithBooking(c, uint(id), "Meeting link added successfully")
}

// decisionConflict distinguishes a missing booking from one that was already
// decided when a conditional approve/reject matched no row.
func (ac *AdminController) decisionConflict(c *fiber.Ctx, id uint, action string) error {
	var existing bookingModel.Booking
	if err := ac.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
		Message: fmt.Sprintf("Cannot %s a booking that is already %s", action, existing.Status),
		Status:  fiber.StatusConflict,
	})
}

func (ac *AdminController) respondWithBooking(c *fiber.Ctx, id uint, message string) error {
	var updated bookingModel.Booking
	if err := ac.DB.Preload("User").First(&updated, id).Error; err != nil {
		logger.Error("Failed to load updated booking", err)
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: message,
			Status:  fiber.StatusOK,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// filterBookings applies the admin table's search and status filters.
// Search matches case-insensitively against every rendered column value;
// both filters must pass for a row to stay visible.
func filterBookings(bookings []bookingModel.Booking, search, status string) []bookingModel.Booking {
	filtered := []bookingModel.Booking{}
	query := strings.ToLower(strings.TrimSpace(search))

	for _, b := range bookings {
		if status != "all" && string(b.Status) != status {
			continue
		}
		if query != "" && !matchesSearch(b, query) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// matchesSearch checks the lowercased query against the columns the admin
// table renders: user name, pooja type, date, time and status.
func matchesSearch(b bookingModel.Booking, query string) bool {
	columns := []string{
		b.User.FullName,
		b.PoojaType,
		b.Date,
		b.Time,
		string(b.Status),
	}
	for _, col := range columns {
		if strings.Contains(strings.ToLower(col), query) {
			return true
		}
	}
	return false
}
