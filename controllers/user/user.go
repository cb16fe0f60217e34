package user

import (
	"errors"
	"pooja-booking/database"
	"pooja-booking/logger"
	"pooja-booking/models/user"
	"pooja-booking/types"
	"pooja-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUserInfo returns the registration profile of the current session's user
func GetUserInfo(c *fiber.Ctx) error {
	claims, err := utils.ClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	uid, ok := claims["uuid"].(string)
	if !ok || uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "User UUID not found in token",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var account user.User
	if err := database.DB.Where("uuid = ?", uid).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("User not found", err)
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Error fetching user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error fetching user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	userInfo := map[string]interface{}{
		"uuid":       account.Uuid,
		"full_name":  account.FullName,
		"email":      account.Email,
		"city":       account.City,
		"country":    account.Country,
		"role":       account.Role,
		"created_at": account.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	logger.Success("User fetched successfully")
	return c.JSON(&types.ApiResponse{
		Message: "User fetched successfully",
		Status:  fiber.StatusOK,
		Data:    userInfo,
	})
}
