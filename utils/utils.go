package utils

import (
	"errors"
	"fmt"
	"time"

	"pooja-booking/models/user"
	"pooja-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUserByUUID retrieves a user by their UUID from the database
func GetUserByUUID(db *gorm.DB, uuid string) (*user.User, error) {
	if uuid == "" {
		return nil, errors.New("UUID cannot be empty")
	}

	var userModel user.User
	if err := db.Where("uuid = ?", uuid).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &userModel, nil
}

// ClaimsFromContext returns the JWT claims the auth middleware stored on the
// request, or an error when the request carries no authenticated session.
func ClaimsFromContext(c *fiber.Ctx) (map[string]interface{}, error) {
	claims, ok := c.Locals("user").(map[string]interface{})
	if !ok {
		return nil, errors.New("no authenticated session")
	}
	return claims, nil
}

// CreateSanitizedLogEntry creates a deep copied log entry for async logging.
// Copies guard against fasthttp reusing the request buffers after the
// handler returns.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := string(append([]byte(nil), c.Body()...))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
