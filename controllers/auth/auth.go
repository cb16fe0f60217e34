package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pooja-booking/constants"
	"pooja-booking/logger"
	userModel "pooja-booking/models/user"
	"pooja-booking/types"
	authTypes "pooja-booking/types/auth"
	"pooja-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction, // Only secure in production (HTTPS)
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a user account with its write-once profile
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var existing userModel.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "An account with this email already exists",
			Status:  fiber.StatusConflict,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	newUser := userModel.User{
		Uuid:         uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		City:         req.City,
		Country:      req.Country,
		Role:         constants.RoleCustomer,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	token, err := utils.IssueAccessToken(newUser.Uuid, newUser.Email, newUser.Role)
	if err != nil {
		logger.Error("Failed to issue access token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Registered but failed to start a session. Please log in.",
			Status:  fiber.StatusInternalServerError,
		})
	}
	h.setSecureCookie(c, "access", token, 8*60*60) // 8 hours

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("User registered successfully. UUID: " + newUser.Uuid)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful",
		Status:  fiber.StatusCreated,
		Token:   token,
		Data:    newUser,
	})
}

// Login verifies the password and starts a session
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var account userModel.User
	if err := h.db.Where("email = ?", req.Email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid credentials",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Database error while fetching user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if !utils.VerifyPassword(account.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := utils.IssueAccessToken(account.Uuid, account.Email, account.Role)
	if err != nil {
		logger.Error("Failed to issue access token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
		})
	}
	h.setSecureCookie(c, "access", token, 8*60*60) // 8 hours

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("User logged in successfully. uuid: " + account.Uuid + " at " + currentTime)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    account,
	})
}

// AdminLogin authenticates the single shared admin credential configured in
// the environment. There is no admin row in the users table.
func (h *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req authTypes.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		logger.Error("Admin credentials are not configured", nil)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Admin login is not configured",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if req.Email != adminEmail || req.Password != adminPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := utils.IssueAccessToken(constants.RoleAdmin, adminEmail, constants.RoleAdmin)
	if err != nil {
		logger.Error("Failed to issue admin access token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
		})
	}
	h.setSecureCookie(c, "access", token, 8*60*60)

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success(fmt.Sprintf("Admin logged in successfully at %s", time.Now().Format("2006-01-02 03:04:05 PM")))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
	})
}

// LogOut ends the session by expiring the access cookie
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1) // Expire immediately

	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logout successful",
		Status:  fiber.StatusOK,
	})
}
