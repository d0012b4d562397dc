package auth

import (
	"errors"
	"fmt"
	"time"

	"samaj-backend/constants"
	"samaj-backend/logger"
	userModel "samaj-backend/models/user"
	otpService "samaj-backend/services/otp"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	accessTokenTTL = time.Hour
	resetTokenTTL  = time.Hour
)

// AuthController handles registration, OTP verification, login and the
// password-reset flow
type AuthController struct {
	DB     *gorm.DB
	OTP    *otpService.Service
	Logger *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, otp *otpService.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{DB: db, OTP: otp, Logger: asyncLogger}
}

// Register creates an unverified account and emails a verification OTP
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	var existing userModel.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "User already exists",
			Status:  fiber.StatusBadRequest,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	newUser := userModel.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     constants.RoleUser,
	}
	if err := newUser.SetPassword(req.Password); err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.DB.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.OTP.Issue(&newUser, otpService.PurposeRegistration); err != nil {
		logger.Error("Failed to issue registration OTP", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success("User registered: " + newUser.Email)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful. Please verify your email with OTP",
		Status:  fiber.StatusCreated,
		Data:    fiber.Map{"email": newUser.Email},
	})
}

// VerifyOTP confirms the emailed registration code and marks the account
// verified. Mismatch and expiry answer identically.
func (h *AuthController) VerifyOTP(c *fiber.Ctx) error {
	var req types.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	var account userModel.User
	if err := h.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid or expired OTP",
			Status:  fiber.StatusBadRequest,
		})
	}

	if !h.OTP.Verify(&account, req.OTP) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid or expired OTP",
			Status:  fiber.StatusBadRequest,
		})
	}

	account.IsVerified = true
	if err := h.DB.Save(&account).Error; err != nil {
		logger.Error("Failed to mark user verified", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to verify OTP",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Email verified: " + account.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Email verified successfully",
		Status:  fiber.StatusOK,
	})
}

// Login authenticates a verified account and issues an access token
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	var account userModel.User
	if err := h.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusBadRequest,
		})
	}

	if !account.IsVerified {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Please verify your email to login",
			Status:  fiber.StatusBadRequest,
		})
	}

	if !account.ComparePassword(req.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusBadRequest,
		})
	}

	token, err := utils.GenerateToken(account.ID, account.Role, accessTokenTTL)
	if err != nil {
		logger.Error("Failed to issue access token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("User logged in: %s (%s)", account.Email, account.Role))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    fiber.Map{"role": account.Role},
	})
}

// ForgotPassword emails a password-reset OTP to a known account
func (h *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req types.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	var account userModel.User
	if err := h.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	if err := h.OTP.Issue(&account, otpService.PurposeReset); err != nil {
		logger.Error("Failed to issue reset OTP", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to send OTP",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "OTP sent successfully",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"email": account.Email},
	})
}

// ResendOTP re-issues the pending code for either flow
func (h *AuthController) ResendOTP(c *fiber.Ctx) error {
	var req types.ResendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	var account userModel.User
	if err := h.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	purpose := otpService.PurposeRegistration
	if req.Type == "reset" {
		purpose = otpService.PurposeReset
	}
	if err := h.OTP.Issue(&account, purpose); err != nil {
		logger.Error("Failed to resend OTP", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to resend OTP",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "OTP resent successfully",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"email": account.Email},
	})
}

// VerifyResetOTP checks the reset code and hands back a short-lived
// reset token standing in for re-authentication.
func (h *AuthController) VerifyResetOTP(c *fiber.Ctx) error {
	var req types.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	var account userModel.User
	if err := h.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid or expired OTP",
			Status:  fiber.StatusBadRequest,
		})
	}

	if !h.OTP.Verify(&account, req.OTP) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid or expired OTP",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := h.DB.Save(&account).Error; err != nil {
		logger.Error("Failed to clear reset OTP", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to verify OTP",
			Status:  fiber.StatusInternalServerError,
		})
	}

	resetToken, err := utils.GenerateToken(account.ID, account.Role, resetTokenTTL)
	if err != nil {
		logger.Error("Failed to issue reset token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "OTP verified successfully",
		Status:  fiber.StatusOK,
		Token:   resetToken,
	})
}

// ResetPassword changes the credential under a valid reset token
func (h *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req types.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	claims, err := utils.ParseToken(req.Token)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid reset token",
			Status:  fiber.StatusBadRequest,
		})
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid reset token",
			Status:  fiber.StatusBadRequest,
		})
	}

	var account userModel.User
	if err := h.DB.First(&account, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid reset token",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := account.SetPassword(req.Password); err != nil {
		logger.Error("Failed to hash new password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to reset password",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if err := h.DB.Save(&account).Error; err != nil {
		logger.Error("Failed to store new password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to reset password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Password reset for " + account.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password reset successful",
		Status:  fiber.StatusOK,
	})
}
