package user

import (
	"fmt"
	"time"

	"samaj-backend/constants"
	"samaj-backend/logger"
	"samaj-backend/middleware"
	userModel "samaj-backend/models/user"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserController serves self-service profile management and the admin
// user-management endpoints.
type UserController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewUserController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{DB: db, Logger: asyncLogger}
}

func (h *UserController) current(c *fiber.Ctx) (*userModel.User, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		return nil, false
	}
	var account userModel.User
	if err := h.DB.First(&account, id).Error; err != nil {
		return nil, false
	}
	return &account, true
}

// GetProfile returns the authenticated user's account
func (h *UserController) GetProfile(c *fiber.Ctx) error {
	account, ok := h.current(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile fetched successfully",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}

// UpdateProfile edits the authenticated user's own profile fields.
// Empty payload fields leave the stored values untouched.
func (h *UserController) UpdateProfile(c *fiber.Ctx) error {
	account, ok := h.current(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if req.Username != "" && req.Username != account.Username {
		var clash userModel.User
		if err := h.DB.Where("username = ? AND id <> ?", req.Username, account.ID).
			First(&clash).Error; err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Username already taken",
				Status:  fiber.StatusBadRequest,
			})
		}
		account.Username = req.Username
	}
	if req.Phone != "" {
		account.Phone = req.Phone
	}
	if req.Company != "" {
		account.Company = req.Company
	}
	if req.Address != "" {
		account.Address = req.Address
	}

	if err := h.DB.Save(account).Error; err != nil {
		logger.Error("Failed to update profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile updated successfully",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}

// UpdatePassword changes the authenticated user's credential after
// checking the current one.
func (h *UserController) UpdatePassword(c *fiber.Ctx) error {
	account, ok := h.current(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.UpdatePasswordRequest
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

	if !account.ComparePassword(req.CurrentPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Current password is incorrect",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := account.SetPassword(req.NewPassword); err != nil {
		logger.Error("Failed to hash new password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update password",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if err := h.DB.Save(account).Error; err != nil {
		logger.Error("Failed to store new password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success("Password updated for " + account.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password updated successfully",
		Status:  fiber.StatusOK,
	})
}

// UpdateNotifications stores the per-channel opt-ins
func (h *UserController) UpdateNotifications(c *fiber.Ctx) error {
	account, ok := h.current(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.UpdateNotificationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	account.Notifications = datatypes.NewJSONType(userModel.NotificationPrefs{
		Email: req.Email,
		SMS:   req.SMS,
	})
	if err := h.DB.Save(account).Error; err != nil {
		logger.Error("Failed to update notifications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update notifications",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Notification preferences updated",
		Status:  fiber.StatusOK,
		Data:    account.Notifications,
	})
}

// UploadProfileImage replaces the authenticated user's profile picture
func (h *UserController) UploadProfileImage(c *fiber.Ctx) error {
	account, ok := h.current(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "No image uploaded",
			Status:  fiber.StatusBadRequest,
		})
	}

	url, err := utils.SaveUpload(c, file)
	if err != nil {
		logger.Error("Failed to store profile image", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to upload image",
			Status:  fiber.StatusInternalServerError,
		})
	}

	now := time.Now()
	img := account.ProfileImage.Data()
	img.URL = url
	img.LastUpdated = &now
	account.ProfileImage = datatypes.NewJSONType(img)

	if err := h.DB.Save(account).Error; err != nil {
		logger.Error("Failed to save profile image", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to upload image",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile image updated",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"url": account.ProfileImageURL()},
	})
}

// GetAll lists every account for the admin dashboard
func (h *UserController) GetAll(c *fiber.Ctx) error {
	var accounts []userModel.User
	if err := h.DB.Order("created_at DESC").Find(&accounts).Error; err != nil {
		logger.Error("Failed to list users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch users",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Users fetched successfully",
		Status:  fiber.StatusOK,
		Data:    accounts,
	})
}

// AdminUpdate edits another account: username, email, role and the
// verified flag. Role values outside the known set are rejected.
func (h *UserController) AdminUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid user id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req types.AdminUpdateUserRequest
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
	if err := h.DB.First(&account, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	account.Username = req.Username
	account.Email = req.Email
	if req.Role != "" {
		if !constants.IsValidRole(req.Role) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid role",
				Status:  fiber.StatusBadRequest,
			})
		}
		account.Role = req.Role
	}
	if req.IsVerified != nil {
		account.IsVerified = *req.IsVerified
	}

	if err := h.DB.Save(&account).Error; err != nil {
		logger.Error("Failed to update user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("User #%d updated by admin", account.ID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User updated successfully",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}

// AdminDelete soft-deletes an account. Admins cannot delete themselves.
func (h *UserController) AdminDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid user id",
			Status:  fiber.StatusBadRequest,
		})
	}

	if selfID, ok := middleware.UserID(c); ok && selfID == uint(id) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "You cannot delete your own account",
			Status:  fiber.StatusBadRequest,
		})
	}

	res := h.DB.Delete(&userModel.User{}, id)
	if res.Error != nil {
		logger.Error("Failed to delete user", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete user",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User deleted successfully",
		Status:  fiber.StatusOK,
	})
}
