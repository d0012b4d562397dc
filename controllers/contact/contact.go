package contact

import (
	"os"

	"samaj-backend/logger"
	"samaj-backend/middleware"
	contactModel "samaj-backend/models/contact"
	"samaj-backend/services/mailer"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContactController handles the signed-in contact form: messages are
// stored and relayed by email to both the sender and the admin inbox.
type ContactController struct {
	DB     *gorm.DB
	Mailer *mailer.Service
	Logger *logger.AsyncLogger
}

func NewContactController(db *gorm.DB, m *mailer.Service, asyncLogger *logger.AsyncLogger) *ContactController {
	return &ContactController{DB: db, Mailer: m, Logger: asyncLogger}
}

// Submit stores one contact message and queues the two notifications
func (h *ContactController) Submit(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.ContactRequest
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

	msg := contactModel.ContactMessage{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.DB.Create(&msg).Error; err != nil {
		logger.Error("Failed to store contact message", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to send message",
			Status:  fiber.StatusInternalServerError,
		})
	}

	data := mailer.Data{Name: msg.Name, Email: msg.Email, Message: msg.Message}
	h.Mailer.Send(msg.Email, "contactUser", data)
	if admin := os.Getenv("ADMIN_EMAIL"); admin != "" {
		h.Mailer.Send(admin, "contactAdmin", data)
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success("Contact message received from " + msg.Email)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Message sent successfully",
		Status:  fiber.StatusCreated,
	})
}

// GetAll lists stored contact messages for the admin dashboard
func (h *ContactController) GetAll(c *fiber.Ctx) error {
	var messages []contactModel.ContactMessage
	if err := h.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		logger.Error("Failed to list contact messages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch messages",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Messages fetched successfully",
		Status:  fiber.StatusOK,
		Data:    messages,
	})
}
