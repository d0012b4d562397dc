package samuhlagan

import (
	"encoding/json"
	"fmt"
	"mime/multipart"

	"samaj-backend/logger"
	"samaj-backend/middleware"
	slModel "samaj-backend/models/samuhlagan"
	userModel "samaj-backend/models/user"
	"samaj-backend/services/mailer"
	"samaj-backend/services/workflow"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SamuhLaganController manages group-wedding registrations: multipart
// submission with per-party photos and documents, and the admin
// approve/confirm/reject workflow.
type SamuhLaganController struct {
	DB     *gorm.DB
	Mailer *mailer.Service
	Logger *logger.AsyncLogger
}

func NewSamuhLaganController(db *gorm.DB, m *mailer.Service, asyncLogger *logger.AsyncLogger) *SamuhLaganController {
	return &SamuhLaganController{DB: db, Mailer: m, Logger: asyncLogger}
}

// notify queues one email per distinct recipient of the registration
func (h *SamuhLaganController) notify(reg *slModel.SamuhLagan, template string) {
	data := mailer.Data{
		Name:   reg.Bride.Data().Name + " & " + reg.Groom.Data().Name,
		Date:   reg.CeremonyDate.Format("02 Jan 2006"),
		Reason: reg.RejectionReason,
	}
	for _, addr := range reg.Recipients() {
		h.Mailer.Send(addr, template, data)
	}
}

// saveFiles stores one party's photo and documents from the multipart
// form, using a field prefix of "bride" or "groom".
func (h *SamuhLaganController) saveFiles(c *fiber.Ctx, form *multipart.Form, prefix string, party *slModel.Party) error {
	if files := form.File[prefix+"Photo"]; len(files) > 0 {
		url, err := utils.SaveUpload(c, files[0])
		if err != nil {
			return err
		}
		party.Photo = url
	}
	var docs []string
	for _, file := range form.File[prefix+"Documents"] {
		url, err := utils.SaveUpload(c, file)
		if err != nil {
			return err
		}
		docs = append(docs, url)
	}
	party.Documents = pq.StringArray(docs)
	return nil
}

func parseParty(req types.PartyRequest) (slModel.Party, error) {
	dob, err := utils.ParseDate(req.DateOfBirth)
	if err != nil {
		return slModel.Party{}, err
	}
	return slModel.Party{
		Name:          req.Name,
		FatherName:    req.FatherName,
		MotherName:    req.MotherName,
		DateOfBirth:   dob,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       req.Address,
	}, nil
}

// Submit registers a couple for the next ceremony. The request is a
// multipart form: "bride" and "groom" JSON fields plus bridePhoto,
// brideDocuments, groomPhoto and groomDocuments file parts.
func (h *SamuhLaganController) Submit(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var account userModel.User
	if err := h.DB.First(&account, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.SamuhLaganSubmitRequest
	form, formErr := c.MultipartForm()
	if formErr == nil && form != nil {
		req.CeremonyDate = c.FormValue("ceremonyDate")
		if raw := c.FormValue("bride"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Bride); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
					Message: "Invalid bride details",
					Status:  fiber.StatusBadRequest,
				})
			}
		}
		if raw := c.FormValue("groom"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Groom); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
					Message: "Invalid groom details",
					Status:  fiber.StatusBadRequest,
				})
			}
		}
	} else if err := c.BodyParser(&req); err != nil {
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

	ceremonyDate, err := utils.ParseDate(req.CeremonyDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid ceremony date",
			Status:  fiber.StatusBadRequest,
		})
	}

	bride, err := parseParty(req.Bride)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid bride date of birth",
			Status:  fiber.StatusBadRequest,
		})
	}
	groom, err := parseParty(req.Groom)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid groom date of birth",
			Status:  fiber.StatusBadRequest,
		})
	}

	if formErr == nil && form != nil {
		if err := h.saveFiles(c, form, "bride", &bride); err != nil {
			logger.Error("Failed to store bride files", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to upload files",
				Status:  fiber.StatusInternalServerError,
			})
		}
		if err := h.saveFiles(c, form, "groom", &groom); err != nil {
			logger.Error("Failed to store groom files", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to upload files",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	reg := slModel.SamuhLagan{
		UserID:       account.ID,
		User:         account,
		Bride:        datatypes.NewJSONType(bride),
		Groom:        datatypes.NewJSONType(groom),
		CeremonyDate: ceremonyDate,
		Status:       slModel.StatusPending,
	}

	if err := h.DB.Create(&reg).Error; err != nil {
		logger.Error("Failed to create samuh lagan registration", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to submit registration",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.notify(&reg, "samuhLaganThankYou")
	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Samuh Lagan #%d registered by %s", reg.ID, account.Email))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration submitted successfully",
		Status:  fiber.StatusCreated,
		Data:    reg,
	})
}

// GetAll lists every registration newest first, with an optional
// ?status= filter.
func (h *SamuhLaganController) GetAll(c *fiber.Ctx) error {
	query := h.DB.Preload("User").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !slModel.Status(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid status filter",
				Status:  fiber.StatusBadRequest,
			})
		}
		query = query.Where("status = ?", status)
	}

	var regs []slModel.SamuhLagan
	if err := query.Find(&regs).Error; err != nil {
		logger.Error("Failed to list samuh lagan registrations", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch registrations",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Registrations fetched successfully",
		Status:  fiber.StatusOK,
		Data:    regs,
	})
}

// GetMine lists the authenticated user's registrations
func (h *SamuhLaganController) GetMine(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var regs []slModel.SamuhLagan
	if err := h.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&regs).Error; err != nil {
		logger.Error("Failed to list user registrations", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch registrations",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Registrations fetched successfully",
		Status:  fiber.StatusOK,
		Data:    regs,
	})
}

// transition moves one registration through the workflow table and
// notifies every recipient.
func (h *SamuhLaganController) transition(c *fiber.Ctx, to slModel.Status, extra map[string]interface{}, template string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid registration id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var current slModel.SamuhLagan
	if err := workflow.Load(h.DB.Preload("User"), &current, uint(id)); err != nil {
		return c.Status(workflow.StatusCode(err)).JSON(types.ApiResponse{
			Message: "Registration not found",
			Status:  workflow.StatusCode(err),
		})
	}

	err = workflow.Apply(h.DB, &slModel.SamuhLagan{}, current.ID, slModel.Rules(),
		string(current.Status), string(to), extra)
	if err != nil {
		code := workflow.StatusCode(err)
		msg := fmt.Sprintf("Cannot move registration from %s to %s", current.Status, to)
		if code == fiber.StatusInternalServerError {
			logger.Error("Samuh lagan transition failed", err)
			msg = "Failed to update registration"
		}
		return c.Status(code).JSON(types.ApiResponse{Message: msg, Status: code})
	}

	current.Status = to
	if reason, ok := extra["rejection_reason"].(string); ok {
		current.RejectionReason = reason
	}
	if ps, ok := extra["payment_status"].(string); ok {
		current.PaymentStatus = slModel.PaymentStatus(ps)
	}

	if template != "" {
		h.notify(&current, template)
	}
	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Samuh Lagan #%d moved to %s", current.ID, to))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: fmt.Sprintf("Registration %s", to),
		Status:  fiber.StatusOK,
		Data:    current,
	})
}

// Approve moves a pending registration to approved
func (h *SamuhLaganController) Approve(c *fiber.Ctx) error {
	return h.transition(c, slModel.StatusApproved, nil, "samuhLaganApproval")
}

// Confirm finalizes an approved registration, recording the fee as paid
func (h *SamuhLaganController) Confirm(c *fiber.Ctx) error {
	return h.transition(c, slModel.StatusConfirmed,
		map[string]interface{}{"payment_status": string(slModel.PaymentPaid)}, "samuhLaganConfirmation")
}

// Reject declines a non-terminal registration, recording the reason
func (h *SamuhLaganController) Reject(c *fiber.Ctx) error {
	var req types.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	reason := req.RejectionReason
	if reason == "" {
		reason = "Not specified"
	}
	return h.transition(c, slModel.StatusRejected,
		map[string]interface{}{"rejection_reason": reason}, "samuhLaganRejection")
}

// Delete removes a registration row outright
func (h *SamuhLaganController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid registration id",
			Status:  fiber.StatusBadRequest,
		})
	}

	res := h.DB.Delete(&slModel.SamuhLagan{}, id)
	if res.Error != nil {
		logger.Error("Failed to delete registration", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete registration",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Registration not found",
			Status:  fiber.StatusNotFound,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Registration deleted successfully",
		Status:  fiber.StatusOK,
	})
}
