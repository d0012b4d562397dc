package studentaward

import (
	"fmt"

	"samaj-backend/logger"
	awardModel "samaj-backend/models/studentaward"
	"samaj-backend/services/mailer"
	"samaj-backend/services/workflow"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentAwardController manages excellence-award applications
type StudentAwardController struct {
	DB     *gorm.DB
	Mailer *mailer.Service
	Logger *logger.AsyncLogger
}

func NewStudentAwardController(db *gorm.DB, m *mailer.Service, asyncLogger *logger.AsyncLogger) *StudentAwardController {
	return &StudentAwardController{DB: db, Mailer: m, Logger: asyncLogger}
}

func (h *StudentAwardController) mailData(a *awardModel.StudentAward) mailer.Data {
	return mailer.Data{Name: a.Name, Reason: a.RejectionReason}
}

// Register accepts a new award application. The request is a multipart
// form carrying the applicant fields plus a "marksheet" file part;
// a plain JSON body with a pre-uploaded marksheet URL also works.
func (h *StudentAwardController) Register(c *fiber.Ctx) error {
	var req types.StudentAwardRegisterRequest
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

	pct, pctErr := req.Percentage()
	if pctErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: pctErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	rank := awardModel.Rank(req.Rank)
	if req.Rank == "" {
		rank = awardModel.RankNone
	}
	if !rank.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid rank",
			Status:  fiber.StatusBadRequest,
		})
	}

	marksheet := c.FormValue("marksheet")
	if file, err := c.FormFile("marksheet"); err == nil {
		url, err := utils.SaveUpload(c, file)
		if err != nil {
			logger.Error("Failed to store marksheet", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to upload marksheet",
				Status:  fiber.StatusInternalServerError,
			})
		}
		marksheet = url
	}
	if marksheet == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "marksheet is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	application := awardModel.StudentAward{
		Name:            req.Name,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Address:         req.Address,
		SchoolName:      req.SchoolName,
		Standard:        req.Standard,
		BoardName:       req.BoardName,
		ExamYear:        req.ExamYear,
		TotalPercentage: pct,
		Rank:            rank,
		Marksheet:       marksheet,
		Status:          awardModel.StatusPending,
	}

	if err := h.DB.Create(&application).Error; err != nil {
		logger.Error("Failed to create award application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to submit application",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Mailer.Send(application.Email, "studentAwardReceived", h.mailData(&application))
	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Award application #%d submitted by %s", application.ID, application.Email))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Application submitted successfully",
		Status:  fiber.StatusCreated,
		Data:    application,
	})
}

// GetAll lists every application newest first, with an optional
// ?status= filter.
func (h *StudentAwardController) GetAll(c *fiber.Ctx) error {
	query := h.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !awardModel.Status(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid status filter",
				Status:  fiber.StatusBadRequest,
			})
		}
		query = query.Where("status = ?", status)
	}

	var applications []awardModel.StudentAward
	if err := query.Find(&applications).Error; err != nil {
		logger.Error("Failed to list award applications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch applications",
			Status:  fiber.StatusInternalServerError,
		})
	}

	// Each entry carries its computed eligibility for the dashboard.
	out := make([]fiber.Map, 0, len(applications))
	for i := range applications {
		out = append(out, fiber.Map{
			"application": applications[i],
			"eligible":    applications[i].IsEligible(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Applications fetched successfully",
		Status:  fiber.StatusOK,
		Data:    out,
	})
}

func (h *StudentAwardController) transition(c *fiber.Ctx, to awardModel.Status, extra map[string]interface{}, template string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid application id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var current awardModel.StudentAward
	if err := workflow.Load(h.DB, &current, uint(id)); err != nil {
		return c.Status(workflow.StatusCode(err)).JSON(types.ApiResponse{
			Message: "Application not found",
			Status:  workflow.StatusCode(err),
		})
	}

	err = workflow.Apply(h.DB, &awardModel.StudentAward{}, current.ID, awardModel.Rules(),
		string(current.Status), string(to), extra)
	if err != nil {
		code := workflow.StatusCode(err)
		msg := fmt.Sprintf("Cannot move application from %s to %s", current.Status, to)
		if code == fiber.StatusInternalServerError {
			logger.Error("Award transition failed", err)
			msg = "Failed to update application"
		}
		return c.Status(code).JSON(types.ApiResponse{Message: msg, Status: code})
	}

	current.Status = to
	if reason, ok := extra["rejection_reason"].(string); ok {
		current.RejectionReason = reason
	}

	if template != "" {
		h.Mailer.Send(current.Email, template, h.mailData(&current))
	}
	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Award application #%d moved to %s", current.ID, to))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: fmt.Sprintf("Application %s", to),
		Status:  fiber.StatusOK,
		Data:    current,
	})
}

// Approve moves a pending application to approved
func (h *StudentAwardController) Approve(c *fiber.Ctx) error {
	return h.transition(c, awardModel.StatusApproved, nil, "studentAwardApproved")
}

// Reject declines a pending application, recording the reason
func (h *StudentAwardController) Reject(c *fiber.Ctx) error {
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
	return h.transition(c, awardModel.StatusRejected,
		map[string]interface{}{"rejection_reason": reason}, "studentAwardRejected")
}

// Delete removes an application row outright
func (h *StudentAwardController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid application id",
			Status:  fiber.StatusBadRequest,
		})
	}

	res := h.DB.Delete(&awardModel.StudentAward{}, id)
	if res.Error != nil {
		logger.Error("Failed to delete application", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete application",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Application not found",
			Status:  fiber.StatusNotFound,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Application deleted successfully",
		Status:  fiber.StatusOK,
	})
}
