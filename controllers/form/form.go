package form

import (
	"errors"
	"fmt"
	"time"

	"samaj-backend/constants"
	"samaj-backend/logger"
	formModel "samaj-backend/models/form"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FormController manages the per-workflow submission gates: the master
// switch, the acceptance window and the public visibility checks the
// frontend polls before rendering a form.
type FormController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewFormController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *FormController {
	return &FormController{DB: db, Logger: asyncLogger}
}

func gateStatus(f *formModel.Form, now time.Time) types.FormStatus {
	lastUpdated := f.LastUpdated
	return types.FormStatus{
		Active:            f.Active,
		StartTime:         f.StartTime,
		EndTime:           f.EndTime,
		EventDate:         f.EventDate,
		LastUpdated:       &lastUpdated,
		IsCurrentlyActive: f.IsCurrentlyActive(now),
	}
}

func (h *FormController) load(formType string) (*formModel.Form, error) {
	var gate formModel.Form
	err := h.DB.Where("form_type = ?", formType).First(&gate).Error
	if err != nil {
		return nil, err
	}
	return &gate, nil
}

// loadOrCreate returns the gate row, creating an inactive default when
// the row is missing.
func (h *FormController) loadOrCreate(formType string) (*formModel.Form, error) {
	gate, err := h.load(formType)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := formModel.Form{FormType: formType, Active: false}
		if err := h.DB.Create(&created).Error; err != nil {
			return nil, err
		}
		return &created, nil
	}
	return gate, err
}

// resolveFormName maps a dashboard form name or a raw form type onto the
// stored gate type.
func resolveFormName(name string) (string, bool) {
	if formType, ok := constants.FormNameToType[name]; ok {
		return formType, true
	}
	if constants.IsValidFormType(name) {
		return name, true
	}
	return "", false
}

// GetAllStatus reports every gate's state keyed by form type. Public.
func (h *FormController) GetAllStatus(c *fiber.Ctx) error {
	var gates []formModel.Form
	if err := h.DB.Find(&gates).Error; err != nil {
		logger.Error("Failed to list form gates", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch form status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	now := time.Now()
	out := fiber.Map{}
	for i := range gates {
		out[gates[i].FormType] = gateStatus(&gates[i], now)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Form status fetched successfully",
		Status:  fiber.StatusOK,
		Data:    out,
	})
}

// GetStatus reports one gate's state
func (h *FormController) GetStatus(c *fiber.Ctx) error {
	formType := c.Params("formType")
	if !constants.IsValidFormType(formType) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid form type",
			Status:  fiber.StatusBadRequest,
		})
	}

	gate, err := h.loadOrCreate(formType)
	if err != nil {
		logger.Error("Failed to load form gate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch form status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Form status fetched successfully",
		Status:  fiber.StatusOK,
		Data:    gateStatus(gate, time.Now()),
	})
}

// UpdateStatus is the admin gate edit: flip the switch, move the window
// or set the event date. Only fields present in the payload change.
func (h *FormController) UpdateStatus(c *fiber.Ctx) error {
	formType := c.Params("formType")
	if !constants.IsValidFormType(formType) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid form type",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req types.FormUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	gate, err := h.loadOrCreate(formType)
	if err != nil {
		logger.Error("Failed to load form gate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update form status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if req.Active != nil {
		gate.Active = *req.Active
	}
	for _, field := range []struct {
		raw  string
		dest **time.Time
		name string
	}{
		{req.StartTime, &gate.StartTime, "startTime"},
		{req.EndTime, &gate.EndTime, "endTime"},
		{req.EventDate, &gate.EventDate, "eventDate"},
	} {
		if field.raw == "" {
			continue
		}
		parsed, err := utils.ParseDate(field.raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: fmt.Sprintf("Invalid %s", field.name),
				Status:  fiber.StatusBadRequest,
			})
		}
		*field.dest = &parsed
	}

	if gate.StartTime != nil && gate.EndTime != nil && gate.EndTime.Before(*gate.StartTime) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "endTime must be after startTime",
			Status:  fiber.StatusBadRequest,
		})
	}

	gate.LastUpdated = time.Now()
	if err := h.DB.Save(gate).Error; err != nil {
		logger.Error("Failed to update form gate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update form status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Form gate %s updated (active=%t)", gate.FormType, gate.Active))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Form status updated successfully",
		Status:  fiber.StatusOK,
		Data:    gateStatus(gate, time.Now()),
	})
}

// SetTimer activates a gate with a submission window in one call. The
// form is addressed by its dashboard name rather than its type.
func (h *FormController) SetTimer(c *fiber.Ctx) error {
	var req types.FormTimerRequest
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

	formType, ok := constants.FormNameToType[req.FormName]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Unknown form name",
			Status:  fiber.StatusBadRequest,
		})
	}

	gate, err := h.loadOrCreate(formType)
	if err != nil {
		logger.Error("Failed to load form gate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to set form timer",
			Status:  fiber.StatusInternalServerError,
		})
	}

	gate.StartTime = nil
	gate.EndTime = nil
	if req.StartTime != "" {
		start, err := utils.ParseDate(req.StartTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid startTime",
				Status:  fiber.StatusBadRequest,
			})
		}
		gate.StartTime = &start
	}
	if req.EndTime != "" {
		end, err := utils.ParseDate(req.EndTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid endTime",
				Status:  fiber.StatusBadRequest,
			})
		}
		gate.EndTime = &end
	}
	if gate.StartTime != nil && gate.EndTime != nil && gate.EndTime.Before(*gate.StartTime) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "endTime must be after startTime",
			Status:  fiber.StatusBadRequest,
		})
	}

	gate.Active = true
	gate.LastUpdated = time.Now()
	if err := h.DB.Save(gate).Error; err != nil {
		logger.Error("Failed to set form timer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to set form timer",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success("Form timer set for " + gate.FormType)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Form timer set successfully",
		Status:  fiber.StatusOK,
		Data:    gateStatus(gate, time.Now()),
	})
}

// CheckVisibility answers the frontend's pre-render check for one gate,
// addressed by its dashboard form name. Public.
func (h *FormController) CheckVisibility(c *fiber.Ctx) error {
	formType, ok := resolveFormName(c.Params("formName"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Unknown form name",
			Status:  fiber.StatusBadRequest,
		})
	}

	gate, err := h.load(formType)
	if err != nil {
		// A missing gate row reads as closed, not as an error.
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "Form visibility fetched",
			Status:  fiber.StatusOK,
			Data:    fiber.Map{"visible": false},
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Form visibility fetched",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"visible": gate.IsCurrentlyActive(time.Now())},
	})
}

// CanAccess gates an authenticated user's entry to a form. Closed gates
// answer 403 so the frontend can route to the notice page.
func (h *FormController) CanAccess(c *fiber.Ctx) error {
	formType, ok := resolveFormName(c.Params("formName"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Unknown form name",
			Status:  fiber.StatusBadRequest,
		})
	}

	gate, err := h.load(formType)
	if err != nil || !gate.IsCurrentlyActive(time.Now()) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "This form is not accepting submissions right now",
			Status:  fiber.StatusForbidden,
			Data:    fiber.Map{"canAccess": false},
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Form is open",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"canAccess": true},
	})
}

// RequireOpen is route middleware that rejects submissions while the
// named gate is closed.
func (h *FormController) RequireOpen(formType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gate, err := h.load(formType)
		if err != nil || !gate.IsCurrentlyActive(time.Now()) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "This form is not accepting submissions right now",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}
