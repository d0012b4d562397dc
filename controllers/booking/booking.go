package booking

import (
	"fmt"
	"os"

	"samaj-backend/logger"
	"samaj-backend/middleware"
	bookingModel "samaj-backend/models/booking"
	userModel "samaj-backend/models/user"
	"samaj-backend/services/mailer"
	"samaj-backend/services/workflow"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BookingController manages the venue-booking lifecycle from public
// submission through the admin approval and payment steps.
type BookingController struct {
	DB     *gorm.DB
	Mailer *mailer.Service
	Logger *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, m *mailer.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{DB: db, Mailer: m, Logger: asyncLogger}
}

func (h *BookingController) mailData(b *bookingModel.Booking) mailer.Data {
	return mailer.Data{
		Name:   b.Name,
		Date:   b.Date.Format("02 Jan 2006"),
		Reason: b.RejectionReason,
	}
}

// Submit accepts a new public booking request. The booking starts in
// Pending and the requester gets an acknowledgement email.
func (h *BookingController) Submit(c *fiber.Ctx) error {
	var req types.BookingSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking request", err)
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

	eventDate, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid event date",
			Status:  fiber.StatusBadRequest,
		})
	}

	docType := bookingModel.DocumentType(req.DocumentType)
	if req.DocumentType == "" {
		docType = utils.ClassifyDocument(req.EventDocument)
	}

	newBooking := bookingModel.Booking{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		EventType:          req.EventType,
		Date:               eventDate,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		GuestCount:         req.GuestCount,
		AdditionalServices: pq.StringArray(req.AdditionalServices),
		AdditionalNotes:    req.AdditionalNotes,
		EventDocument:      req.EventDocument,
		DocumentType:       docType,
		Status:             bookingModel.BookingStatusPending,
	}

	if err := h.DB.Create(&newBooking).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to submit booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Mailer.Send(newBooking.Email, "bookingRequest", h.mailData(&newBooking))
	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Booking #%d submitted by %s", newBooking.ID, newBooking.Email))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking submitted successfully",
		Status:  fiber.StatusCreated,
		Data:    newBooking,
	})
}

// GetAll lists every booking newest first, with an optional ?status= filter
func (h *BookingController) GetAll(c *fiber.Ctx) error {
	query := h.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !bookingModel.BookingStatus(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid status filter",
				Status:  fiber.StatusBadRequest,
			})
		}
		query = query.Where("status = ?", status)
	}

	var bookings []bookingModel.Booking
	if err := query.Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// GetByID returns one booking
func (h *BookingController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var found bookingModel.Booking
	if err := workflow.Load(h.DB, &found, uint(id)); err != nil {
		return c.Status(workflow.StatusCode(err)).JSON(types.ApiResponse{
			Message: "Booking not found",
			Status:  workflow.StatusCode(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking fetched successfully",
		Status:  fiber.StatusOK,
		Data:    found,
	})
}

// transition moves one booking through the workflow table and queues the
// matching notification. All status-changing admin endpoints funnel here.
func (h *BookingController) transition(c *fiber.Ctx, to bookingModel.BookingStatus, extra map[string]interface{}, template string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var current bookingModel.Booking
	if err := workflow.Load(h.DB, &current, uint(id)); err != nil {
		return c.Status(workflow.StatusCode(err)).JSON(types.ApiResponse{
			Message: "Booking not found",
			Status:  workflow.StatusCode(err),
		})
	}

	err = workflow.Apply(h.DB, &bookingModel.Booking{}, current.ID, bookingModel.Rules(),
		string(current.Status), string(to), extra)
	if err != nil {
		code := workflow.StatusCode(err)
		msg := fmt.Sprintf("Cannot move booking from %s to %s", current.Status, to)
		if code == fiber.StatusInternalServerError {
			logger.Error("Booking transition failed", err)
			msg = "Failed to update booking"
		}
		return c.Status(code).JSON(types.ApiResponse{Message: msg, Status: code})
	}

	current.Status = to
	if reason, ok := extra["rejection_reason"].(string); ok {
		current.RejectionReason = reason
	}
	if ps, ok := extra["payment_status"].(string); ok {
		current.PaymentStatus = ps
	}

	if template != "" {
		data := h.mailData(&current)
		if template == "paymentSuccess" {
			data.ReceiptURL = fmt.Sprintf("%s/receipts/%d", os.Getenv("FRONTEND_URL"), current.ID)
		}
		h.Mailer.Send(current.Email, template, data)
	}
	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Booking #%d moved to %s", current.ID, to))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: fmt.Sprintf("Booking %s", to),
		Status:  fiber.StatusOK,
		Data:    current,
	})
}

// Approve moves a pending booking to Approved
func (h *BookingController) Approve(c *fiber.Ctx) error {
	return h.transition(c, bookingModel.BookingStatusApproved, nil, "bookingApproved")
}

// Reject declines a non-terminal booking, recording the reason
func (h *BookingController) Reject(c *fiber.Ctx) error {
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
	return h.transition(c, bookingModel.BookingStatusRejected,
		map[string]interface{}{"rejection_reason": reason}, "bookingRejected")
}

// ConfirmPayment records the offline payment against an approved booking
// and moves it to Booked.
func (h *BookingController) ConfirmPayment(c *fiber.Ctx) error {
	return h.transition(c, bookingModel.BookingStatusBooked,
		map[string]interface{}{"payment_status": bookingModel.PaymentStatusCompleted}, "paymentSuccess")
}

// ConfirmBooking finalizes an approved booking without a payment record
func (h *BookingController) ConfirmBooking(c *fiber.Ctx) error {
	return h.transition(c, bookingModel.BookingStatusBooked, nil, "bookingConfirmed")
}

// Update applies an admin edit. Field edits go through as given; a status
// change must still be a legal transition from the stored status.
func (h *BookingController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req types.BookingUpdateRequest
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

	var current bookingModel.Booking
	if err := workflow.Load(h.DB, &current, uint(id)); err != nil {
		return c.Status(workflow.StatusCode(err)).JSON(types.ApiResponse{
			Message: "Booking not found",
			Status:  workflow.StatusCode(err),
		})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.Date != nil {
		eventDate, err := utils.ParseDate(*req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid event date",
				Status:  fiber.StatusBadRequest,
			})
		}
		updates["date"] = eventDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.GuestCount != nil {
		updates["guest_count"] = *req.GuestCount
	}
	if req.AdditionalServices != nil {
		updates["additional_services"] = pq.StringArray(req.AdditionalServices)
	}
	if req.AdditionalNotes != nil {
		updates["additional_notes"] = *req.AdditionalNotes
	}

	if req.Status != "" && req.Status != string(current.Status) {
		next := bookingModel.BookingStatus(req.Status)
		if !next.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid status",
				Status:  fiber.StatusBadRequest,
			})
		}
		err := workflow.Apply(h.DB, &bookingModel.Booking{}, current.ID, bookingModel.Rules(),
			string(current.Status), string(next), updates)
		if err != nil {
			code := workflow.StatusCode(err)
			msg := fmt.Sprintf("Cannot move booking from %s to %s", current.Status, next)
			if code == fiber.StatusInternalServerError {
				logger.Error("Booking update failed", err)
				msg = "Failed to update booking"
			}
			return c.Status(code).JSON(types.ApiResponse{Message: msg, Status: code})
		}
	} else if len(updates) > 0 {
		if err := h.DB.Model(&bookingModel.Booking{}).Where("id = ?", current.ID).Updates(updates).Error; err != nil {
			logger.Error("Booking update failed", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to update booking",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	var updated bookingModel.Booking
	if err := workflow.Load(h.DB, &updated, current.ID); err != nil {
		return c.Status(workflow.StatusCode(err)).JSON(types.ApiResponse{
			Message: "Booking not found",
			Status:  workflow.StatusCode(err),
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// Delete removes a booking row outright
func (h *BookingController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	res := h.DB.Delete(&bookingModel.Booking{}, id)
	if res.Error != nil {
		logger.Error("Failed to delete booking", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete booking",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Booking not found",
			Status:  fiber.StatusNotFound,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// UploadDocument stores a supporting document and returns its served URL
// together with the filename-derived document type.
func (h *BookingController) UploadDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "No document uploaded",
			Status:  fiber.StatusBadRequest,
		})
	}

	url, err := utils.SaveUpload(c, file)
	if err != nil {
		logger.Error("Failed to store uploaded document", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to upload document",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Document uploaded successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"url":          url,
			"documentType": utils.ClassifyDocument(file.Filename),
		},
	})
}

// GetUserBookings lists the authenticated user's bookings, matched by the
// account email, newest first.
func (h *BookingController) GetUserBookings(c *fiber.Ctx) error {
	account, ok := h.currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var bookings []bookingModel.Booking
	if err := h.DB.Where("email = ?", account.Email).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list user bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// Cancel lets the requester withdraw their own booking while it is still
// Pending or Approved.
func (h *BookingController) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	account, ok := h.currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var current bookingModel.Booking
	if err := workflow.Load(h.DB, &current, uint(id)); err != nil {
		return c.Status(workflow.StatusCode(err)).JSON(types.ApiResponse{
			Message: "Booking not found",
			Status:  workflow.StatusCode(err),
		})
	}

	if current.Email != account.Email {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "You can only cancel your own bookings",
			Status:  fiber.StatusForbidden,
		})
	}
	if !current.Status.IsCancellable() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Booking in %s status cannot be cancelled", current.Status),
			Status:  fiber.StatusBadRequest,
		})
	}

	err = workflow.Apply(h.DB, &bookingModel.Booking{}, current.ID, bookingModel.Rules(),
		string(current.Status), string(bookingModel.BookingStatusCancelled), nil)
	if err != nil {
		code := workflow.StatusCode(err)
		msg := "Booking can no longer be cancelled"
		if code == fiber.StatusInternalServerError {
			logger.Error("Booking cancel failed", err)
			msg = "Failed to cancel booking"
		}
		return c.Status(code).JSON(types.ApiResponse{Message: msg, Status: code})
	}

	current.Status = bookingModel.BookingStatusCancelled
	h.Mailer.Send(current.Email, "bookingCancelled", h.mailData(&current))
	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Booking #%d cancelled by %s", current.ID, account.Email))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking cancelled successfully",
		Status:  fiber.StatusOK,
		Data:    current,
	})
}

func (h *BookingController) currentUser(c *fiber.Ctx) (*userModel.User, bool) {
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
