package content

import (
	"errors"
	"strconv"

	"samaj-backend/logger"
	contentModel "samaj-backend/models/content"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HomeContentController manages the singleton CMS document behind the
// marketing home page. Reads are public, edits are admin-only.
type HomeContentController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewHomeContentController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *HomeContentController {
	return &HomeContentController{DB: db, Logger: asyncLogger}
}

// load returns the singleton document, creating an empty one on first use
func (h *HomeContentController) load() (*contentModel.HomeContent, error) {
	var doc contentModel.HomeContent
	err := h.DB.First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc = contentModel.HomeContent{}
		if err := h.DB.Create(&doc).Error; err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Get returns the full home-page document. Public.
func (h *HomeContentController) Get(c *fiber.Ctx) error {
	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Content fetched successfully",
		Status:  fiber.StatusOK,
		Data:    doc,
	})
}

// Update overwrites the whole document from an admin payload
func (h *HomeContentController) Update(c *fiber.Ctx) error {
	var payload contentModel.HomeContent
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	payload.ID = doc.ID
	payload.CreatedAt = doc.CreatedAt
	return h.save(c, &payload, "full document")
}

func (h *HomeContentController) save(c *fiber.Ctx, doc *contentModel.HomeContent, what string) error {
	if err := h.DB.Save(doc).Error; err != nil {
		logger.Error("Failed to save home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success("Home content updated: " + what)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Content updated successfully",
		Status:  fiber.StatusOK,
		Data:    doc,
	})
}

// UpdateIntroduction replaces the introduction section
func (h *HomeContentController) UpdateIntroduction(c *fiber.Ctx) error {
	var section contentModel.IntroSection
	if err := c.BodyParser(&section); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	doc.Introduction = datatypes.NewJSONType(section)
	return h.save(c, doc, "introduction")
}

// UpdateAbout replaces the about section. An optional "image" file part
// replaces the section image.
func (h *HomeContentController) UpdateAbout(c *fiber.Ctx) error {
	var section contentModel.AboutSection
	if err := c.BodyParser(&section); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUpload(c, file)
		if err != nil {
			logger.Error("Failed to store about image", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to upload image",
				Status:  fiber.StatusInternalServerError,
			})
		}
		section.Image = url
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	doc.About = datatypes.NewJSONType(section)
	return h.save(c, doc, "about")
}

// UpdateLeadership replaces the leadership section
func (h *HomeContentController) UpdateLeadership(c *fiber.Ctx) error {
	var section contentModel.LeadershipSection
	if err := c.BodyParser(&section); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	doc.Leadership = datatypes.NewJSONType(section)
	return h.save(c, doc, "leadership")
}

// DeleteLeadershipMember removes one member from the leadership section
func (h *HomeContentController) DeleteLeadershipMember(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil || memberID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid member id",
			Status:  fiber.StatusBadRequest,
		})
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	section := doc.Leadership.Data()
	kept := section.Members[:0]
	found := false
	for _, member := range section.Members {
		if member.ID == uint(memberID) {
			found = true
			continue
		}
		kept = append(kept, member)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Member not found",
			Status:  fiber.StatusNotFound,
		})
	}
	section.Members = kept
	doc.Leadership = datatypes.NewJSONType(section)

	return h.save(c, doc, "leadership member deleted")
}

// AddHeroSlide appends a slide to the hero rotation. The request is a
// multipart form with title/description fields and an "image" part.
func (h *HomeContentController) AddHeroSlide(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "title is required",
			Status:  fiber.StatusBadRequest,
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
		logger.Error("Failed to store hero slide image", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to upload image",
			Status:  fiber.StatusInternalServerError,
		})
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var maxID uint
	for _, slide := range doc.HeroSlider {
		if slide.ID > maxID {
			maxID = slide.ID
		}
	}
	doc.HeroSlider = append(doc.HeroSlider, contentModel.HeroSlide{
		ID:          maxID + 1,
		Title:       title,
		Description: c.FormValue("description"),
		Image:       url,
		IsActive:    true,
		Order:       len(doc.HeroSlider) + 1,
	})

	return h.save(c, doc, "hero slide added")
}

// UpdateHeroSlide edits one slide in place, addressed by its id
func (h *HomeContentController) UpdateHeroSlide(c *fiber.Ctx) error {
	slideID, err := strconv.Atoi(c.Params("id"))
	if err != nil || slideID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid slide id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var patch contentModel.HeroSlide
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	found := false
	for i := range doc.HeroSlider {
		if doc.HeroSlider[i].ID != uint(slideID) {
			continue
		}
		if patch.Title != "" {
			doc.HeroSlider[i].Title = patch.Title
		}
		if patch.Description != "" {
			doc.HeroSlider[i].Description = patch.Description
		}
		if patch.Image != "" {
			doc.HeroSlider[i].Image = patch.Image
		}
		if patch.Order != 0 {
			doc.HeroSlider[i].Order = patch.Order
		}
		doc.HeroSlider[i].IsActive = patch.IsActive
		found = true
		break
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Slide not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return h.save(c, doc, "hero slide updated")
}

// DeleteHeroSlide removes one slide from the rotation
func (h *HomeContentController) DeleteHeroSlide(c *fiber.Ctx) error {
	slideID, err := strconv.Atoi(c.Params("id"))
	if err != nil || slideID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid slide id",
			Status:  fiber.StatusBadRequest,
		})
	}

	doc, err := h.load()
	if err != nil {
		logger.Error("Failed to load home content", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update content",
			Status:  fiber.StatusInternalServerError,
		})
	}

	kept := doc.HeroSlider[:0]
	found := false
	for _, slide := range doc.HeroSlider {
		if slide.ID == uint(slideID) {
			found = true
			continue
		}
		kept = append(kept, slide)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Slide not found",
			Status:  fiber.StatusNotFound,
		})
	}
	doc.HeroSlider = kept

	return h.save(c, doc, "hero slide deleted")
}
