package content

import (
	"samaj-backend/logger"
	contentModel "samaj-backend/models/content"
	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GalleryController manages the public media gallery
type GalleryController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewGalleryController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *GalleryController {
	return &GalleryController{DB: db, Logger: asyncLogger}
}

// GetAll lists gallery items newest first, with optional ?category= and
// ?type= filters. Public.
func (h *GalleryController) GetAll(c *fiber.Ctx) error {
	query := h.DB.Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		if !contentModel.GalleryCategory(category).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid category",
				Status:  fiber.StatusBadRequest,
			})
		}
		query = query.Where("category = ?", category)
	}
	if mediaType := c.Query("type"); mediaType != "" {
		if !contentModel.MediaType(mediaType).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid media type",
				Status:  fiber.StatusBadRequest,
			})
		}
		query = query.Where("type = ?", mediaType)
	}

	var items []contentModel.GalleryItem
	if err := query.Find(&items).Error; err != nil {
		logger.Error("Failed to list gallery items", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch gallery",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Gallery fetched successfully",
		Status:  fiber.StatusOK,
		Data:    items,
	})
}

// Create adds a gallery item. The request is a multipart form with
// title/description/category/type fields and "media" plus optional
// "thumbnail" file parts; videos may instead pass an external URL field.
func (h *GalleryController) Create(c *fiber.Ctx) error {
	item := contentModel.GalleryItem{
		Type:        contentModel.MediaType(c.FormValue("type", string(contentModel.MediaTypePhoto))),
		URL:         c.FormValue("url"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    contentModel.GalleryCategory(c.FormValue("category")),
	}

	if item.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "title is required",
			Status:  fiber.StatusBadRequest,
		})
	}
	if !item.Type.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid media type",
			Status:  fiber.StatusBadRequest,
		})
	}
	if !item.Category.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid category",
			Status:  fiber.StatusBadRequest,
		})
	}

	if file, err := c.FormFile("media"); err == nil {
		url, err := utils.SaveUpload(c, file)
		if err != nil {
			logger.Error("Failed to store gallery media", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to upload media",
				Status:  fiber.StatusInternalServerError,
			})
		}
		item.URL = url
	}
	if item.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "media file or url is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	if file, err := c.FormFile("thumbnail"); err == nil {
		url, err := utils.SaveUpload(c, file)
		if err != nil {
			logger.Error("Failed to store gallery thumbnail", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to upload thumbnail",
				Status:  fiber.StatusInternalServerError,
			})
		}
		item.Thumbnail = url
	}

	if err := h.DB.Create(&item).Error; err != nil {
		logger.Error("Failed to create gallery item", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create gallery item",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Gallery item created successfully",
		Status:  fiber.StatusCreated,
		Data:    item,
	})
}

// Update edits one gallery item's descriptive fields
func (h *GalleryController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid gallery item id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var item contentModel.GalleryItem
	if err := h.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Gallery item not found",
			Status:  fiber.StatusNotFound,
		})
	}

	var patch struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if patch.Title != "" {
		item.Title = patch.Title
	}
	if patch.Description != "" {
		item.Description = patch.Description
	}
	if patch.Category != "" {
		category := contentModel.GalleryCategory(patch.Category)
		if !category.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Invalid category",
				Status:  fiber.StatusBadRequest,
			})
		}
		item.Category = category
	}

	if err := h.DB.Save(&item).Error; err != nil {
		logger.Error("Failed to update gallery item", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update gallery item",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Gallery item updated successfully",
		Status:  fiber.StatusOK,
		Data:    item,
	})
}

// Delete removes one gallery item
func (h *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid gallery item id",
			Status:  fiber.StatusBadRequest,
		})
	}

	res := h.DB.Delete(&contentModel.GalleryItem{}, id)
	if res.Error != nil {
		logger.Error("Failed to delete gallery item", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete gallery item",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Gallery item not found",
			Status:  fiber.StatusNotFound,
		})
	}

	h.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Gallery item deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// Like increments an item's like counter atomically
func (h *GalleryController) Like(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid gallery item id",
			Status:  fiber.StatusBadRequest,
		})
	}

	res := h.DB.Model(&contentModel.GalleryItem{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		logger.Error("Failed to like gallery item", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to like gallery item",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Gallery item not found",
			Status:  fiber.StatusNotFound,
		})
	}

	var item contentModel.GalleryItem
	if err := h.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Gallery item not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Gallery item liked",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"likes": item.Likes},
	})
}
