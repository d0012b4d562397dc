package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	bookingModel "samaj-backend/models/booking"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadDir returns the configured upload directory, created on demand
func UploadDir() (string, error) {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	return dir, nil
}

// SaveUpload stores a multipart file under a random name and returns the
// absolute URL it is served at.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	dir, err := UploadDir()
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	return c.BaseURL() + "/uploads/" + name, nil
}

// hasToken reports whether token appears as a whole word between
// separators in name.
func hasToken(name, token string) bool {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, part := range parts {
		if part == token {
			return true
		}
	}
	return false
}

// ClassifyDocument infers the supporting-document type from the original
// filename, defaulting to Other. "pan" must stand alone as a token so
// words like "company" do not classify as PAN Card.
func ClassifyDocument(filename string) bookingModel.DocumentType {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "aadhar") || strings.Contains(name, "aadhaar"):
		return bookingModel.DocumentTypeAadhar
	case hasToken(name, "pan"):
		return bookingModel.DocumentTypePAN
	case strings.Contains(name, "passport"):
		return bookingModel.DocumentTypePassport
	case strings.Contains(name, "invitation") || strings.Contains(name, "announcement"):
		return bookingModel.DocumentTypeInvitation
	case strings.Contains(name, "letterhead") || strings.Contains(name, "organization"):
		return bookingModel.DocumentTypeLetterhead
	case strings.Contains(name, "birth"):
		return bookingModel.DocumentTypeBirthCert
	case strings.Contains(name, "marriage"):
		return bookingModel.DocumentTypeMarriage
	default:
		return bookingModel.DocumentTypeOther
	}
}
