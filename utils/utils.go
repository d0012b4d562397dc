package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"samaj-backend/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/now"
)

// GenerateToken issues an HS256 bearer token carrying the account id and
// role claims, expiring after ttl.
func GenerateToken(userID uint, role string, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies an HS256 token and returns its claims
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ParseDate accepts the several date layouts clients send (RFC3339,
// "2006-01-02", "2006-01-02 15:04", ...) via the lenient parser.
func ParseDate(s string) (time.Time, error) {
	return now.Parse(strings.TrimSpace(s))
}

// sensitive request-body fields blanked before logging
var redactedFields = []string{"password", "currentPassword", "newPassword", "otp", "token"}

// CreateSanitizedLogEntry builds a request log entry with credential
// fields redacted from the body.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	body := string(c.Body())

	var parsed map[string]interface{}
	if err := json.Unmarshal(c.Body(), &parsed); err == nil {
		for _, field := range redactedFields {
			if _, ok := parsed[field]; ok {
				parsed[field] = "[REDACTED]"
			}
		}
		if b, err := json.Marshal(parsed); err == nil {
			body = string(b)
		}
	}

	headers := make(map[string]string)
	c.Request().Header.VisitAll(func(key, value []byte) {
		k := string(key)
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			headers[k] = "[REDACTED]"
			return
		}
		headers[k] = string(value)
	})
	headerJSON, _ := json.Marshal(headers)

	return types.LogEntry{
		Method:         c.Method(),
		URL:            c.OriginalURL(),
		ClientIP:       c.IP(),
		RequestBody:    body,
		RequestHeaders: string(headerJSON),
		StatusCode:     c.Response().StatusCode(),
		CreatedAt:      time.Now(),
	}
}
