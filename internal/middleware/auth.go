package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextStaffID   = "staff_id"
	ContextStaffRole = "staff_role"
)

func IssueToken(secret string, staff *models.Staff, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(staff.ID),
		"role": string(staff.Role),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func parseToken(authHeader, secret string) (jwt.MapClaims, error) {
	tokenStr := strings.TrimSpace(authHeader)
	if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
		tokenStr = strings.TrimSpace(tokenStr[7:])
	}
	if tokenStr == "" {
		return nil, errors.New("missing token")
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// JWTAuth guards the admin API group. On success the staff id and role are
// stored on the request context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseToken(c.Request().Header.Get("Authorization"), secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			if sub, ok := claims["sub"].(float64); ok {
				c.Set(ContextStaffID, uint(sub))
			}
			if role, ok := claims["role"].(string); ok {
				c.Set(ContextStaffRole, role)
			}
			return next(c)
		}
	}
}

// StaffID returns the authenticated staff id from the context, when present.
func StaffID(c echo.Context) *uint {
	if id, ok := c.Get(ContextStaffID).(uint); ok {
		return &id
	}
	return nil
}
