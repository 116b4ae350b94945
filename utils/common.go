package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// LoginUser is the authenticated caller extracted from JWT claims.
type LoginUser struct {
	ID       string `json:"id"`
	UserCode string `json:"userCode"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// GetUser reads the authenticated user from the gin context.
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("unauthorized")
	}

	claims, ok := currentUser.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid user claims")
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id")
	}
	userCode, ok := claims["userCode"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user code")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user role")
	}
	name, _ := claims["name"].(string)

	return &LoginUser{
		ID:       id,
		UserCode: userCode,
		Name:     name,
		Role:     role,
	}, nil
}

// ParsePagination reads page/size query params with sane defaults.
func ParsePagination(c *gin.Context) (page, size int64) {
	p, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || p < 1 {
		p = 1
	}
	s, err := strconv.ParseInt(c.DefaultQuery("size", "10"), 10, 64)
	if err != nil || s < 1 {
		s = 10
	}
	if s > 100 {
		s = 100
	}
	return p, s
}

// ParseDateParam parses a YYYY-MM-DD query parameter as a UTC date.
func ParseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return &t, nil
}

// FormatDisplayDate renders a date for screen and export alike (DD/MM/YYYY).
// Both surfaces share this formatter so they can never diverge.
func FormatDisplayDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("02/01/2006")
}
