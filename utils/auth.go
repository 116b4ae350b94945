package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/dhruvika404/jewel-ai-sub000/config"
	"github.com/dhruvika404/jewel-ai-sub000/models"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// HashPassword hashes a password with SHA-256.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword compares a candidate password against the stored hash.
func VerifyPassword(password string, hashedPassword string) bool {
	return HashPassword(password) == hashedPassword
}

// GenerateToken signs a JWT for a sales person.
func GenerateToken(user models.SalesPerson) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID.Hex(),
		"userCode": user.UserCode,
		"name":     user.Name,
		"role":     string(user.Role),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates a JWT and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HasPermission checks whether a role may perform an action on a resource.
// Admins may do anything; sales executives are read/write on records and
// read-only on accounts.
func HasPermission(role models.UserRole, resource string, action string) bool {
	if role == models.UserRoleAdmin {
		return true
	}

	permissions := map[models.UserRole]map[string][]string{
		models.UserRoleSales: {
			"clients":      {"read", "create", "update"},
			"records":      {"read", "create", "update", "followup"},
			"remarks":      {"read", "create"},
			"salesPersons": {"read"},
			"reports":      {"read"},
		},
	}

	if resourceActions, exists := permissions[role]; exists {
		if actions, hasResource := resourceActions[resource]; hasResource {
			for _, a := range actions {
				if a == action {
					return true
				}
			}
		}
	}

	return false
}
