package middleware

import (
	"academia/config"
	"academia/database"
	"academia/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GenerateJWT generates an access token for the user
func GenerateJWT(userID uint, tipoUsuario, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId":      userID,
		"tipoUsuario": tipoUsuario,
		"email":       email,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Duration(config.AppConfig.AccessTokenHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// GenerateRefreshJWT generates a refresh token, signed with the refresh key.
// The jti claim keeps tokens minted in the same second distinct, the stored
// token column is unique.
func GenerateRefreshJWT(userID uint) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(config.AppConfig.RefreshTokenDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"userId": userID,
		"jti":    uuid.NewString(),
		"iat":    time.Now().Unix(),
		"exp":    expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.RefreshKey))
	return signed, expiresAt, err
}

// ParseRefreshJWT validates a refresh token and returns the user ID it carries
func ParseRefreshJWT(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.RefreshKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid refresh token payload")
	}

	return uint(claims["userId"].(float64)), nil
}

// JWTMiddleware is a middleware to check for a valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return Error(c, fiber.StatusUnauthorized, "Falta el encabezado de autorización.")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Error(c, fiber.StatusUnauthorized, "Formato de encabezado de autorización inválido.")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return Error(c, fiber.StatusUnauthorized, "Token inválido o expirado.")
	}

	// Tokens invalidated by logout stay blacklisted until their natural expiry
	var invalid models.InvalidToken
	if err := database.Database.Db.Where("token = ?", tokenString).First(&invalid).Error; err == nil {
		return Error(c, fiber.StatusUnauthorized, "Token inválido o expirado.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return Error(c, fiber.StatusUnauthorized, "Token inválido.")
	}

	userID := claims["userId"].(float64) // JWT numeric claims decode as float64
	c.Locals("userId", uint(userID))
	if tipo, ok := claims["tipoUsuario"].(string); ok {
		c.Locals("tipoUsuario", tipo)
	}
	if exp, ok := claims["exp"].(float64); ok {
		c.Locals("tokenExp", int64(exp))
	}
	c.Locals("accessToken", tokenString)

	return c.Next()
}

// Authorize returns a middleware that only lets the given roles through
func Authorize(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipo, ok := c.Locals("tipoUsuario").(string)
		if !ok {
			return Error(c, fiber.StatusUnauthorized, "No autorizado.")
		}
		for _, role := range roles {
			if tipo == role {
				return c.Next()
			}
		}
		return Error(c, fiber.StatusForbidden, "No tiene permiso para acceder a este recurso.")
	}
}
