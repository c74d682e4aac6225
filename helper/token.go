package helper

import (
	"petwell_client/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetUserFromToken đọc claims từ token đã qua middleware
func GetUserFromToken(c *fiber.Ctx) model.TokenClaim {
	raw := c.Locals("user")
	token, ok := raw.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}
	}

	var claim model.TokenClaim
	if v, ok := claims["userId"].(float64); ok {
		claim.UserId = uint(v)
	}
	if v, ok := claims["username"].(string); ok {
		claim.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		claim.Role = v
	}
	return claim
}

// BearerToken trả về token thô để chuyển tiếp lên API PetWell
func BearerToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("rawToken").(string); ok {
		return v
	}
	return ""
}
