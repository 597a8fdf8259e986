package admin

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/elearnhq/lessons-ms-go/internal/model"
)

const tokenLifetime = 7 * 24 * time.Hour

// issueToken signs a short admin identity token with the shared HMAC secret.
func issueToken(secret []byte, a *model.Admin) (string, error) {
	claims := jwt.MapClaims{
		"sub":   a.ID.String(),
		"email": a.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}
	return signed, nil
}
