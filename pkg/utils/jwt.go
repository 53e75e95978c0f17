package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(ownerID string, account string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["ownerID"] = ownerID
	claims["account"] = account
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractTokenOwner returns the authenticated owner id and account name from
// the verified token stored on the request context by the JWT middleware.
func ExtractTokenOwner(c echo.Context) (string, string) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return "", ""
	}

	claims := user.Claims.(jwt.MapClaims)
	ownerID, _ := claims["ownerID"].(string)
	account, _ := claims["account"].(string)
	return ownerID, account
}
