package jwt

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"playtube/config"
	"playtube/pkg"
)

type PlaytubeClaim struct {
	jwt.RegisteredClaims
	UserId string `json:"user_id"`
}

func getToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	token, _ := ctx.Cookie("accessToken")
	return token
}

// AuthorizationMiddleware sets "user_id" on the context from a valid
// access token; handlers past it trust that identity.
func AuthorizationMiddleware(ctx *gin.Context) {
	token := getToken(ctx)
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, pkg.NewErrResponse(pkg.NewError(pkg.ErrAuthException, nil)))
		ctx.Abort()
		return
	}

	claim, err := ParsingToken(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, pkg.NewErrResponse(pkg.NewError(pkg.ErrAuthException, err)))
		ctx.Abort()
		return
	}

	ctx.Set("user_id", claim.UserId)
	ctx.Next()
}

func NewAccessToken(userId string) (string, error) {
	return newToken(userId, config.C.AccessTokenTtl)
}

func NewRefreshToken(userId string) (string, error) {
	return newToken(userId, config.C.RefreshTokenTtl)
}

func newToken(userId string, ttl time.Duration) (string, error) {
	claim := PlaytubeClaim{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "playtube",
			IssuedAt:  &jwt.NumericDate{Time: time.Now()},
			ExpiresAt: &jwt.NumericDate{Time: time.Now().Add(ttl)},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)
	str, err := token.SignedString([]byte(config.C.JwtSecret))
	if err != nil {
		return "", err
	}
	return str, nil
}

func ParsingToken(token string) (PlaytubeClaim, error) {
	claims := &PlaytubeClaim{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(config.C.JwtSecret), nil
	})
	if err != nil {
		return PlaytubeClaim{}, err
	}
	return *claims, nil
}
