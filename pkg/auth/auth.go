package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// JWTKey signs access tokens. Overridden from config at startup.
var JWTKey = []byte("bookreview-dev-key")

type Claims struct {
	Profile struct {
		UserID string `json:"userId"`
		Name   string `json:"name"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type ctxKey int

const userIDKey ctxKey = iota + 1

func SetAuthContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", errors.New("no user in context")
	}
	return id, nil
}
