package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/bookhive/bookreview-service/pkg/auth"
	md "github.com/bookhive/bookreview-service/pkg/middleware"
)

func signToken(t *testing.T, userID string, expiresAt *jwt.NumericDate) string {
	t.Helper()
	claims := &auth.Claims{}
	claims.Profile.UserID = userID
	claims.Profile.Name = "Alice"
	claims.Email = "alice@example.com"
	if expiresAt != nil {
		claims.RegisteredClaims = jwt.RegisteredClaims{ExpiresAt: expiresAt}
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.JWTKey)
	require.NoError(t, err)
	return tokenString
}

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	const userID = "7f2a4c9e-3b1d-4e8a-9f6c-2d5b8a1e4c7f"

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		id, err := auth.GetUserID(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return c.String(http.StatusOK, id)
	}, md.JwtAuthentication)

	tests := []struct {
		name          string
		authorization string
		expectedCode  int
		expectedBody  string
	}{
		{
			name:          "ok",
			authorization: "Bearer " + signToken(t, userID, jwt.NewNumericDate(time.Now().Add(time.Hour))),
			expectedCode:  http.StatusOK,
			expectedBody:  userID,
		},
		{
			name:          "ok. token without exp",
			authorization: "Bearer " + signToken(t, userID, nil),
			expectedCode:  http.StatusOK,
			expectedBody:  userID,
		},
		{
			name:          "err. expired token",
			authorization: "Bearer " + signToken(t, userID, jwt.NewNumericDate(time.Now().Add(-time.Hour))),
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "err. no header",
			authorization: "",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "err. not bearer",
			authorization: "Basic abc",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "err. garbage token",
			authorization: "Bearer not.a.token",
			expectedCode:  http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/protected", http.NoBody)
			if tt.authorization != "" {
				r.Header.Set(md.AuthorizationHeader, tt.authorization)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
