// Package handler contains the HTTP surface of the API: login, admin CRUD
// and vehicle CRUD. Handlers hold their dependencies as small interfaces so
// tests can swap in in-memory fakes.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-registry/internal/auth"
	"github.com/iliyamo/vehicle-registry/internal/model"
)

// AuthHandler bundles the authenticator and token codec behind the login
// endpoint. Credential check and token minting are two separate steps with
// no shared transaction.
type AuthHandler struct {
	Auth  *auth.Authenticator
	Codec *auth.TokenCodec
}

func NewAuthHandler(a *auth.Authenticator, codec *auth.TokenCodec) *AuthHandler {
	return &AuthHandler{Auth: a, Codec: codec}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	Token string     `json:"token"`
}

// Login verifies credentials and returns a signed session token. Both an
// unknown email and a wrong password produce the same 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	adm, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	token, _, err := h.Codec.Mint(adm.Email, adm.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, loginResp{Email: adm.Email, Role: adm.Role, Token: token})
}
