package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-registry/internal/auth"
	"github.com/iliyamo/vehicle-registry/internal/model"
	"github.com/iliyamo/vehicle-registry/internal/query"
	"github.com/iliyamo/vehicle-registry/internal/repository"
)

// AdminStore is the slice of the admin repository the handlers use.
type AdminStore interface {
	Create(ctx context.Context, a *model.Admin) error
	GetByID(ctx context.Context, id uint64) (*model.Admin, error)
	ListAll(ctx context.Context) ([]*model.Admin, error)
}

// AdminHandler serves the admin-account CRUD surface. All of its routes
// require the admin role; the router wires that up.
type AdminHandler struct {
	Admins     AdminStore
	BcryptCost int
}

func NewAdminHandler(store AdminStore, bcryptCost int) *AdminHandler {
	return &AdminHandler{Admins: store, BcryptCost: bcryptCost}
}

// adminView is the response shape for admin records: id, email and role,
// never the credential hash.
type adminView struct {
	ID    uint64     `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

func viewOf(a *model.Admin) adminView {
	return adminView{ID: a.ID, Email: a.Email, Role: a.Role}
}

// List handles GET /admin. The optional ?page= parameter selects a fixed
// 10-item window; without it the full ordered set is returned.
func (h *AdminHandler) List(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid page"})
	}
	admins, err := h.Admins.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]adminView, 0, len(admins))
	for _, a := range query.List(admins, page) {
		out = append(out, viewOf(a))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /admin/:id.
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	adm, err := h.Admins.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, viewOf(adm))
}

type createAdminReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Create handles POST /admin. Field problems are collected into a single
// messages list; unknown role values are rejected rather than coerced.
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	var v ErrorMessages
	if req.Email == "" {
		v.add("email cannot be empty")
	}
	if req.Password == "" {
		v.add("password cannot be empty")
	}
	var role model.Role
	if req.Role == "" {
		v.add("role cannot be empty")
	} else {
		var err error
		if role, err = model.ParseRole(req.Role); err != nil {
			v.add("role must be admin or editor")
		}
	}
	if len(v.Messages) > 0 {
		return c.JSON(http.StatusBadRequest, v)
	}

	hash, err := auth.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	adm := &model.Admin{Email: req.Email, PasswordHash: hash, Role: role}
	if err := h.Admins.Create(ctx, adm); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/admin/%d", adm.ID))
	return c.JSON(http.StatusCreated, viewOf(adm))
}
