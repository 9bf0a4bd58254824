package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-registry/internal/middleware"
	"github.com/iliyamo/vehicle-registry/internal/model"
	"github.com/iliyamo/vehicle-registry/internal/query"
	"github.com/iliyamo/vehicle-registry/internal/queue"
	"github.com/iliyamo/vehicle-registry/internal/repository"
)

// VehicleStore is the slice of the vehicle repository the handlers use.
type VehicleStore interface {
	Create(ctx context.Context, v *model.Vehicle) error
	GetByID(ctx context.Context, id uint64) (*model.Vehicle, error)
	ListAll(ctx context.Context) ([]*model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id uint64) error
}

// EventPublisher pushes audit events for vehicle mutations. A nil publisher
// disables auditing; publish failures never fail the request.
type EventPublisher interface {
	PublishVehicleEvent(ctx context.Context, ev queue.VehicleEvent) error
}

// VehicleHandler serves the vehicle CRUD surface.
type VehicleHandler struct {
	Vehicles VehicleStore
	Events   EventPublisher
}

func NewVehicleHandler(store VehicleStore, events EventPublisher) *VehicleHandler {
	return &VehicleHandler{Vehicles: store, Events: events}
}

type vehicleReq struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// validate collects every violated rule of a vehicle payload.
func (req vehicleReq) validate() ErrorMessages {
	var v ErrorMessages
	if req.Name == "" {
		v.add("name cannot be empty")
	}
	if req.Brand == "" {
		v.add("brand cannot be empty")
	}
	if req.Year < 1950 {
		v.add("year cannot be before 1950")
	}
	return v
}

// List handles GET /vehicles. Optional ?name= and ?brand= parameters are
// case-insensitive substring filters composed with AND; ?page= selects a
// fixed 10-item window, otherwise the full filtered set is returned.
func (h *VehicleHandler) List(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid page"})
	}
	vehicles, err := h.Vehicles.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := query.List(vehicles, page,
		query.Filter[*model.Vehicle]{
			Value: strings.TrimSpace(c.QueryParam("name")),
			Field: func(v *model.Vehicle) string { return v.Name },
		},
		query.Filter[*model.Vehicle]{
			Value: strings.TrimSpace(c.QueryParam("brand")),
			Field: func(v *model.Vehicle) string { return v.Brand },
		},
	)
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /vehicles/:id.
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Vehicles.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, v)
}

// Create handles POST /vehicles.
func (h *VehicleHandler) Create(c echo.Context) error {
	var req vehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if v := req.validate(); len(v.Messages) > 0 {
		return c.JSON(http.StatusBadRequest, v)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v := &model.Vehicle{Name: req.Name, Brand: req.Brand, Year: req.Year}
	if err := h.Vehicles.Create(ctx, v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create vehicle failed"})
	}
	h.publish(c, "created", v)

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/vehicles/%d", v.ID))
	return c.JSON(http.StatusCreated, v)
}

// Update handles PUT /vehicles/:id. The row is fetched first; the update
// operates on that instance.
func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req vehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if v := req.validate(); len(v.Messages) > 0 {
		return c.JSON(http.StatusBadRequest, v)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.Vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	v.Name = req.Name
	v.Brand = req.Brand
	v.Year = req.Year
	if err := h.Vehicles.Update(ctx, v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update vehicle failed"})
	}
	h.publish(c, "updated", v)

	return c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /vehicles/:id.
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.Vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Vehicles.Delete(ctx, v.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete vehicle failed"})
	}
	h.publish(c, "deleted", v)

	return c.NoContent(http.StatusNoContent)
}

func (h *VehicleHandler) publish(c echo.Context, action string, v *model.Vehicle) {
	if h.Events == nil {
		return
	}
	actor, _ := c.Get(middleware.CtxEmail).(string)
	_ = h.Events.PublishVehicleEvent(c.Request().Context(), queue.VehicleEvent{
		Action:     action,
		VehicleID:  v.ID,
		Name:       v.Name,
		Brand:      v.Brand,
		Year:       v.Year,
		Actor:      actor,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
