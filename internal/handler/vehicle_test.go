package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/vehicle-registry/internal/model"
)

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func seedVehicles(t *testing.T, store *fakeVehicleStore, vehicles ...*model.Vehicle) {
	t.Helper()
	for _, v := range vehicles {
		require.NoError(t, store.Create(context.Background(), v))
	}
}

func TestVehicleCreate_AggregatesAllViolations(t *testing.T) {
	t.Parallel()

	h := NewVehicleHandler(newFakeVehicleStore(), nil)
	c, rec := newContext(t, http.MethodPost, "/vehicles", `{"name":"","brand":"","year":1900}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var v ErrorMessages
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Len(t, v.Messages, 3)
	assert.Contains(t, v.Messages, "name cannot be empty")
	assert.Contains(t, v.Messages, "brand cannot be empty")
	assert.Contains(t, v.Messages, "year cannot be before 1950")
}

func TestVehicleCreate_OK(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	h := NewVehicleHandler(newFakeVehicleStore(), pub)
	c, rec := newContext(t, http.MethodPost, "/vehicles", `{"name":"Civic","brand":"Honda","year":2020}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var v model.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, uint64(1), v.ID)
	assert.Equal(t, "Civic", v.Name)
	assert.Equal(t, "/vehicles/1", rec.Header().Get(echo.HeaderLocation))

	require.Len(t, pub.events, 1)
	assert.Equal(t, "created", pub.events[0].Action)
	assert.Equal(t, uint64(1), pub.events[0].VehicleID)
}

func TestVehicleCreate_DuplicatesAccepted(t *testing.T) {
	t.Parallel()

	// There is intentionally no uniqueness rule for vehicles at any layer.
	h := NewVehicleHandler(newFakeVehicleStore(), nil)
	for i := 0; i < 2; i++ {
		c, rec := newContext(t, http.MethodPost, "/vehicles", `{"name":"Civic","brand":"Honda","year":2020}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestVehicleList_FilterAndPage(t *testing.T) {
	t.Parallel()

	store := newFakeVehicleStore()
	for i := 0; i < 25; i++ {
		seedVehicles(t, store, &model.Vehicle{Name: fmt.Sprintf("Civic %d", i), Brand: "Honda", Year: 2000 + i%20})
	}
	seedVehicles(t, store, &model.Vehicle{Name: "Corolla", Brand: "Toyota", Year: 2015})
	h := NewVehicleHandler(store, nil)

	// Page 3 of the civ-filtered set: 25 matches -> 5 items.
	c, rec := newContext(t, http.MethodGet, "/vehicles?name=civ&page=3", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var page []model.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page, 5)

	// No page parameter: full filtered scan.
	c, rec = newContext(t, http.MethodGet, "/vehicles?brand=toy", "")
	require.NoError(t, h.List(c))
	var all []model.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "Corolla", all[0].Name)
}

func TestVehicleList_BadPage(t *testing.T) {
	t.Parallel()

	h := NewVehicleHandler(newFakeVehicleStore(), nil)
	for _, target := range []string{"/vehicles?page=0", "/vehicles?page=abc", "/vehicles?page=-2"} {
		c, rec := newContext(t, http.MethodGet, target, "")
		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestVehicleGet(t *testing.T) {
	t.Parallel()

	store := newFakeVehicleStore()
	seedVehicles(t, store, &model.Vehicle{Name: "Civic", Brand: "Honda", Year: 2020})
	h := NewVehicleHandler(store, nil)

	c, rec := newContext(t, http.MethodGet, "/vehicles/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(t, http.MethodGet, "/vehicles/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVehicleUpdate(t *testing.T) {
	t.Parallel()

	store := newFakeVehicleStore()
	seedVehicles(t, store, &model.Vehicle{Name: "Civic", Brand: "Honda", Year: 2018})
	pub := &recordingPublisher{}
	h := NewVehicleHandler(store, pub)

	c, rec := newContext(t, http.MethodPut, "/vehicles/1", `{"name":"Civic Type R","brand":"Honda","year":2022}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Civic Type R", stored.Name)
	assert.Equal(t, 2022, stored.Year)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "updated", pub.events[0].Action)
}

func TestVehicleUpdate_ValidatesBeforeLookup(t *testing.T) {
	t.Parallel()

	h := NewVehicleHandler(newFakeVehicleStore(), nil)
	c, rec := newContext(t, http.MethodPut, "/vehicles/1", `{"name":"","brand":"","year":1900}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var v ErrorMessages
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Len(t, v.Messages, 3)
}

func TestVehicleUpdate_NotFound(t *testing.T) {
	t.Parallel()

	h := NewVehicleHandler(newFakeVehicleStore(), nil)
	c, rec := newContext(t, http.MethodPut, "/vehicles/42", `{"name":"Civic","brand":"Honda","year":2020}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVehicleDelete(t *testing.T) {
	t.Parallel()

	store := newFakeVehicleStore()
	seedVehicles(t, store, &model.Vehicle{Name: "Civic", Brand: "Honda", Year: 2020})
	pub := &recordingPublisher{}
	h := NewVehicleHandler(store, pub)

	c, rec := newContext(t, http.MethodDelete, "/vehicles/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := store.GetByID(context.Background(), 1)
	assert.Error(t, err)
	require.Len(t, pub.events, 1)
	assert.Equal(t, "deleted", pub.events[0].Action)

	c, rec = newContext(t, http.MethodDelete, "/vehicles/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
