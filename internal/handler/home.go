package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home is the anonymous landing endpoint at the API root.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "welcome to the vehicle registry API",
		"docs":    "/swagger",
	})
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
