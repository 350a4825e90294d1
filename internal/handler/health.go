package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Hello is the root greeting at GET /api.
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Hello, world!"})
}

// Health reports service liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"message": "Peiris Grand Resort API is running",
	})
}
