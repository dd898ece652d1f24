// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"tienda/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "OK")
}
