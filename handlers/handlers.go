package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sistema_juridico_api/config"
)

// Handler carries the dependencies every endpoint needs. The database
// handle is injected here instead of living in a package-level singleton.
type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// New builds a Handler around an open database connection
func New(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{DB: db, Cfg: cfg}
}

// serverError responds with 500 echoing the raw error detail, matching the
// wire behavior the front end already depends on.
func serverError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":   "Error en el servidor",
		"details": err.Error(),
	})
}

// badRequest responds with 400 and a plain error message
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error": message,
	})
}
