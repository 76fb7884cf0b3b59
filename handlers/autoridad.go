package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sistema_juridico_api/models"
	"sistema_juridico_api/services"
)

// DemandasPendientes handles GET /api/autoridad/pendientes
func (h *Handler) DemandasPendientes(c echo.Context) error {
	demandas, err := services.DemandasPendientes(h.DB)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"demandas": demandas,
	})
}

type asignarAutoridadPayload struct {
	AutoridadID uint `json:"autoridad_id"`
}

// AsignarAutoridad handles PUT /api/autoridad/asignar/:demanda_id
func (h *Handler) AsignarAutoridad(c echo.Context) error {
	demandaID, err := strconv.ParseUint(c.Param("demanda_id"), 10, 64)
	if err != nil {
		return badRequest(c, "ID de demanda inválido")
	}

	var payload asignarAutoridadPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "ID de autoridad requerido")
	}

	if err := services.AsignarAutoridad(h.DB, uint(demandaID), payload.AutoridadID); err != nil {
		if errors.Is(err, services.ErrAutoridadRequerida) {
			return badRequest(c, "ID de autoridad requerido")
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	services.RegistrarEvento(h.DB, models.AccionAsignarAutoridad, "demanda", uint(demandaID),
		fmt.Sprintf("autoridad_id=%d", payload.AutoridadID), c.RealIP())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Demanda asignada correctamente",
	})
}

// CasosActivos handles GET /api/autoridad/activos/:autoridad_id
func (h *Handler) CasosActivos(c echo.Context) error {
	autoridadID, err := strconv.ParseUint(c.Param("autoridad_id"), 10, 64)
	if err != nil {
		return badRequest(c, "ID de autoridad inválido")
	}

	demandas, err := services.CasosActivos(h.DB, uint(autoridadID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"demandas": demandas,
	})
}
