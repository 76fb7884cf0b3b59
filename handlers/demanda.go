package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sistema_juridico_api/services"
)

// GenerarFolio handles GET /api/demandas/generar-folio
func (h *Handler) GenerarFolio(c echo.Context) error {
	folio, err := services.GenerarFolioUnico(h.DB)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"folio":   folio,
	})
}

type buscarDemandadoPayload struct {
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
}

// BuscarDemandado handles POST /api/demandas/buscar-demandado
func (h *Handler) BuscarDemandado(c echo.Context) error {
	var payload buscarDemandadoPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "Nombre y apellido paterno son requeridos")
	}

	personaID, err := services.BuscarDemandado(h.DB, payload.Nombre, payload.ApellidoPaterno, payload.ApellidoMaterno)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNombreRequerido):
			return badRequest(c, "Nombre y apellido paterno son requeridos")
		case errors.Is(err, services.ErrDemandadoNoEncontrado):
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error": "No se encontró al demandado",
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"persona_id": personaID,
	})
}

type crearDemandaPayload struct {
	Folio             string `json:"folio"`
	DemandanteID      uint   `json:"demandante_id"`
	DemandadoID       uint   `json:"demandado_id"`
	Pretensiones      string `json:"pretensiones"`
	Hechos            string `json:"hechos"`
	FundamentoDerecho string `json:"fundamento_derecho"`
	TipoAccion        string `json:"tipo_accion"`
}

// CrearDemanda handles POST /api/demandas/crear
func (h *Handler) CrearDemanda(c echo.Context) error {
	var payload crearDemandaPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "Faltan campos obligatorios")
	}

	demandaID, err := services.CrearDemanda(h.DB, services.DemandaInput{
		Folio:             payload.Folio,
		DemandanteID:      payload.DemandanteID,
		DemandadoID:       payload.DemandadoID,
		Pretensiones:      payload.Pretensiones,
		Hechos:            payload.Hechos,
		FundamentoDerecho: payload.FundamentoDerecho,
		TipoAccion:        payload.TipoAccion,
	})
	if err != nil {
		if errors.Is(err, services.ErrCamposObligatorios) {
			return badRequest(c, "Faltan campos obligatorios")
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":    true,
		"message":    "Demanda creada exitosamente",
		"demanda_id": demandaID,
	})
}

// MisDemandas handles GET /api/demandas/mis-demandas?persona_id=
func (h *Handler) MisDemandas(c echo.Context) error {
	personaParam := c.QueryParam("persona_id")
	if personaParam == "" {
		return badRequest(c, "ID de persona requerido")
	}
	personaID, err := strconv.ParseUint(personaParam, 10, 64)
	if err != nil {
		return badRequest(c, "ID de persona requerido")
	}

	demandas, err := services.MisDemandas(h.DB, uint(personaID))
	if err != nil {
		if errors.Is(err, services.ErrPersonaRequerida) {
			return badRequest(c, "ID de persona requerido")
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"demandas": demandas,
	})
}
