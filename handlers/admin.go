package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"sistema_juridico_api/models"
	"sistema_juridico_api/services"
)

// UsuariosPendientes handles GET /api/admin/usuarios-pendientes
func (h *Handler) UsuariosPendientes(c echo.Context) error {
	usuarios, err := services.UsuariosPendientes(h.DB)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"usuarios": usuarios,
	})
}

type asignarRolPayload struct {
	UsuarioID uint `json:"usuario_id"`
	RolID     int  `json:"rol_id"`
}

// AsignarRol handles POST /api/admin/asignar-rol
func (h *Handler) AsignarRol(c echo.Context) error {
	var payload asignarRolPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "Datos incompletos")
	}

	if err := services.AsignarRol(h.DB, payload.UsuarioID, payload.RolID); err != nil {
		if errors.Is(err, services.ErrDatosIncompletos) {
			return badRequest(c, "Datos incompletos")
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	services.RegistrarEvento(h.DB, models.AccionAsignarRol, "usuario", payload.UsuarioID,
		fmt.Sprintf("rol_id=%d", payload.RolID), c.RealIP())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Rol actualizado correctamente",
	})
}

type desactivarUsuarioPayload struct {
	UsuarioID uint `json:"usuario_id"`
}

// DesactivarUsuario handles POST /api/admin/desactivar-usuario
func (h *Handler) DesactivarUsuario(c echo.Context) error {
	var payload desactivarUsuarioPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "ID de usuario requerido")
	}

	if err := services.DesactivarUsuario(h.DB, payload.UsuarioID); err != nil {
		if errors.Is(err, services.ErrUsuarioRequerido) {
			return badRequest(c, "ID de usuario requerido")
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
	}

	services.RegistrarEvento(h.DB, models.AccionDesactivarUsuario, "usuario", payload.UsuarioID,
		"borrado lógico", c.RealIP())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Usuario desactivado correctamente",
	})
}
