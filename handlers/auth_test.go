package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"sistema_juridico_api/models"
	"sistema_juridico_api/services"
)

func registroAna() map[string]interface{} {
	return map[string]interface{}{
		"nombre":           "Ana",
		"apellido_paterno": "Lopez",
		"curp":             "curp123",
		"telefono":         "5512345678",
		"email":            "ana@x.com",
		"contrasena":       "pw",
		"domicilio": map[string]interface{}{
			"calle":     "Av. Juárez",
			"numero":    "12",
			"colonia":   "Centro",
			"municipio": "Toluca",
			"estado":    "México",
			"cp":        "50000",
		},
	}
}

func TestRegistro(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		h, db := setupHandler(t)
		_, c, rec := setupEcho(http.MethodPost, "/api/registro", jsonBody(t, registroAna()))

		assert.NoError(t, h.Registro(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Usuario registrado exitosamente", body["message"])
		assert.NotZero(t, body["persona_id"])

		var count int64
		db.Model(&models.Persona{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing fields", func(t *testing.T) {
		h, _ := setupHandler(t)
		payload := registroAna()
		delete(payload, "curp")
		_, c, rec := setupEcho(http.MethodPost, "/api/registro", jsonBody(t, payload))

		assert.NoError(t, h.Registro(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("incomplete domicilio", func(t *testing.T) {
		h, _ := setupHandler(t)
		payload := registroAna()
		payload["domicilio"] = map[string]interface{}{"calle": "Av. Juárez"}
		_, c, rec := setupEcho(http.MethodPost, "/api/registro", jsonBody(t, payload))

		assert.NoError(t, h.Registro(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "domicilio incompleto")
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, db := setupHandler(t)
		registrarPersona(t, db, "Ana", "Lopez", "curp123", "ana@x.com", "pw")

		payload := registroAna()
		payload["curp"] = "curp456"
		_, c, rec := setupEcho(http.MethodPost, "/api/registro", jsonBody(t, payload))

		assert.NoError(t, h.Registro(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "ya está registrado")
	})
}

func TestLogin(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		h, _ := setupHandler(t)
		_, c, rec := setupEcho(http.MethodPost, "/api/login", jsonBody(t, map[string]interface{}{"email": "ana@x.com"}))

		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user gets codigo 1", func(t *testing.T) {
		h, _ := setupHandler(t)
		_, c, rec := setupEcho(http.MethodPost, "/api/login", jsonBody(t, map[string]interface{}{
			"email": "nadie@x.com", "contrasena": "pw",
		}))

		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["codigo"])
	})

	t.Run("wrong password gets codigo 3", func(t *testing.T) {
		h, db := setupHandler(t)
		resultado := registrarPersona(t, db, "Ana", "Lopez", "curp123", "ana@x.com", "pw")
		assert.NoError(t, services.AsignarRol(db, resultado.UsuarioID, models.RolUsuario))

		_, c, rec := setupEcho(http.MethodPost, "/api/login", jsonBody(t, map[string]interface{}{
			"email": "ana@x.com", "contrasena": "wrong",
		}))

		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, float64(3), decodeBody(t, rec)["codigo"])
	})

	t.Run("register then login flow", func(t *testing.T) {
		h, db := setupHandler(t)

		// Register Ana through the endpoint
		_, c, rec := setupEcho(http.MethodPost, "/api/registro", jsonBody(t, registroAna()))
		assert.NoError(t, h.Registro(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		login := map[string]interface{}{"email": "ana@x.com", "contrasena": "pw"}

		// Fresh account is pending: codigo 2, regardless of password
		_, c, rec = setupEcho(http.MethodPost, "/api/login", jsonBody(t, login))
		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, float64(2), decodeBody(t, rec)["codigo"])

		// Approve as regular user
		var usuario models.Usuario
		assert.NoError(t, db.First(&usuario).Error)
		assert.NoError(t, services.AsignarRol(db, usuario.ID, models.RolUsuario))

		// Login now succeeds with the Usuario label
		_, c, rec = setupEcho(http.MethodPost, "/api/login", jsonBody(t, login))
		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Ana Lopez", body["nombre_completo"])
		assert.Equal(t, "Usuario", body["tipo_usuario"])
		assert.Equal(t, float64(models.RolUsuario), body["rol_id"])
		assert.Equal(t, float64(usuario.PersonaID), body["persona_id"])
		assert.Equal(t, float64(usuario.ID), body["usuario_id"])
	})
}

func TestHealthcheck(t *testing.T) {
	h, _ := setupHandler(t)
	_, c, rec := setupEcho(http.MethodGet, "/api/healthcheck", nil)

	assert.NoError(t, h.Healthcheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Sistema Jurídico Legal API", body["service"])
}
