package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sistema_juridico_api/services"
)

type domicilioPayload struct {
	Calle     string `json:"calle"`
	Numero    string `json:"numero"`
	Interior  string `json:"interior"`
	Colonia   string `json:"colonia"`
	Municipio string `json:"municipio"`
	Estado    string `json:"estado"`
	CP        string `json:"cp"`
}

type registroPayload struct {
	Nombre          string           `json:"nombre"`
	ApellidoPaterno string           `json:"apellido_paterno"`
	ApellidoMaterno string           `json:"apellido_materno"`
	CURP            string           `json:"curp"`
	RFC             string           `json:"rfc"`
	Telefono        string           `json:"telefono"`
	Email           string           `json:"email"`
	Contrasena      string           `json:"contrasena"`
	Domicilio       domicilioPayload `json:"domicilio"`
	GrupoVulnerable bool             `json:"grupo_vulnerable"`
}

// Registro handles POST /api/registro
func (h *Handler) Registro(c echo.Context) error {
	var payload registroPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "Cuerpo de la solicitud inválido")
	}

	resultado, err := services.Registrar(h.DB, services.RegistroInput{
		Nombre:          payload.Nombre,
		ApellidoPaterno: payload.ApellidoPaterno,
		ApellidoMaterno: payload.ApellidoMaterno,
		CURP:            payload.CURP,
		RFC:             payload.RFC,
		Telefono:        payload.Telefono,
		Email:           payload.Email,
		Contrasena:      payload.Contrasena,
		Domicilio: services.Domicilio{
			Calle:     payload.Domicilio.Calle,
			Numero:    payload.Domicilio.Numero,
			Interior:  payload.Domicilio.Interior,
			Colonia:   payload.Domicilio.Colonia,
			Municipio: payload.Domicilio.Municipio,
			Estado:    payload.Domicilio.Estado,
			CP:        payload.Domicilio.CP,
		},
		GrupoVulnerable: payload.GrupoVulnerable,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCamposObligatorios),
			errors.Is(err, services.ErrDomicilioIncompleto),
			errors.Is(err, services.ErrEmailRegistrado),
			errors.Is(err, services.ErrCURPRegistrada):
			return badRequest(c, err.Error())
		default:
			c.Logger().Errorf("Error en registro: %v", err)
			return serverError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":    true,
		"message":    "Usuario registrado exitosamente",
		"persona_id": resultado.PersonaID,
	})
}

type loginPayload struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

// Login handles POST /api/login
func (h *Handler) Login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "Cuerpo de la solicitud inválido")
	}
	if payload.Email == "" || payload.Contrasena == "" {
		return badRequest(c, "Email y contraseña son requeridos")
	}

	sesion, err := services.Autenticar(h.DB, payload.Email, payload.Contrasena)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsuarioNoEncontrado):
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":  "Usuario no encontrado",
				"codigo": 1,
			})
		case errors.Is(err, services.ErrUsuarioEnValidacion):
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"error":   "Usuario en validación",
				"message": "Sus credenciales se encuentran en proceso de validación. En poco tiempo podrá acceder al sistema",
				"codigo":  2,
			})
		case errors.Is(err, services.ErrCredencialesInvalidas):
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"error":  "Credenciales inválidas",
				"codigo": 3,
			})
		default:
			c.Logger().Errorf("Error en login: %v", err)
			return serverError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":         true,
		"message":         "Bienvenido al sistema",
		"persona_id":      sesion.PersonaID,
		"usuario_id":      sesion.UsuarioID,
		"nombre_completo": sesion.NombreCompleto,
		"tipo_usuario":    sesion.TipoUsuario,
		"rol_id":          sesion.RolID,
	})
}

// Healthcheck handles GET /api/healthcheck
func (h *Handler) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "OK",
		"service": h.Cfg.ServiceName,
	})
}
