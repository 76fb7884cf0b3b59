package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sistema_juridico_api/config"
	"sistema_juridico_api/models"
	"sistema_juridico_api/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name to isolate tests while allowing shared
	// cache for async bitácora writes
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Persona{},
		&models.Usuario{},
		&models.UsuarioRol{},
		&models.Demanda{},
		&models.Bitacora{},
	)
	require.NoError(t, err)

	return testDB
}

func setupHandler(t *testing.T) (*Handler, *gorm.DB) {
	testDB := setupTestDB(t)
	h := New(testDB, &config.Config{
		Environment: "test",
		ServiceName: "Sistema Jurídico Legal API",
	})
	return h, testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func jsonBody(t *testing.T, payload interface{}) io.Reader {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return strings.NewReader(string(raw))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registrarPersona(t *testing.T, db *gorm.DB, nombre, apellidoPaterno, curp, email, contrasena string) *services.RegistroResultado {
	resultado, err := services.Registrar(db, services.RegistroInput{
		Nombre:          nombre,
		ApellidoPaterno: apellidoPaterno,
		CURP:            curp,
		Telefono:        "5512345678",
		Email:           email,
		Contrasena:      contrasena,
		Domicilio: services.Domicilio{
			Calle:     "Av. Juárez",
			Numero:    "12",
			Colonia:   "Centro",
			Municipio: "Toluca",
			Estado:    "México",
			CP:        "50000",
		},
	})
	require.NoError(t, err)
	return resultado
}
