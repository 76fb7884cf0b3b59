package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sistema_juridico_api/models"
)

// Unique shared-cache names isolate tests while keeping one database per
// test across pooled connections (async bitácora writes included)
func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Persona{},
		&models.Usuario{},
		&models.UsuarioRol{},
		&models.Demanda{},
		&models.Bitacora{},
	)
	require.NoError(t, err)

	return db
}

func crearPersona(t *testing.T, db *gorm.DB, nombre, apellidoPaterno, apellidoMaterno, curp, email string) *models.Persona {
	persona := &models.Persona{
		Nombre:          nombre,
		ApellidoPaterno: apellidoPaterno,
		CURP:            curp,
		Calle:           "Av. Juárez",
		NumeroExterior:  "12",
		Colonia:         "Centro",
		Municipio:       "Toluca",
		Estado:          "México",
		CodigoPostal:    "50000",
		Telefono:        "5512345678",
		Email:           email,
	}
	if apellidoMaterno != "" {
		persona.ApellidoMaterno = &apellidoMaterno
	}
	require.NoError(t, db.Create(persona).Error)
	return persona
}

func crearCuenta(t *testing.T, db *gorm.DB, personaID uint, contrasena string, rolID int) *models.Usuario {
	hash, err := HashPassword(contrasena)
	require.NoError(t, err)

	usuario := &models.Usuario{PersonaID: personaID, ContrasenaHash: hash, Activo: true}
	require.NoError(t, db.Create(usuario).Error)

	rol := &models.UsuarioRol{UsuarioID: usuario.ID, RolID: rolID}
	require.NoError(t, db.Create(rol).Error)

	return usuario
}
