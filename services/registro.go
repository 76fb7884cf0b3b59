package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sistema_juridico_api/models"
)

// Registration failures that handlers map to 400
var (
	ErrCamposObligatorios  = errors.New("faltan campos obligatorios")
	ErrDomicilioIncompleto = errors.New("domicilio incompleto")
	ErrEmailRegistrado     = errors.New("el email ya está registrado")
	ErrCURPRegistrada      = errors.New("la CURP ya está registrada")
)

// Domicilio carries the six mandatory address subfields plus the optional
// interior number.
type Domicilio struct {
	Calle     string
	Numero    string
	Interior  string
	Colonia   string
	Municipio string
	Estado    string
	CP        string
}

// RegistroInput is the raw registration payload after JSON binding
type RegistroInput struct {
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	CURP            string
	RFC             string
	Telefono        string
	Email           string
	Contrasena      string
	Domicilio       Domicilio
	GrupoVulnerable bool
}

// RegistroResultado returns the identifiers of the rows created together
type RegistroResultado struct {
	PersonaID uint
	UsuarioID uint
}

// Registrar validates the payload, rejects duplicate email/CURP, hashes the
// password and creates Persona + Usuario + UsuarioRol(pendiente) as one
// transaction. On any failure nothing is persisted.
func Registrar(db *gorm.DB, input RegistroInput) (*RegistroResultado, error) {
	if err := validarRegistro(input); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Persona{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailRegistrado
	}

	if err := db.Model(&models.Persona{}).Where("curp = ?", input.CURP).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check curp: %w", err)
	}
	if count > 0 {
		return nil, ErrCURPRegistrada
	}

	hash, err := HashPassword(input.Contrasena)
	if err != nil {
		return nil, err
	}

	persona := models.Persona{
		Nombre:          input.Nombre,
		ApellidoPaterno: input.ApellidoPaterno,
		ApellidoMaterno: ptrIfNotEmpty(input.ApellidoMaterno),
		CURP:            input.CURP,
		RFC:             ptrIfNotEmpty(input.RFC),
		Calle:           input.Domicilio.Calle,
		NumeroExterior:  input.Domicilio.Numero,
		NumeroInterior:  ptrIfNotEmpty(input.Domicilio.Interior),
		Colonia:         input.Domicilio.Colonia,
		Municipio:       input.Domicilio.Municipio,
		Estado:          input.Domicilio.Estado,
		CodigoPostal:    input.Domicilio.CP,
		Telefono:        input.Telefono,
		Email:           input.Email,
		GrupoVulnerable: input.GrupoVulnerable,
	}

	usuario := models.Usuario{Activo: true, ContrasenaHash: hash}

	// Three related rows created together; rollback on any failure
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&persona).Error; err != nil {
			return fmt.Errorf("failed to create persona: %w", err)
		}

		usuario.PersonaID = persona.ID
		if err := tx.Create(&usuario).Error; err != nil {
			return fmt.Errorf("failed to create usuario: %w", err)
		}

		rol := models.UsuarioRol{UsuarioID: usuario.ID, RolID: models.RolPendiente}
		if err := tx.Create(&rol).Error; err != nil {
			return fmt.Errorf("failed to create rol: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RegistroResultado{PersonaID: persona.ID, UsuarioID: usuario.ID}, nil
}

func validarRegistro(input RegistroInput) error {
	required := []string{
		input.Nombre,
		input.ApellidoPaterno,
		input.CURP,
		input.Telefono,
		input.Email,
		input.Contrasena,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrCamposObligatorios
		}
	}

	d := input.Domicilio
	domicilio := []string{d.Calle, d.Numero, d.Colonia, d.Municipio, d.Estado, d.CP}
	for _, field := range domicilio {
		if strings.TrimSpace(field) == "" {
			return ErrDomicilioIncompleto
		}
	}

	return nil
}

// ptrIfNotEmpty returns a pointer to the string if not empty, nil otherwise
func ptrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
