package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sistema_juridico_api/models"
)

// BcryptCost is the cost factor for bcrypt hashing
const BcryptCost = bcrypt.DefaultCost

// Authentication outcomes that handlers map to distinct status codes
var (
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrUsuarioEnValidacion   = errors.New("usuario en validación")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword verifies a password against a bcrypt hash
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// SesionUsuario is the profile returned on a successful login
type SesionUsuario struct {
	PersonaID      uint
	UsuarioID      uint
	NombreCompleto string
	TipoUsuario    string
	RolID          int
}

// Autenticar resolves an account by email and verifies the password.
//
// The pending-role check runs BEFORE the password is verified: an account
// awaiting approval must not learn whether its password was correct, only
// that it is pending.
func Autenticar(db *gorm.DB, email, contrasena string) (*SesionUsuario, error) {
	var usuario models.Usuario
	err := db.Preload("Persona").
		Joins("JOIN personas ON personas.id = usuarios.persona_id").
		Where("personas.email = ?", email).
		First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	var rol models.UsuarioRol
	if err := db.Where("usuario_id = ?", usuario.ID).First(&rol).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve role: %w", err)
		}
		// Missing binding behaves like an unmapped role id
	}

	if rol.RolID == models.RolPendiente {
		return nil, ErrUsuarioEnValidacion
	}

	if !VerifyPassword(usuario.ContrasenaHash, contrasena) {
		return nil, ErrCredencialesInvalidas
	}

	return &SesionUsuario{
		PersonaID:      usuario.PersonaID,
		UsuarioID:      usuario.ID,
		NombreCompleto: usuario.Persona.NombreCompleto(),
		TipoUsuario:    models.EtiquetaRol(rol.RolID),
		RolID:          rol.RolID,
	}, nil
}
