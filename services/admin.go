package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sistema_juridico_api/models"
)

// ErrUsuarioRequerido means the account id was missing from the request
var ErrUsuarioRequerido = errors.New("ID de usuario requerido")

// ErrDatosIncompletos means the role assignment payload was incomplete
var ErrDatosIncompletos = errors.New("datos incompletos")

// UsuarioPendiente is one row of the pending-approval queue
type UsuarioPendiente struct {
	ID              uint    `json:"id"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	CURP            string  `json:"curp"`
	RFC             *string `json:"rfc"`
	UsuarioID       uint    `json:"usuario_id"`
}

// UsuariosPendientes lists every persona whose account is active and still
// bound to the pending role.
func UsuariosPendientes(db *gorm.DB) ([]UsuarioPendiente, error) {
	var pendientes []UsuarioPendiente
	err := db.Model(&models.Persona{}).
		Select("personas.id, personas.nombre, personas.apellido_paterno, personas.apellido_materno, personas.curp, personas.rfc, usuarios.id as usuario_id").
		Joins("JOIN usuarios ON personas.id = usuarios.persona_id").
		Joins("JOIN usuarios_roles ON usuarios.id = usuarios_roles.usuario_id").
		Where("usuarios_roles.rol_id = ? AND usuarios.activo = ?", models.RolPendiente, true).
		Scan(&pendientes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	return pendientes, nil
}

// AsignarRol overwrites the role binding for an account. A strict UPDATE:
// zero rows affected is a silent no-op, matching the permissive behavior of
// the rest of the admin surface.
func AsignarRol(db *gorm.DB, usuarioID uint, rolID int) error {
	if usuarioID == 0 || rolID == 0 {
		return ErrDatosIncompletos
	}

	err := db.Model(&models.UsuarioRol{}).
		Where("usuario_id = ?", usuarioID).
		Update("rol_id", rolID).Error
	if err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// DesactivarUsuario flips the account to inactive. Logical delete: the row
// is never removed.
func DesactivarUsuario(db *gorm.DB, usuarioID uint) error {
	if usuarioID == 0 {
		return ErrUsuarioRequerido
	}

	err := db.Model(&models.Usuario{}).
		Where("id = ?", usuarioID).
		Update("activo", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
