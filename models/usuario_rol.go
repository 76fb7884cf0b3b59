package models

import "time"

// Role identifiers (closed enumeration)
const (
	RolAdministrador = 1
	RolAutoridad     = 2
	RolUsuario       = 3
	RolPendiente     = 4 // default for newly registered accounts
)

// UsuarioRol binds an account to exactly one role. The unique index on
// UsuarioID enforces single-role semantics: re-assignment overwrites the
// row, it never adds a second one.
type UsuarioRol struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UsuarioID uint    `gorm:"not null;uniqueIndex" json:"usuario_id"`
	Usuario   Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	RolID     int     `gorm:"not null" json:"rol_id"`
}

// EtiquetaRol maps a role id to its display label. Unknown ids (including
// the pending role, which never reaches a successful login) map to "".
func EtiquetaRol(rolID int) string {
	switch rolID {
	case RolAdministrador:
		return "Administrador"
	case RolAutoridad:
		return "Autoridad"
	case RolUsuario:
		return "Usuario"
	default:
		return ""
	}
}

// TableName specifies the table name for UsuarioRol model
func (UsuarioRol) TableName() string {
	return "usuarios_roles"
}
