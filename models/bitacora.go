package models

import "time"

// Administrative actions recorded in the bitácora
type AccionBitacora string

const (
	AccionAsignarRol        AccionBitacora = "ASIGNAR_ROL"
	AccionDesactivarUsuario AccionBitacora = "DESACTIVAR_USUARIO"
	AccionAsignarAutoridad  AccionBitacora = "ASIGNAR_AUTORIDAD"
)

// Bitacora is an append-only trail of administrative actions (role
// assignment, account deactivation, case routing). Rows are never updated
// or removed.
type Bitacora struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Accion      AccionBitacora `gorm:"not null;index" json:"accion"`
	RecursoTipo string         `gorm:"not null;index:idx_bitacora_recurso" json:"recurso_tipo"`
	RecursoID   uint           `gorm:"not null;index:idx_bitacora_recurso" json:"recurso_id"`
	Detalle     string         `gorm:"type:text" json:"detalle"`
	IPOrigen    string         `json:"ip_origen"`
}

// TableName specifies the table name for Bitacora model
func (Bitacora) TableName() string {
	return "bitacora"
}
