package models

import "time"

// Default status assigned to a demanda at creation
const EstatusRegistrada = "registrada"

// Display fallbacks used by the per-person case listing
const (
	AutoridadPorAsignar = "Por asignar"
	EstatusVigente      = "Vigente"
)

// Demanda is a filed legal claim between a claimant (demandante) and a
// respondent (demandado). It is created by the case filer and mutated only
// by the case router, which sets AutoridadAsignadaID.
type Demanda struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	FechaCreacion time.Time `gorm:"autoCreateTime;not null" json:"fecha_creacion"`

	Folio        string  `gorm:"uniqueIndex;not null" json:"folio"`
	DemandanteID uint    `gorm:"not null;index" json:"demandante_id"`
	Demandante   Persona `gorm:"foreignKey:DemandanteID" json:"demandante,omitempty"`
	DemandadoID  uint    `gorm:"not null;index" json:"demandado_id"`
	Demandado    Persona `gorm:"foreignKey:DemandadoID" json:"demandado,omitempty"`

	Pretensiones      string `gorm:"type:text;not null" json:"pretensiones"`
	Hechos            string `gorm:"type:text;not null" json:"hechos"`
	FundamentoDerecho string `gorm:"type:text;not null" json:"fundamento_derecho"`
	TipoAccion        string `gorm:"not null" json:"tipo_accion"`
	Estatus           string `gorm:"not null;default:registrada" json:"estatus"`

	AutoridadAsignadaID *uint    `gorm:"index" json:"autoridad_asignada_id,omitempty"`
	AutoridadAsignada   *Persona `gorm:"foreignKey:AutoridadAsignadaID" json:"autoridad_asignada,omitempty"`
}

// TableName specifies the table name for Demanda model
func (Demanda) TableName() string {
	return "demandas"
}
