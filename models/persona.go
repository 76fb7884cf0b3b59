package models

import (
	"strings"
	"time"
)

// Persona represents a registered natural person: claimant, respondent or
// adjudicating authority. Identity attributes are immutable after
// registration (no edit flow exists).
type Persona struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre          string  `gorm:"not null" json:"nombre"`
	ApellidoPaterno string  `gorm:"not null" json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno,omitempty"`
	CURP            string  `gorm:"column:curp;uniqueIndex;not null" json:"curp"`
	RFC             *string `gorm:"column:rfc" json:"rfc,omitempty"`

	// Domicilio
	Calle          string  `gorm:"not null" json:"calle"`
	NumeroExterior string  `gorm:"not null" json:"numero_exterior"`
	NumeroInterior *string `json:"numero_interior,omitempty"`
	Colonia        string  `gorm:"not null" json:"colonia"`
	Municipio      string  `gorm:"not null" json:"municipio"`
	Estado         string  `gorm:"not null" json:"estado"`
	CodigoPostal   string  `gorm:"not null" json:"codigo_postal"`

	Telefono        string `gorm:"not null" json:"telefono"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	GrupoVulnerable bool   `gorm:"not null;default:false" json:"grupo_vulnerable"`
}

// NombreCompleto composes the display name: first name, paternal surname and
// the maternal surname only when present.
func (p *Persona) NombreCompleto() string {
	nombre := p.Nombre + " " + p.ApellidoPaterno
	if p.ApellidoMaterno != nil && strings.TrimSpace(*p.ApellidoMaterno) != "" {
		nombre += " " + *p.ApellidoMaterno
	}
	return nombre
}

// NombreCorto is the short display form used in case listings
func (p *Persona) NombreCorto() string {
	return p.Nombre + " " + p.ApellidoPaterno
}

// TableName specifies the table name for Persona model
func (Persona) TableName() string {
	return "personas"
}
