package models

import "time"

// Usuario is the account attached one-to-one to a Persona. Accounts are
// never deleted; deactivation flips Activo (logical delete).
type Usuario struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PersonaID      uint    `gorm:"not null;uniqueIndex" json:"persona_id"`
	Persona        Persona `gorm:"foreignKey:PersonaID" json:"persona,omitempty"`
	ContrasenaHash string  `gorm:"not null" json:"-"`
	Activo         bool    `gorm:"not null;default:true" json:"activo"`
}

// TableName specifies the table name for Usuario model
func (Usuario) TableName() string {
	return "usuarios"
}
