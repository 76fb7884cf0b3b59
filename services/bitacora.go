package services

import (
	"log"

	"gorm.io/gorm"

	"sistema_juridico_api/models"
)

// RegistrarEvento appends an administrative action to the bitácora.
// Runs in a goroutine so the request is never blocked on audit writes; a
// failed write is logged and dropped.
func RegistrarEvento(db *gorm.DB, accion models.AccionBitacora, recursoTipo string, recursoID uint, detalle, ipOrigen string) {
	go func() {
		entrada := models.Bitacora{
			Accion:      accion,
			RecursoTipo: recursoTipo,
			RecursoID:   recursoID,
			Detalle:     detalle,
			IPOrigen:    ipOrigen,
		}
		if err := db.Create(&entrada).Error; err != nil {
			log.Printf("[BITACORA] Failed to record %s on %s/%d: %v", accion, recursoTipo, recursoID, err)
		}
	}()
}

// HistorialRecurso returns the audit trail for one resource, newest first
func HistorialRecurso(db *gorm.DB, recursoTipo string, recursoID uint) ([]models.Bitacora, error) {
	var entradas []models.Bitacora
	err := db.Where("recurso_tipo = ? AND recurso_id = ?", recursoTipo, recursoID).
		Order("created_at DESC").
		Find(&entradas).Error
	return entradas, err
}
