package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"sistema_juridico_api/models"
)

// FolioPrefix precedes the year and sequence in every case folio
const FolioPrefix = "DEM"

// FormatFolio renders a folio for a year and sequence number.
// Format: DEM-<year>-<4-digit-sequence>
func FormatFolio(year, sequence int) string {
	return fmt.Sprintf("%s-%d-%04d", FolioPrefix, year, sequence)
}

// GenerarFolio computes the next folio from the current case count,
// starting at 1 on an empty table. The count-then-format scheme is not
// race-free: two concurrent callers can observe the same count. The unique
// index on demandas.folio rejects the loser at insert time; callers that
// need a guaranteed-insertable folio use GenerarFolioUnico.
func GenerarFolio(db *gorm.DB) (string, error) {
	var total int64
	if err := db.Model(&models.Demanda{}).Count(&total).Error; err != nil {
		return "", fmt.Errorf("failed to count demandas: %w", err)
	}

	nuevoNumero := int(total) + 1
	return FormatFolio(time.Now().Year(), nuevoNumero), nil
}

// GenerarFolioUnico generates a folio that does not collide with an
// existing one, bumping the sequence until a free slot is found. Under low
// concurrency it returns exactly what GenerarFolio would.
func GenerarFolioUnico(db *gorm.DB) (string, error) {
	const maxRetries = 10

	var total int64
	if err := db.Model(&models.Demanda{}).Count(&total).Error; err != nil {
		return "", fmt.Errorf("failed to count demandas: %w", err)
	}

	year := time.Now().Year()
	for i := 0; i < maxRetries; i++ {
		folio := FormatFolio(year, int(total)+1+i)

		var count int64
		if err := db.Model(&models.Demanda{}).Where("folio = ?", folio).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check folio uniqueness: %w", err)
		}
		if count == 0 {
			return folio, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique folio after %d retries", maxRetries)
}
