package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"sistema_juridico_api/models"
)

// Demanda failures that handlers map to 400/404
var (
	ErrNombreRequerido       = errors.New("nombre y apellido paterno son requeridos")
	ErrDemandadoNoEncontrado = errors.New("no se encontró al demandado")
	ErrPersonaRequerida      = errors.New("ID de persona requerido")
	ErrAutoridadRequerida    = errors.New("ID de autoridad requerido")
)

// Free-text legal fields come straight from the browser; strip any markup
// before they hit the database.
var textoPlano = bluemonday.StrictPolicy()

// BuscarDemandado resolves a respondent by exact name match. The maternal
// surname narrows the search only when supplied. Multiple personas with
// identical names resolve to the first row.
func BuscarDemandado(db *gorm.DB, nombre, apellidoPaterno, apellidoMaterno string) (uint, error) {
	if strings.TrimSpace(nombre) == "" || strings.TrimSpace(apellidoPaterno) == "" {
		return 0, ErrNombreRequerido
	}

	query := db.Model(&models.Persona{}).
		Where("nombre = ? AND apellido_paterno = ?", nombre, apellidoPaterno)
	if apellidoMaterno != "" {
		query = query.Where("apellido_materno = ?", apellidoMaterno)
	}

	var persona models.Persona
	if err := query.First(&persona).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrDemandadoNoEncontrado
		}
		return 0, fmt.Errorf("failed to look up demandado: %w", err)
	}

	return persona.ID, nil
}

// DemandaInput is the case-creation payload after JSON binding
type DemandaInput struct {
	Folio             string
	DemandanteID      uint
	DemandadoID       uint
	Pretensiones      string
	Hechos            string
	FundamentoDerecho string
	TipoAccion        string
}

// CrearDemanda inserts a new case with status "registrada". All seven
// fields are mandatory. A folio that collides with an existing one fails on
// the unique index and nothing is persisted.
func CrearDemanda(db *gorm.DB, input DemandaInput) (uint, error) {
	required := []string{
		input.Folio,
		input.Pretensiones,
		input.Hechos,
		input.FundamentoDerecho,
		input.TipoAccion,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return 0, ErrCamposObligatorios
		}
	}
	if input.DemandanteID == 0 || input.DemandadoID == 0 {
		return 0, ErrCamposObligatorios
	}

	demanda := models.Demanda{
		Folio:             input.Folio,
		DemandanteID:      input.DemandanteID,
		DemandadoID:       input.DemandadoID,
		Pretensiones:      textoPlano.Sanitize(input.Pretensiones),
		Hechos:            textoPlano.Sanitize(input.Hechos),
		FundamentoDerecho: textoPlano.Sanitize(input.FundamentoDerecho),
		TipoAccion:        textoPlano.Sanitize(input.TipoAccion),
		Estatus:           models.EstatusRegistrada,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&demanda).Error; err != nil {
			return fmt.Errorf("failed to create demanda: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return demanda.ID, nil
}

// DemandaPendiente is one row of the unassigned-case queue
type DemandaPendiente struct {
	ID            uint      `json:"id"`
	Folio         string    `json:"folio"`
	TipoAccion    string    `json:"tipo_accion"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	Pretensiones  string    `json:"pretensiones"`
}

// DemandasPendientes lists cases without an assigned authority, newest first
func DemandasPendientes(db *gorm.DB) ([]DemandaPendiente, error) {
	var pendientes []DemandaPendiente
	err := db.Model(&models.Demanda{}).
		Select("id, folio, tipo_accion, fecha_creacion, pretensiones").
		Where("autoridad_asignada_id IS NULL").
		Order("fecha_creacion DESC").
		Scan(&pendientes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending demandas: %w", err)
	}
	return pendientes, nil
}

// AsignarAutoridad routes a case to an authority. Unconditional overwrite:
// re-invocation replaces the reference, and a demanda id that matches no
// row is a silent no-op.
func AsignarAutoridad(db *gorm.DB, demandaID, autoridadID uint) error {
	if autoridadID == 0 {
		return ErrAutoridadRequerida
	}

	err := db.Model(&models.Demanda{}).
		Where("id = ?", demandaID).
		Update("autoridad_asignada_id", autoridadID).Error
	if err != nil {
		return fmt.Errorf("failed to assign autoridad: %w", err)
	}
	return nil
}

// CasoActivo is the minimal projection of a case assigned to an authority
type CasoActivo struct {
	ID         uint   `json:"id"`
	Folio      string `json:"folio"`
	TipoAccion string `json:"tipo_accion"`
	Estatus    string `json:"estatus"`
}

// CasosActivos lists the workload of one authority, newest first
func CasosActivos(db *gorm.DB, autoridadID uint) ([]CasoActivo, error) {
	var activos []CasoActivo
	err := db.Model(&models.Demanda{}).
		Select("id, folio, tipo_accion, estatus").
		Where("autoridad_asignada_id = ?", autoridadID).
		Order("fecha_creacion DESC").
		Scan(&activos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active cases: %w", err)
	}
	return activos, nil
}

// DemandaResumen is one row of the per-person case listing, already
// carrying the display names and fallbacks the front end renders verbatim.
type DemandaResumen struct {
	Folio      string `json:"folio"`
	TipoAccion string `json:"tipo_accion"`
	Estatus    string `json:"estatus"`
	Demandante string `json:"demandante"`
	Demandado  string `json:"demandado"`
	Autoridad  string `json:"autoridad"`
}

// MisDemandas lists every case where the persona is claimant or respondent,
// newest first. An unassigned authority renders as "Por asignar" and an
// empty status as "Vigente".
func MisDemandas(db *gorm.DB, personaID uint) ([]DemandaResumen, error) {
	if personaID == 0 {
		return nil, ErrPersonaRequerida
	}

	var demandas []models.Demanda
	err := db.Preload("Demandante").
		Preload("Demandado").
		Preload("AutoridadAsignada").
		Where("demandante_id = ? OR demandado_id = ?", personaID, personaID).
		Order("fecha_creacion DESC").
		Find(&demandas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list demandas: %w", err)
	}

	resumen := make([]DemandaResumen, 0, len(demandas))
	for _, d := range demandas {
		fila := DemandaResumen{
			Folio:      d.Folio,
			TipoAccion: d.TipoAccion,
			Estatus:    d.Estatus,
			Demandante: d.Demandante.NombreCorto(),
			Demandado:  d.Demandado.NombreCorto(),
			Autoridad:  models.AutoridadPorAsignar,
		}
		if d.AutoridadAsignada != nil {
			fila.Autoridad = d.AutoridadAsignada.NombreCorto()
		}
		if fila.Estatus == "" {
			fila.Estatus = models.EstatusVigente
		}
		resumen = append(resumen, fila)
	}

	return resumen, nil
}
