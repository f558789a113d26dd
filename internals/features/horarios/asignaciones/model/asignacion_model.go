// file: internals/features/horarios/asignaciones/model/asignacion_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Asignación de (curso, sección, docente, bloque, aula) para un periodo.
// Invariante: a lo más una asignación viva por (bloque, aula) — índice único
// parcial uq_asignaciones_bloque_aula_vivo; la BD es el árbitro final.
type AsignacionModel struct {
	AsignacionID uuid.UUID `gorm:"column:asignacion_id;type:uuid;default:gen_random_uuid();primaryKey" json:"asignacion_id"`

	AsignacionCursoID   uuid.UUID `gorm:"column:asignacion_curso_id;type:uuid;not null;index"   json:"asignacion_curso_id"`
	AsignacionSeccionID uuid.UUID `gorm:"column:asignacion_seccion_id;type:uuid;not null;index" json:"asignacion_seccion_id"`
	AsignacionDocenteID uuid.UUID `gorm:"column:asignacion_docente_id;type:uuid;not null;index" json:"asignacion_docente_id"`
	AsignacionBloqueID  uuid.UUID `gorm:"column:asignacion_bloque_id;type:uuid;not null;index"  json:"asignacion_bloque_id"`
	AsignacionAulaID    uuid.UUID `gorm:"column:asignacion_aula_id;type:uuid;not null;index"    json:"asignacion_aula_id"`

	AsignacionAlumnosEstimados int     `gorm:"column:asignacion_alumnos_estimados;not null" json:"asignacion_alumnos_estimados"`
	AsignacionObservaciones    *string `gorm:"column:asignacion_observaciones;type:text"    json:"asignacion_observaciones,omitempty"`

	// Snapshot denormalizado (códigos/nombres al momento de escribir):
	// lo llena el backend, nunca el cliente.
	AsignacionResumen datatypes.JSONMap `gorm:"column:asignacion_resumen;type:jsonb;not null" json:"asignacion_resumen"`

	AsignacionCreatedAt time.Time      `gorm:"column:asignacion_created_at;not null;autoCreateTime" json:"asignacion_created_at"`
	AsignacionUpdatedAt time.Time      `gorm:"column:asignacion_updated_at;not null;autoUpdateTime" json:"asignacion_updated_at"`
	AsignacionDeletedAt gorm.DeletedAt `gorm:"column:asignacion_deleted_at;index"                   json:"asignacion_deleted_at,omitempty"`
}

func (AsignacionModel) TableName() string { return "asignaciones" }

func (m *AsignacionModel) BeforeSave(tx *gorm.DB) error {
	if m.AsignacionResumen == nil {
		m.AsignacionResumen = datatypes.JSONMap{}
	}
	return nil
}
