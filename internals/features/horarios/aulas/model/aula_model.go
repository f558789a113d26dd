// file: internals/features/horarios/aulas/model/aula_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AulaTipoEnum string

const (
	AulaTipoTeoria      AulaTipoEnum = "teoria"
	AulaTipoLaboratorio AulaTipoEnum = "laboratorio"
	AulaTipoAuditorio   AulaTipoEnum = "auditorio"
)

func (t AulaTipoEnum) Valido() bool {
	switch t {
	case AulaTipoTeoria, AulaTipoLaboratorio, AulaTipoAuditorio:
		return true
	}
	return false
}

type AulaModel struct {
	AulaID uuid.UUID `gorm:"column:aula_id;type:uuid;default:gen_random_uuid();primaryKey" json:"aula_id"`

	AulaCodigo string `gorm:"column:aula_codigo;type:varchar(20);not null"  json:"aula_codigo"` // ej. "R-204"
	AulaNombre string `gorm:"column:aula_nombre;type:varchar(120);not null" json:"aula_nombre"`

	AulaCapacidad int          `gorm:"column:aula_capacidad;not null;default:40"                json:"aula_capacidad"`
	AulaTipo      AulaTipoEnum `gorm:"column:aula_tipo;type:varchar(20);not null;default:'teoria'" json:"aula_tipo"`

	// equipamiento fijo del ambiente (proyector, pizarras, PCs...)
	AulaEquipamiento pq.StringArray `gorm:"column:aula_equipamiento;type:text[]" json:"aula_equipamiento,omitempty"`

	AulaActivo    bool           `gorm:"column:aula_activo;not null;default:true"         json:"aula_activo"`
	AulaCreatedAt time.Time      `gorm:"column:aula_created_at;not null;autoCreateTime"   json:"aula_created_at"`
	AulaUpdatedAt time.Time      `gorm:"column:aula_updated_at;not null;autoUpdateTime"   json:"aula_updated_at"`
	AulaDeletedAt gorm.DeletedAt `gorm:"column:aula_deleted_at;index"                     json:"aula_deleted_at,omitempty"`
}

func (AulaModel) TableName() string { return "aulas" }
