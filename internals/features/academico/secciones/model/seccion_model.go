// file: internals/features/academico/secciones/model/seccion_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeccionModel struct {
	SeccionID uuid.UUID `gorm:"column:seccion_id;type:uuid;default:gen_random_uuid();primaryKey" json:"seccion_id"`

	SeccionCodigo  string `gorm:"column:seccion_codigo;type:varchar(10);not null"  json:"seccion_codigo"`
	SeccionPeriodo string `gorm:"column:seccion_periodo;type:varchar(10);not null" json:"seccion_periodo"` // ej. "2026-II"

	SeccionCapacidad int  `gorm:"column:seccion_capacidad;not null;default:40" json:"seccion_capacidad"`
	SeccionActivo    bool `gorm:"column:seccion_activo;not null;default:true"  json:"seccion_activo"`

	SeccionCreatedAt time.Time      `gorm:"column:seccion_created_at;not null;autoCreateTime" json:"seccion_created_at"`
	SeccionUpdatedAt time.Time      `gorm:"column:seccion_updated_at;not null;autoUpdateTime" json:"seccion_updated_at"`
	SeccionDeletedAt gorm.DeletedAt `gorm:"column:seccion_deleted_at;index"                   json:"seccion_deleted_at,omitempty"`
}

func (SeccionModel) TableName() string { return "secciones" }
