// file: internals/features/academico/docentes/model/docente_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registro mínimo de docente: lo justo para las listas de referencia del
// flujo de asignación. La gestión de personas vive en otro sistema.
type DocenteModel struct {
	DocenteID uuid.UUID `gorm:"column:docente_id;type:uuid;default:gen_random_uuid();primaryKey" json:"docente_id"`

	DocenteCodigo  string `gorm:"column:docente_codigo;type:varchar(20);not null"  json:"docente_codigo"`
	DocenteNombres string `gorm:"column:docente_nombres;type:varchar(120);not null" json:"docente_nombres"`
	DocenteEmail   string `gorm:"column:docente_email;type:varchar(120);not null"   json:"docente_email"`

	DocenteActivo bool `gorm:"column:docente_activo;not null;default:true" json:"docente_activo"`

	DocenteCreatedAt time.Time      `gorm:"column:docente_created_at;not null;autoCreateTime" json:"docente_created_at"`
	DocenteUpdatedAt time.Time      `gorm:"column:docente_updated_at;not null;autoUpdateTime" json:"docente_updated_at"`
	DocenteDeletedAt gorm.DeletedAt `gorm:"column:docente_deleted_at;index"                   json:"docente_deleted_at,omitempty"`
}

func (DocenteModel) TableName() string { return "docentes" }
