// file: internals/features/academico/cursos/model/curso_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CursoTipoEnum string

const (
	CursoTipoObligatorio    CursoTipoEnum = "obligatorio"
	CursoTipoElectivo       CursoTipoEnum = "electivo"
	CursoTipoComplementario CursoTipoEnum = "complementario"
)

func (t CursoTipoEnum) Valido() bool {
	switch t {
	case CursoTipoObligatorio, CursoTipoElectivo, CursoTipoComplementario:
		return true
	}
	return false
}

// NOTE:
// - curso_codigo: único entre filas vivas (índice parcial, ver databases.Migrate)
// - soft delete con gorm.DeletedAt (TIMESTAMPTZ)
type CursoModel struct {
	CursoID uuid.UUID `gorm:"column:curso_id;type:uuid;default:gen_random_uuid();primaryKey" json:"curso_id"`

	CursoCodigo string `gorm:"column:curso_codigo;type:varchar(20);not null"  json:"curso_codigo"`
	CursoNombre string `gorm:"column:curso_nombre;type:varchar(120);not null" json:"curso_nombre"`

	CursoCreditos      int `gorm:"column:curso_creditos;not null"                json:"curso_creditos"`
	CursoCiclo         int `gorm:"column:curso_ciclo;not null"                   json:"curso_ciclo"`
	CursoHorasTeoria   int `gorm:"column:curso_horas_teoria;not null;default:0"  json:"curso_horas_teoria"`
	CursoHorasPractica int `gorm:"column:curso_horas_practica;not null;default:0" json:"curso_horas_practica"`

	CursoTipo CursoTipoEnum `gorm:"column:curso_tipo;type:varchar(20);not null;default:'obligatorio'" json:"curso_tipo"`

	CursoActivo    bool           `gorm:"column:curso_activo;not null;default:true"           json:"curso_activo"`
	CursoCreatedAt time.Time      `gorm:"column:curso_created_at;not null;autoCreateTime"     json:"curso_created_at"`
	CursoUpdatedAt time.Time      `gorm:"column:curso_updated_at;not null;autoUpdateTime"     json:"curso_updated_at"`
	CursoDeletedAt gorm.DeletedAt `gorm:"column:curso_deleted_at;index"                       json:"curso_deleted_at,omitempty"`
}

func (CursoModel) TableName() string { return "cursos" }
