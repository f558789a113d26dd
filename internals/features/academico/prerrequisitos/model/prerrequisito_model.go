// file: internals/features/academico/prerrequisitos/model/prerrequisito_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Arista dirigida "curso requiere requisito".
// Invariantes en BD: par (curso, requisito) único; curso <> requisito (CHECK).
// Sin soft delete: la semántica del editor es de reemplazo total del conjunto.
type PrerrequisitoModel struct {
	PrerrequisitoID uuid.UUID `gorm:"column:prerrequisito_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prerrequisito_id"`

	PrerrequisitoCursoID     uuid.UUID `gorm:"column:prerrequisito_curso_id;type:uuid;not null;index"     json:"prerrequisito_curso_id"`
	PrerrequisitoRequisitoID uuid.UUID `gorm:"column:prerrequisito_requisito_id;type:uuid;not null;index" json:"prerrequisito_requisito_id"`

	PrerrequisitoCreatedAt time.Time `gorm:"column:prerrequisito_created_at;not null;autoCreateTime" json:"prerrequisito_created_at"`
}

func (PrerrequisitoModel) TableName() string { return "prerrequisitos" }
