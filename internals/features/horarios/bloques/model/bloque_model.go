// file: internals/features/horarios/bloques/model/bloque_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TurnoEnum string

const (
	TurnoManana TurnoEnum = "mañana"
	TurnoTarde  TurnoEnum = "tarde"
	TurnoNoche  TurnoEnum = "noche"
)

// Duración máxima de un bloque semanal: 6 horas.
const DuracionMaxMin = 360

// TurnoDeInicio clasifica el turno según la hora de inicio.
// Umbral vespertino: 19:00 (decisión registrada en DESIGN.md; las pantallas
// originales discrepaban entre 18:00 y 19:00).
func TurnoDeInicio(inicioMin int) TurnoEnum {
	switch {
	case inicioMin < 12*60:
		return TurnoManana
	case inicioMin < 19*60:
		return TurnoTarde
	default:
		return TurnoNoche
	}
}

// Bloque horario semanal: día + inicio/fin con precisión de minutos.
type BloqueModel struct {
	BloqueID uuid.UUID `gorm:"column:bloque_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bloque_id"`

	BloqueDia       int `gorm:"column:bloque_dia;type:smallint;not null"        json:"bloque_dia"` // 1=Lunes..7=Domingo
	BloqueInicioMin int `gorm:"column:bloque_inicio_min;type:smallint;not null" json:"bloque_inicio_min"`
	BloqueFinMin    int `gorm:"column:bloque_fin_min;type:smallint;not null"    json:"bloque_fin_min"`

	BloqueActivo bool `gorm:"column:bloque_activo;not null;default:true" json:"bloque_activo"`

	BloqueCreatedAt time.Time      `gorm:"column:bloque_created_at;not null;autoCreateTime" json:"bloque_created_at"`
	BloqueUpdatedAt time.Time      `gorm:"column:bloque_updated_at;not null;autoUpdateTime" json:"bloque_updated_at"`
	BloqueDeletedAt gorm.DeletedAt `gorm:"column:bloque_deleted_at;index"                   json:"bloque_deleted_at,omitempty"`
}

func (BloqueModel) TableName() string { return "bloques_horarios" }

func (m *BloqueModel) DuracionMin() int {
	return m.BloqueFinMin - m.BloqueInicioMin
}

func (m *BloqueModel) Turno() TurnoEnum {
	return TurnoDeInicio(m.BloqueInicioMin)
}
