// file: internals/features/horarios/asignaciones/dto/asignacion_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "portalacademico_backend/internals/features/horarios/asignaciones/model"
)

type CreateAsignacionRequest struct {
	CursoID   uuid.UUID `json:"curso_id" validate:"required"`
	SeccionID uuid.UUID `json:"seccion_id" validate:"required"`
	DocenteID uuid.UUID `json:"docente_id" validate:"required"`
	BloqueID  uuid.UUID `json:"bloque_id" validate:"required"`
	AulaID    uuid.UUID `json:"aula_id" validate:"required"`

	AlumnosEstimados int     `json:"alumnos_estimados" validate:"required,min=1,max=500"`
	Observaciones    *string `json:"observaciones" validate:"omitempty,max=500"`
}

func (r *CreateAsignacionRequest) Normalize() {
	if r.Observaciones != nil {
		v := strings.TrimSpace(*r.Observaciones)
		if v == "" {
			r.Observaciones = nil
		} else {
			r.Observaciones = &v
		}
	}
}

func (r *CreateAsignacionRequest) ToModel() m.AsignacionModel {
	return m.AsignacionModel{
		AsignacionCursoID:          r.CursoID,
		AsignacionSeccionID:        r.SeccionID,
		AsignacionDocenteID:        r.DocenteID,
		AsignacionBloqueID:         r.BloqueID,
		AsignacionAulaID:           r.AulaID,
		AsignacionAlumnosEstimados: r.AlumnosEstimados,
		AsignacionObservaciones:    r.Observaciones,
	}
}

type AsignacionResponse struct {
	AsignacionID uuid.UUID `json:"asignacion_id"`

	CursoID   uuid.UUID `json:"curso_id"`
	SeccionID uuid.UUID `json:"seccion_id"`
	DocenteID uuid.UUID `json:"docente_id"`
	BloqueID  uuid.UUID `json:"bloque_id"`
	AulaID    uuid.UUID `json:"aula_id"`

	AlumnosEstimados int     `json:"alumnos_estimados"`
	Observaciones    *string `json:"observaciones,omitempty"`

	Resumen datatypes.JSONMap `json:"resumen"`

	CreatedAt time.Time `json:"asignacion_created_at"`
	UpdatedAt time.Time `json:"asignacion_updated_at"`
}

func FromAsignacionModel(mod m.AsignacionModel) AsignacionResponse {
	return AsignacionResponse{
		AsignacionID:     mod.AsignacionID,
		CursoID:          mod.AsignacionCursoID,
		SeccionID:        mod.AsignacionSeccionID,
		DocenteID:        mod.AsignacionDocenteID,
		BloqueID:         mod.AsignacionBloqueID,
		AulaID:           mod.AsignacionAulaID,
		AlumnosEstimados: mod.AsignacionAlumnosEstimados,
		Observaciones:    mod.AsignacionObservaciones,
		Resumen:          mod.AsignacionResumen,
		CreatedAt:        mod.AsignacionCreatedAt,
		UpdatedAt:        mod.AsignacionUpdatedAt,
	}
}

func FromAsignacionModels(mods []m.AsignacionModel) []AsignacionResponse {
	out := make([]AsignacionResponse, 0, len(mods))
	for _, mod := range mods {
		out = append(out, FromAsignacionModel(mod))
	}
	return out
}
