// file: internals/features/academico/prerrequisitos/dto/prerrequisito_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "portalacademico_backend/internals/features/academico/prerrequisitos/model"
)

type CreatePrerrequisitoRequest struct {
	CursoID     uuid.UUID `json:"curso_id" validate:"required"`
	RequisitoID uuid.UUID `json:"requisito_id" validate:"required"`
}

func (r *CreatePrerrequisitoRequest) ToModel() m.PrerrequisitoModel {
	return m.PrerrequisitoModel{
		PrerrequisitoCursoID:     r.CursoID,
		PrerrequisitoRequisitoID: r.RequisitoID,
	}
}

// Reemplazo atómico del conjunto completo de requisitos de un curso.
// Un arreglo vacío es válido (deja al curso sin prerrequisitos); el
// controlador solo exige que el campo venga presente, a mano.
type ReplacePrerrequisitosRequest struct {
	RequisitoIDs []uuid.UUID `json:"requisito_ids"`
}

type PrerrequisitoResponse struct {
	PrerrequisitoID uuid.UUID `json:"prerrequisito_id"`
	CursoID         uuid.UUID `json:"curso_id"`
	RequisitoID     uuid.UUID `json:"requisito_id"`
	CreatedAt       time.Time `json:"prerrequisito_created_at"`
}

func FromPrerrequisitoModel(mod m.PrerrequisitoModel) PrerrequisitoResponse {
	return PrerrequisitoResponse{
		PrerrequisitoID: mod.PrerrequisitoID,
		CursoID:         mod.PrerrequisitoCursoID,
		RequisitoID:     mod.PrerrequisitoRequisitoID,
		CreatedAt:       mod.PrerrequisitoCreatedAt,
	}
}

func FromPrerrequisitoModels(mods []m.PrerrequisitoModel) []PrerrequisitoResponse {
	out := make([]PrerrequisitoResponse, 0, len(mods))
	for _, mod := range mods {
		out = append(out, FromPrerrequisitoModel(mod))
	}
	return out
}
