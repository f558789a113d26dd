// file: internals/features/horarios/bloques/dto/bloque_dto.go
package dto

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portalacademico_backend/internals/constants"
	m "portalacademico_backend/internals/features/horarios/bloques/model"
	helper "portalacademico_backend/internals/helpers"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateBloqueRequest struct {
	Dia    int    `json:"bloque_dia" validate:"required,min=1,max=7"`
	Inicio string `json:"bloque_inicio" validate:"required"` // "HH:MM"
	Fin    string `json:"bloque_fin" validate:"required"`    // "HH:MM"
	Activo *bool  `json:"bloque_activo"`
}

// ToModel valida la forma horaria y el invariante de duración
// (0 < duración ≤ 360 min) antes de tocar la BD.
func (r *CreateBloqueRequest) ToModel() (m.BloqueModel, error) {
	if !constants.DiaValido(r.Dia) {
		return m.BloqueModel{}, fiber.NewError(fiber.StatusBadRequest, "Día de la semana no válido")
	}
	inicio, err := helper.ParseHoraMin(r.Inicio)
	if err != nil {
		return m.BloqueModel{}, fiber.NewError(fiber.StatusBadRequest, "Hora de inicio no válida")
	}
	fin, err := helper.ParseHoraMin(r.Fin)
	if err != nil {
		return m.BloqueModel{}, fiber.NewError(fiber.StatusBadRequest, "Hora de fin no válida")
	}

	dur := fin - inicio
	if dur <= 0 {
		return m.BloqueModel{}, fiber.NewError(fiber.StatusBadRequest, "La hora de fin debe ser posterior a la de inicio")
	}
	if dur > m.DuracionMaxMin {
		return m.BloqueModel{}, fiber.NewError(fiber.StatusBadRequest, "La duración del bloque no puede superar las 6 horas")
	}

	mod := m.BloqueModel{
		BloqueDia:       r.Dia,
		BloqueInicioMin: inicio,
		BloqueFinMin:    fin,
		BloqueActivo:    true,
	}
	if r.Activo != nil {
		mod.BloqueActivo = *r.Activo
	}
	return mod, nil
}

/* =========================================================
   RESPONSE (duración y turno derivados, nunca almacenados)
   ========================================================= */

type BloqueResponse struct {
	BloqueID uuid.UUID `json:"bloque_id"`

	Dia       int    `json:"bloque_dia"`
	DiaNombre string `json:"bloque_dia_nombre"`

	Inicio string `json:"bloque_inicio"`
	Fin    string `json:"bloque_fin"`

	DuracionMin int         `json:"bloque_duracion_min"`
	Turno       m.TurnoEnum `json:"bloque_turno"`

	Activo bool `json:"bloque_activo"`
}

func FromBloqueModel(mod m.BloqueModel) BloqueResponse {
	return BloqueResponse{
		BloqueID:    mod.BloqueID,
		Dia:         mod.BloqueDia,
		DiaNombre:   constants.NombreDia(mod.BloqueDia),
		Inicio:      helper.FormatHoraMin(mod.BloqueInicioMin),
		Fin:         helper.FormatHoraMin(mod.BloqueFinMin),
		DuracionMin: mod.DuracionMin(),
		Turno:       mod.Turno(),
		Activo:      mod.BloqueActivo,
	}
}

func FromBloqueModels(mods []m.BloqueModel) []BloqueResponse {
	out := make([]BloqueResponse, 0, len(mods))
	for _, mod := range mods {
		out = append(out, FromBloqueModel(mod))
	}
	return out
}
