// file: internals/features/academico/cursos/dto/curso_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "portalacademico_backend/internals/features/academico/cursos/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateCursoRequest struct {
	Codigo string `json:"curso_codigo" validate:"required,min=2,max=20"`
	Nombre string `json:"curso_nombre" validate:"required,min=2,max=120"`

	Creditos      int `json:"curso_creditos" validate:"required,min=1,max=20"`
	Ciclo         int `json:"curso_ciclo" validate:"required,min=1,max=10"`
	HorasTeoria   int `json:"curso_horas_teoria" validate:"min=0,max=20"`
	HorasPractica int `json:"curso_horas_practica" validate:"min=0,max=20"`

	Tipo   m.CursoTipoEnum `json:"curso_tipo" validate:"omitempty,oneof=obligatorio electivo complementario"`
	Activo *bool           `json:"curso_activo"`
}

func (r *CreateCursoRequest) Normalize() {
	r.Codigo = strings.ToUpper(strings.TrimSpace(r.Codigo))
	r.Nombre = strings.TrimSpace(r.Nombre)
	if r.Tipo == "" {
		r.Tipo = m.CursoTipoObligatorio
	}
}

func (r *CreateCursoRequest) ToModel() m.CursoModel {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return m.CursoModel{
		CursoCodigo:        r.Codigo,
		CursoNombre:        r.Nombre,
		CursoCreditos:      r.Creditos,
		CursoCiclo:         r.Ciclo,
		CursoHorasTeoria:   r.HorasTeoria,
		CursoHorasPractica: r.HorasPractica,
		CursoTipo:          r.Tipo,
		CursoActivo:        activo,
	}
}

/* =========================================================
   UPDATE (campos opcionales; ausente = sin cambio)
   ========================================================= */

type UpdateCursoRequest struct {
	Codigo *string `json:"curso_codigo" validate:"omitempty,min=2,max=20"`
	Nombre *string `json:"curso_nombre" validate:"omitempty,min=2,max=120"`

	Creditos      *int `json:"curso_creditos" validate:"omitempty,min=1,max=20"`
	Ciclo         *int `json:"curso_ciclo" validate:"omitempty,min=1,max=10"`
	HorasTeoria   *int `json:"curso_horas_teoria" validate:"omitempty,min=0,max=20"`
	HorasPractica *int `json:"curso_horas_practica" validate:"omitempty,min=0,max=20"`

	Tipo   *m.CursoTipoEnum `json:"curso_tipo" validate:"omitempty,oneof=obligatorio electivo complementario"`
	Activo *bool            `json:"curso_activo"`
}

func (r *UpdateCursoRequest) Normalize() {
	if r.Codigo != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Codigo))
		r.Codigo = &v
	}
	if r.Nombre != nil {
		v := strings.TrimSpace(*r.Nombre)
		r.Nombre = &v
	}
}

// Apply vuelca los campos presentes sobre el modelo.
func (r *UpdateCursoRequest) Apply(mod *m.CursoModel) {
	if r.Codigo != nil {
		mod.CursoCodigo = *r.Codigo
	}
	if r.Nombre != nil {
		mod.CursoNombre = *r.Nombre
	}
	if r.Creditos != nil {
		mod.CursoCreditos = *r.Creditos
	}
	if r.Ciclo != nil {
		mod.CursoCiclo = *r.Ciclo
	}
	if r.HorasTeoria != nil {
		mod.CursoHorasTeoria = *r.HorasTeoria
	}
	if r.HorasPractica != nil {
		mod.CursoHorasPractica = *r.HorasPractica
	}
	if r.Tipo != nil {
		mod.CursoTipo = *r.Tipo
	}
	if r.Activo != nil {
		mod.CursoActivo = *r.Activo
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type CursoResponse struct {
	CursoID uuid.UUID `json:"curso_id"`

	Codigo string `json:"curso_codigo"`
	Nombre string `json:"curso_nombre"`

	Creditos      int `json:"curso_creditos"`
	Ciclo         int `json:"curso_ciclo"`
	HorasTeoria   int `json:"curso_horas_teoria"`
	HorasPractica int `json:"curso_horas_practica"`

	Tipo   m.CursoTipoEnum `json:"curso_tipo"`
	Activo bool            `json:"curso_activo"`

	CreatedAt time.Time `json:"curso_created_at"`
	UpdatedAt time.Time `json:"curso_updated_at"`
}

func FromCursoModel(mod m.CursoModel) CursoResponse {
	return CursoResponse{
		CursoID:       mod.CursoID,
		Codigo:        mod.CursoCodigo,
		Nombre:        mod.CursoNombre,
		Creditos:      mod.CursoCreditos,
		Ciclo:         mod.CursoCiclo,
		HorasTeoria:   mod.CursoHorasTeoria,
		HorasPractica: mod.CursoHorasPractica,
		Tipo:          mod.CursoTipo,
		Activo:        mod.CursoActivo,
	}
}

func FromCursoModels(mods []m.CursoModel) []CursoResponse {
	out := make([]CursoResponse, 0, len(mods))
	for _, mod := range mods {
		r := FromCursoModel(mod)
		r.CreatedAt = mod.CursoCreatedAt
		r.UpdatedAt = mod.CursoUpdatedAt
		out = append(out, r)
	}
	return out
}

// Prerrequisito denormalizado (código + nombre) para el listado del editor.
type PrerrequisitoItem struct {
	RequisitoID uuid.UUID `json:"requisito_id"`
	Codigo      string    `json:"requisito_codigo"`
	Nombre      string    `json:"requisito_nombre"`
}

type CursoConPrerrequisitosResponse struct {
	CursoResponse
	Prerrequisitos []PrerrequisitoItem `json:"prerrequisitos"`
}
