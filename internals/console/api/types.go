// file: internals/console/api/types.go
package api

import (
	"github.com/google/uuid"
)

// Vistas ligeras de las respuestas del backend. Solo los campos que la
// consola necesita; el resto del payload se ignora al decodificar.

type Curso struct {
	CursoID  uuid.UUID `json:"curso_id"`
	Codigo   string    `json:"curso_codigo"`
	Nombre   string    `json:"curso_nombre"`
	Creditos int       `json:"curso_creditos"`
	Ciclo    int       `json:"curso_ciclo"`
	Tipo     string    `json:"curso_tipo"`
	Activo   bool      `json:"curso_activo"`
}

type Prerrequisito struct {
	RequisitoID uuid.UUID `json:"requisito_id"`
	Codigo      string    `json:"requisito_codigo"`
	Nombre      string    `json:"requisito_nombre"`
}

type CursoConPrerrequisitos struct {
	Curso
	Prerrequisitos []Prerrequisito `json:"prerrequisitos"`
}

type Seccion struct {
	SeccionID uuid.UUID `json:"seccion_id"`
	Codigo    string    `json:"seccion_codigo"`
	Periodo   string    `json:"seccion_periodo"`
	Capacidad int       `json:"seccion_capacidad"`
	Activo    bool      `json:"seccion_activo"`
}

type Docente struct {
	DocenteID uuid.UUID `json:"docente_id"`
	Codigo    string    `json:"docente_codigo"`
	Nombres   string    `json:"docente_nombres"`
	Email     string    `json:"docente_email"`
	Activo    bool      `json:"docente_activo"`
}

type Bloque struct {
	BloqueID    uuid.UUID `json:"bloque_id"`
	Dia         int       `json:"bloque_dia"`
	DiaNombre   string    `json:"bloque_dia_nombre"`
	Inicio      string    `json:"bloque_inicio"`
	Fin         string    `json:"bloque_fin"`
	DuracionMin int       `json:"bloque_duracion_min"`
	Turno       string    `json:"bloque_turno"`
	Activo      bool      `json:"bloque_activo"`
}

type Aula struct {
	AulaID       uuid.UUID `json:"aula_id"`
	Codigo       string    `json:"aula_codigo"`
	Nombre       string    `json:"aula_nombre"`
	Capacidad    int       `json:"aula_capacidad"`
	Tipo         string    `json:"aula_tipo"`
	Equipamiento []string  `json:"aula_equipamiento,omitempty"`
	Activo       bool      `json:"aula_activo"`
}

type AsignacionRequest struct {
	CursoID   uuid.UUID `json:"curso_id"`
	SeccionID uuid.UUID `json:"seccion_id"`
	DocenteID uuid.UUID `json:"docente_id"`
	BloqueID  uuid.UUID `json:"bloque_id"`
	AulaID    uuid.UUID `json:"aula_id"`

	AlumnosEstimados int     `json:"alumnos_estimados"`
	Observaciones    *string `json:"observaciones,omitempty"`
}

type Asignacion struct {
	AsignacionID uuid.UUID `json:"asignacion_id"`

	CursoID   uuid.UUID `json:"curso_id"`
	SeccionID uuid.UUID `json:"seccion_id"`
	DocenteID uuid.UUID `json:"docente_id"`
	BloqueID  uuid.UUID `json:"bloque_id"`
	AulaID    uuid.UUID `json:"aula_id"`

	AlumnosEstimados int            `json:"alumnos_estimados"`
	Observaciones    *string        `json:"observaciones,omitempty"`
	Resumen          map[string]any `json:"resumen"`
}
