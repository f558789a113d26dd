// file: internals/features/academico/cursos/controller/curso_prerrequisitos_controller.go
package controller

import (
	cursoDTO "portalacademico_backend/internals/features/academico/cursos/dto"
	cursoModel "portalacademico_backend/internals/features/academico/cursos/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type filaArista struct {
	CursoID         uuid.UUID `gorm:"column:curso_id"`
	RequisitoID     uuid.UUID `gorm:"column:requisito_id"`
	RequisitoCodigo string    `gorm:"column:requisito_codigo"`
	RequisitoNombre string    `gorm:"column:requisito_nombre"`
}

/* =========================================================
   LISTADO PARA EL EDITOR DE PRERREQUISITOS
   GET /api/a/cursos-con-prerrequisitos
   Solo cursos con ≥1 arista saliente; cada arista denormalizada
   con código y nombre del curso requerido.
   ========================================================= */
func (h *CursosController) ListCursosConPrerrequisitos(c *fiber.Ctx) error {
	var filas []filaArista
	if err := h.DB.WithContext(c.UserContext()).
		Table("prerrequisitos AS p").
		Select(`p.prerrequisito_curso_id  AS curso_id,
			p.prerrequisito_requisito_id  AS requisito_id,
			r.curso_codigo                AS requisito_codigo,
			r.curso_nombre                AS requisito_nombre`).
		Joins("JOIN cursos r ON r.curso_id = p.prerrequisito_requisito_id AND r.curso_deleted_at IS NULL").
		Joins("JOIN cursos s ON s.curso_id = p.prerrequisito_curso_id AND s.curso_deleted_at IS NULL").
		Order("r.curso_codigo ASC").
		Scan(&filas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar prerrequisitos")
	}

	porCurso := make(map[uuid.UUID][]cursoDTO.PrerrequisitoItem, len(filas))
	ids := make([]uuid.UUID, 0, len(filas))
	for _, f := range filas {
		if _, visto := porCurso[f.CursoID]; !visto {
			ids = append(ids, f.CursoID)
		}
		porCurso[f.CursoID] = append(porCurso[f.CursoID], cursoDTO.PrerrequisitoItem{
			RequisitoID: f.RequisitoID,
			Codigo:      f.RequisitoCodigo,
			Nombre:      f.RequisitoNombre,
		})
	}

	data := make([]cursoDTO.CursoConPrerrequisitosResponse, 0, len(ids))
	if len(ids) > 0 {
		var cursos []cursoModel.CursoModel
		if err := h.DB.WithContext(c.UserContext()).
			Where("curso_id IN ?", ids).
			Order("curso_ciclo ASC, curso_codigo ASC").
			Find(&cursos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar cursos")
		}
		for _, mod := range cursos {
			data = append(data, cursoDTO.CursoConPrerrequisitosResponse{
				CursoResponse:  cursoDTO.FromCursoModel(mod),
				Prerrequisitos: porCurso[mod.CursoID],
			})
		}
	}

	return helper.JsonOK(c, "Cursos con prerrequisitos", data)
}
