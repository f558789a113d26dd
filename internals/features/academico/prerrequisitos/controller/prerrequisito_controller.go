// file: internals/features/academico/prerrequisitos/controller/prerrequisito_controller.go
package controller

import (
	"errors"

	cursoModel "portalacademico_backend/internals/features/academico/cursos/model"
	prereqDTO "portalacademico_backend/internals/features/academico/prerrequisitos/dto"
	prereqModel "portalacademico_backend/internals/features/academico/prerrequisitos/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrerrequisitosController struct {
	DB *gorm.DB
}

func cursoVivoExiste(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var cnt int64
	err := tx.Model(&cursoModel.CursoModel{}).
		Where("curso_id = ?", id).
		Count(&cnt).Error
	return cnt > 0, err
}

// alcanzable recorre el grafo en anchura y responde si hasta es
// alcanzable desde desde. El camino vacío cuenta: alcanzable(x, x)
// es true aunque x no tenga aristas.
func alcanzable(ady map[uuid.UUID][]uuid.UUID, desde, hasta uuid.UUID) bool {
	visitado := map[uuid.UUID]bool{}
	cola := []uuid.UUID{desde}
	for len(cola) > 0 {
		actual := cola[0]
		cola = cola[1:]
		if actual == hasta {
			return true
		}
		if visitado[actual] {
			continue
		}
		visitado[actual] = true
		cola = append(cola, ady[actual]...)
	}
	return false
}

// provocaCiclo evalúa si, con las aristas de cursoID reemplazadas por
// nuevos, cursoID queda alcanzable desde alguno de sus requisitos. Camina
// el grafo almacenado en memoria; el catálogo de una facultad es pequeño.
func provocaCiclo(tx *gorm.DB, cursoID uuid.UUID, nuevos []uuid.UUID) (bool, error) {
	var aristas []prereqModel.PrerrequisitoModel
	if err := tx.Where("prerrequisito_curso_id <> ?", cursoID).Find(&aristas).Error; err != nil {
		return false, err
	}

	adyacencia := make(map[uuid.UUID][]uuid.UUID, len(aristas)+1)
	for _, a := range aristas {
		adyacencia[a.PrerrequisitoCursoID] = append(adyacencia[a.PrerrequisitoCursoID], a.PrerrequisitoRequisitoID)
	}
	adyacencia[cursoID] = nuevos

	for _, n := range nuevos {
		if alcanzable(adyacencia, n, cursoID) {
			return true, nil
		}
	}
	return false, nil
}

/* =========================================================
   CREATE (arista suelta)
   POST /api/a/prerrequisitos
   ========================================================= */
func (h *PrerrequisitosController) CreatePrerrequisito(c *fiber.Ctx) error {
	var req prereqDTO.CreatePrerrequisitoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CursoID == req.RequisitoID {
		return fiber.NewError(fiber.StatusBadRequest, "Un curso no puede ser prerrequisito de sí mismo")
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, id := range []uuid.UUID{req.CursoID, req.RequisitoID} {
			ok, err := cursoVivoExiste(tx, id)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el curso")
			}
			if !ok {
				return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
			}
		}

		var cnt int64
		if err := tx.Model(&prereqModel.PrerrequisitoModel{}).
			Where("prerrequisito_curso_id = ? AND prerrequisito_requisito_id = ?", req.CursoID, req.RequisitoID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar duplicados")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "El prerrequisito ya está registrado")
		}

		// el requisito no debe alcanzar de vuelta al curso
		var existentes []prereqModel.PrerrequisitoModel
		if err := tx.Where("prerrequisito_curso_id = ?", req.CursoID).Find(&existentes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer el grafo")
		}
		nuevos := make([]uuid.UUID, 0, len(existentes)+1)
		for _, e := range existentes {
			nuevos = append(nuevos, e.PrerrequisitoRequisitoID)
		}
		nuevos = append(nuevos, req.RequisitoID)
		ciclo, err := provocaCiclo(tx, req.CursoID, nuevos)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar ciclos")
		}
		if ciclo {
			return fiber.NewError(fiber.StatusConflict, "La arista crearía un ciclo de prerrequisitos")
		}

		mod := req.ToModel()
		if err := tx.Create(&mod).Error; err != nil {
			status, msg := helper.MapPGError(err, "El prerrequisito ya está registrado")
			return fiber.NewError(status, msg)
		}
		c.Locals("arista_creada", mod)
		return nil
	}); err != nil {
		return err
	}

	mod := c.Locals("arista_creada").(prereqModel.PrerrequisitoModel)
	return helper.JsonCreated(c, "Prerrequisito registrado", prereqDTO.FromPrerrequisitoModel(mod))
}

/* =========================================================
   GET POR CURSO
   GET /api/a/prerrequisitos/curso/:curso_id
   ========================================================= */
func (h *PrerrequisitosController) GetPorCurso(c *fiber.Ctx) error {
	cursoID, err := helper.ParseUUIDParam(c, "curso_id")
	if err != nil {
		return err
	}

	var mods []prereqModel.PrerrequisitoModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("prerrequisito_curso_id = ?", cursoID).
		Order("prerrequisito_created_at ASC").
		Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar prerrequisitos")
	}

	return helper.JsonOK(c, "Prerrequisitos del curso", prereqDTO.FromPrerrequisitoModels(mods))
}

/* =========================================================
   REPLACE ATÓMICO
   PUT /api/a/prerrequisitos/curso/:curso_id
   Reemplaza el conjunto completo en una sola transacción:
   cierra la ventana de fallo parcial del viejo borrar-y-recrear
   conducido por el cliente.
   ========================================================= */
func (h *PrerrequisitosController) ReplacePorCurso(c *fiber.Ctx) error {
	cursoID, err := helper.ParseUUIDParam(c, "curso_id")
	if err != nil {
		return err
	}

	var req prereqDTO.ReplacePrerrequisitosRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if req.RequisitoIDs == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falta el arreglo requisito_ids")
	}

	// dedupe preservando orden + guardia de autociclo
	vistos := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, len(req.RequisitoIDs))
	for _, id := range req.RequisitoIDs {
		if id == cursoID {
			return fiber.NewError(fiber.StatusBadRequest, "Un curso no puede ser prerrequisito de sí mismo")
		}
		if vistos[id] {
			continue
		}
		vistos[id] = true
		ids = append(ids, id)
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		ok, err := cursoVivoExiste(tx, cursoID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el curso")
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
		}

		if len(ids) > 0 {
			var cnt int64
			if err := tx.Model(&cursoModel.CursoModel{}).
				Where("curso_id IN ?", ids).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar requisitos")
			}
			if cnt != int64(len(ids)) {
				return fiber.NewError(fiber.StatusNotFound, "Algún curso requisito no existe")
			}

			ciclo, err := provocaCiclo(tx, cursoID, ids)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar ciclos")
			}
			if ciclo {
				return fiber.NewError(fiber.StatusConflict, "El conjunto crearía un ciclo de prerrequisitos")
			}
		}

		if err := tx.
			Where("prerrequisito_curso_id = ?", cursoID).
			Delete(&prereqModel.PrerrequisitoModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo reemplazar el conjunto")
		}

		if len(ids) > 0 {
			mods := make([]prereqModel.PrerrequisitoModel, 0, len(ids))
			for _, id := range ids {
				mods = append(mods, prereqModel.PrerrequisitoModel{
					PrerrequisitoCursoID:     cursoID,
					PrerrequisitoRequisitoID: id,
				})
			}
			if err := tx.Create(&mods).Error; err != nil {
				status, msg := helper.MapPGError(err, "El prerrequisito ya está registrado")
				return fiber.NewError(status, msg)
			}
			c.Locals("aristas_creadas", mods)
		}
		return nil
	}); err != nil {
		return err
	}

	var data []prereqDTO.PrerrequisitoResponse
	if mods, ok := c.Locals("aristas_creadas").([]prereqModel.PrerrequisitoModel); ok {
		data = prereqDTO.FromPrerrequisitoModels(mods)
	} else {
		data = []prereqDTO.PrerrequisitoResponse{}
	}
	return helper.JsonUpdated(c, "Prerrequisitos reemplazados", data)
}

/* =========================================================
   DELETE ALL POR CURSO
   DELETE /api/a/prerrequisitos/curso/:curso_id
   ========================================================= */
func (h *PrerrequisitosController) DeletePorCurso(c *fiber.Ctx) error {
	cursoID, err := helper.ParseUUIDParam(c, "curso_id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("prerrequisito_curso_id = ?", cursoID).
		Delete(&prereqModel.PrerrequisitoModel{})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return helper.JsonDeleted(c, "Prerrequisitos eliminados", fiber.Map{"eliminados": 0})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar prerrequisitos")
	}

	return helper.JsonDeleted(c, "Prerrequisitos eliminados", fiber.Map{"eliminados": res.RowsAffected})
}
