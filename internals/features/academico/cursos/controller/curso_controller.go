// file: internals/features/academico/cursos/controller/curso_controller.go
package controller

import (
	"errors"
	"strings"

	cursoDTO "portalacademico_backend/internals/features/academico/cursos/dto"
	cursoModel "portalacademico_backend/internals/features/academico/cursos/model"
	prereqModel "portalacademico_backend/internals/features/academico/prerrequisitos/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CursosController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/a/cursos
func (h *CursosController) CreateCurso(c *fiber.Ctx) error {
	var req cursoDTO.CreateCursoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// duplicado de código entre filas vivas
		var cnt int64
		if err := tx.Model(&cursoModel.CursoModel{}).
			Where("lower(curso_codigo) = lower(?) AND curso_deleted_at IS NULL", req.Codigo).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar duplicados")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "El código de curso ya está en uso")
		}

		mod := req.ToModel()
		if err := tx.Create(&mod).Error; err != nil {
			status, msg := helper.MapPGError(err, "El código de curso ya está en uso")
			return fiber.NewError(status, msg)
		}

		c.Locals("curso_creado", mod)
		return nil
	}); err != nil {
		return err
	}

	mod := c.Locals("curso_creado").(cursoModel.CursoModel)
	return helper.JsonCreated(c, "Curso creado correctamente", cursoDTO.FromCursoModel(mod))
}

/* =========================================================
   GET BY ID
   GET /api/a/cursos/:id[?with_deleted=true]
   ========================================================= */
func (h *CursosController) GetCurso(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	withDeleted, _ := helper.ParseBoolLoose(c.Query("with_deleted"))

	q := h.DB.WithContext(c.UserContext())
	if withDeleted {
		q = q.Unscoped()
	}

	var mod cursoModel.CursoModel
	if err := q.Where("curso_id = ?", id).First(&mod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el curso")
	}

	return helper.JsonOK(c, "Detalle de curso", cursoDTO.FromCursoModel(mod))
}

/* =========================================================
   LIST
   GET /api/a/cursos?q=&ciclo=&tipo=&activo=&with_deleted=&page=&per_page=
   ========================================================= */
func (h *CursosController) ListCursos(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.WithContext(c.UserContext()).Model(&cursoModel.CursoModel{})

	if withDeleted, _ := helper.ParseBoolLoose(c.Query("with_deleted")); withDeleted {
		tx = tx.Unscoped()
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(curso_codigo) LIKE ? OR lower(curso_nombre) LIKE ?", like, like)
	}
	if ciclo := c.QueryInt("ciclo", 0); ciclo > 0 {
		tx = tx.Where("curso_ciclo = ?", ciclo)
	}
	if tipo := strings.TrimSpace(c.Query("tipo")); tipo != "" {
		if !cursoModel.CursoTipoEnum(tipo).Valido() {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo de curso no válido")
		}
		tx = tx.Where("curso_tipo = ?", tipo)
	}
	if activo, ok := helper.ParseBoolLoose(c.Query("activo")); ok {
		tx = tx.Where("curso_activo = ?", activo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo contar cursos")
	}

	var mods []cursoModel.CursoModel
	if err := tx.
		Order("curso_ciclo ASC, curso_codigo ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar cursos")
	}

	data := cursoDTO.FromCursoModels(mods)
	return helper.JsonList(c, "Listado de cursos",
		data, helper.BuildPagination(total, paging.Page, paging.PerPage, len(data)))
}

/* =========================================================
   UPDATE
   PUT /api/a/cursos/:id
   ========================================================= */
func (h *CursosController) UpdateCurso(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req cursoDTO.UpdateCursoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var mod cursoModel.CursoModel
		if err := tx.Where("curso_id = ?", id).First(&mod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el curso")
		}

		if req.Codigo != nil && !strings.EqualFold(*req.Codigo, mod.CursoCodigo) {
			var cnt int64
			if err := tx.Model(&cursoModel.CursoModel{}).
				Where("lower(curso_codigo) = lower(?) AND curso_deleted_at IS NULL AND curso_id <> ?", *req.Codigo, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar duplicados")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "El código de curso ya está en uso")
			}
		}

		req.Apply(&mod)
		if err := tx.Save(&mod).Error; err != nil {
			status, msg := helper.MapPGError(err, "El código de curso ya está en uso")
			return fiber.NewError(status, msg)
		}

		c.Locals("curso_actualizado", mod)
		return nil
	}); err != nil {
		return err
	}

	mod := c.Locals("curso_actualizado").(cursoModel.CursoModel)
	return helper.JsonUpdated(c, "Curso actualizado correctamente", cursoDTO.FromCursoModel(mod))
}

/* =========================================================
   DELETE (soft; ?force=true elimina definitivamente)
   DELETE /api/a/cursos/:id
   ========================================================= */
func (h *CursosController) DeleteCurso(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	force, _ := helper.ParseBoolLoose(c.Query("force"))

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var mod cursoModel.CursoModel
		if err := tx.Unscoped().Where("curso_id = ?", id).First(&mod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el curso")
		}

		// las aristas que tocan el curso dejan de tener sentido
		if err := tx.
			Where("prerrequisito_curso_id = ? OR prerrequisito_requisito_id = ?", id, id).
			Delete(&prereqModel.PrerrequisitoModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo limpiar prerrequisitos del curso")
		}

		del := tx.Delete(&cursoModel.CursoModel{}, "curso_id = ?", id)
		if force {
			del = tx.Unscoped().Delete(&cursoModel.CursoModel{}, "curso_id = ?", id)
		}
		if del.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el curso")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "Curso eliminado", fiber.Map{"curso_id": id})
}
