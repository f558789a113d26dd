// file: internals/features/horarios/asignaciones/controller/asignacion_controller.go
package controller

import (
	"errors"

	cursoModel "portalacademico_backend/internals/features/academico/cursos/model"
	docenteModel "portalacademico_backend/internals/features/academico/docentes/model"
	seccionModel "portalacademico_backend/internals/features/academico/secciones/model"
	asignacionDTO "portalacademico_backend/internals/features/horarios/asignaciones/dto"
	asignacionModel "portalacademico_backend/internals/features/horarios/asignaciones/model"
	aulaModel "portalacademico_backend/internals/features/horarios/aulas/model"
	bloqueDTO "portalacademico_backend/internals/features/horarios/bloques/dto"
	bloqueModel "portalacademico_backend/internals/features/horarios/bloques/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const msgAulaOcupada = "El aula ya está ocupada en ese bloque horario"

type AsignacionesController struct {
	DB *gorm.DB
}

// referencias carga las cinco entidades referenciadas dentro de la transacción.
type referencias struct {
	curso   cursoModel.CursoModel
	seccion seccionModel.SeccionModel
	docente docenteModel.DocenteModel
	bloque  bloqueModel.BloqueModel
	aula    aulaModel.AulaModel
}

func cargarReferencias(tx *gorm.DB, req *asignacionDTO.CreateAsignacionRequest) (*referencias, error) {
	var refs referencias
	busquedas := []struct {
		dst    any
		where  string
		id     any
		noHay  string
	}{
		{&refs.curso, "curso_id = ?", req.CursoID, "Curso no encontrado"},
		{&refs.seccion, "seccion_id = ?", req.SeccionID, "Sección no encontrada"},
		{&refs.docente, "docente_id = ?", req.DocenteID, "Docente no encontrado"},
		{&refs.bloque, "bloque_id = ?", req.BloqueID, "Bloque horario no encontrado"},
		{&refs.aula, "aula_id = ?", req.AulaID, "Aula no encontrada"},
	}
	for _, b := range busquedas {
		if err := tx.Where(b.where, b.id).First(b.dst).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, b.noHay)
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar referencias")
		}
	}
	return &refs, nil
}

// resumen arma el snapshot jsonb con las etiquetas vigentes al escribir.
func resumen(refs *referencias) datatypes.JSONMap {
	b := bloqueDTO.FromBloqueModel(refs.bloque)
	return datatypes.JSONMap{
		"curso":   refs.curso.CursoCodigo + " " + refs.curso.CursoNombre,
		"seccion": refs.seccion.SeccionCodigo + " (" + refs.seccion.SeccionPeriodo + ")",
		"docente": refs.docente.DocenteNombres,
		"aula":    refs.aula.AulaCodigo,
		"bloque":  b.DiaNombre + " " + b.Inicio + "-" + b.Fin,
		"turno":   string(b.Turno),
	}
}

/* =========================================================
   CREATE
   POST /api/a/asignaciones
   El conflicto (bloque, aula) lo decide el índice único de la
   BD: la consulta de disponibilidad del cliente es solo una
   conveniencia de UX y puede estar desactualizada.
   ========================================================= */
func (h *AsignacionesController) CreateAsignacion(c *fiber.Ctx) error {
	var req asignacionDTO.CreateAsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		refs, err := cargarReferencias(tx, &req)
		if err != nil {
			return err
		}
		if !refs.bloque.BloqueActivo {
			return fiber.NewError(fiber.StatusBadRequest, "El bloque horario está inactivo")
		}
		if req.AlumnosEstimados > refs.aula.AulaCapacidad {
			return fiber.NewError(fiber.StatusBadRequest, "Los alumnos estimados exceden la capacidad del aula")
		}

		mod := req.ToModel()
		mod.AsignacionResumen = resumen(refs)

		if err := tx.Create(&mod).Error; err != nil {
			status, msg := helper.MapPGError(err, msgAulaOcupada)
			return fiber.NewError(status, msg)
		}
		c.Locals("asignacion_creada", mod)
		return nil
	}); err != nil {
		return err
	}

	mod := c.Locals("asignacion_creada").(asignacionModel.AsignacionModel)
	return helper.JsonCreated(c, "Asignación registrada", asignacionDTO.FromAsignacionModel(mod))
}

/* =========================================================
   LIST
   GET /api/a/asignaciones?curso_id=&docente_id=&bloque_id=&page=&per_page=
   ========================================================= */
func (h *AsignacionesController) ListAsignaciones(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.WithContext(c.UserContext()).Model(&asignacionModel.AsignacionModel{})

	filtros := map[string]string{
		"asignacion_curso_id = ?":   "curso_id",
		"asignacion_docente_id = ?": "docente_id",
		"asignacion_bloque_id = ?":  "bloque_id",
		"asignacion_aula_id = ?":    "aula_id",
	}
	for cond, param := range filtros {
		if v := c.Query(param); v != "" {
			tx = tx.Where(cond, v)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo contar asignaciones")
	}

	var mods []asignacionModel.AsignacionModel
	if err := tx.
		Order("asignacion_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar asignaciones")
	}

	data := asignacionDTO.FromAsignacionModels(mods)
	return helper.JsonList(c, "Listado de asignaciones",
		data, helper.BuildPagination(total, paging.Page, paging.PerPage, len(data)))
}

// GET /api/a/asignaciones/:id
func (h *AsignacionesController) GetAsignacion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var mod asignacionModel.AsignacionModel
	if err := h.DB.WithContext(c.UserContext()).Where("asignacion_id = ?", id).First(&mod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Asignación no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la asignación")
	}
	return helper.JsonOK(c, "Detalle de asignación", asignacionDTO.FromAsignacionModel(mod))
}

/* =========================================================
   UPDATE
   PUT /api/a/asignaciones/:id
   Mismo payload que el create: la ficha completa viaja siempre.
   ========================================================= */
func (h *AsignacionesController) UpdateAsignacion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req asignacionDTO.CreateAsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var mod asignacionModel.AsignacionModel
		if err := tx.Where("asignacion_id = ?", id).First(&mod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Asignación no encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la asignación")
		}

		refs, err := cargarReferencias(tx, &req)
		if err != nil {
			return err
		}
		if req.AlumnosEstimados > refs.aula.AulaCapacidad {
			return fiber.NewError(fiber.StatusBadRequest, "Los alumnos estimados exceden la capacidad del aula")
		}

		mod.AsignacionCursoID = req.CursoID
		mod.AsignacionSeccionID = req.SeccionID
		mod.AsignacionDocenteID = req.DocenteID
		mod.AsignacionBloqueID = req.BloqueID
		mod.AsignacionAulaID = req.AulaID
		mod.AsignacionAlumnosEstimados = req.AlumnosEstimados
		mod.AsignacionObservaciones = req.Observaciones
		mod.AsignacionResumen = resumen(refs)

		if err := tx.Save(&mod).Error; err != nil {
			status, msg := helper.MapPGError(err, msgAulaOcupada)
			return fiber.NewError(status, msg)
		}
		c.Locals("asignacion_actualizada", mod)
		return nil
	}); err != nil {
		return err
	}

	mod := c.Locals("asignacion_actualizada").(asignacionModel.AsignacionModel)
	return helper.JsonUpdated(c, "Asignación actualizada", asignacionDTO.FromAsignacionModel(mod))
}

// DELETE /api/a/asignaciones/:id
func (h *AsignacionesController) DeleteAsignacion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&asignacionModel.AsignacionModel{}, "asignacion_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la asignación")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Asignación no encontrada")
	}
	return helper.JsonDeleted(c, "Asignación eliminada", fiber.Map{"asignacion_id": id})
}
