// file: internals/features/horarios/aulas/controller/aula_controller.go
package controller

import (
	"errors"
	"strings"

	aulaModel "portalacademico_backend/internals/features/horarios/aulas/model"
	bloqueModel "portalacademico_backend/internals/features/horarios/bloques/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AulasController struct {
	DB *gorm.DB
}

type createAulaRequest struct {
	Codigo       string   `json:"aula_codigo" validate:"required,min=2,max=20"`
	Nombre       string   `json:"aula_nombre" validate:"required,min=2,max=120"`
	Capacidad    *int     `json:"aula_capacidad" validate:"omitempty,min=1,max=500"`
	Tipo         string   `json:"aula_tipo" validate:"omitempty,oneof=teoria laboratorio auditorio"`
	Equipamiento []string `json:"aula_equipamiento"`
	Activo       *bool    `json:"aula_activo"`
}

// POST /api/a/aulas
func (h *AulasController) CreateAula(c *fiber.Ctx) error {
	var req createAulaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mod := aulaModel.AulaModel{
		AulaCodigo:       req.Codigo,
		AulaNombre:       req.Nombre,
		AulaCapacidad:    40,
		AulaTipo:         aulaModel.AulaTipoTeoria,
		AulaEquipamiento: pq.StringArray(req.Equipamiento),
		AulaActivo:       true,
	}
	if req.Capacidad != nil {
		mod.AulaCapacidad = *req.Capacidad
	}
	if req.Tipo != "" {
		mod.AulaTipo = aulaModel.AulaTipoEnum(req.Tipo)
	}
	if req.Activo != nil {
		mod.AulaActivo = *req.Activo
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&mod).Error; err != nil {
		status, msg := helper.MapPGError(err, "El código de aula ya está en uso")
		return fiber.NewError(status, msg)
	}
	return helper.JsonCreated(c, "Aula registrada", mod)
}

// GET /api/a/aulas?q=&tipo=&activo=
func (h *AulasController) ListAulas(c *fiber.Ctx) error {
	tx := h.DB.WithContext(c.UserContext()).Model(&aulaModel.AulaModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(aula_codigo) LIKE ? OR lower(aula_nombre) LIKE ?", like, like)
	}
	if tipo := strings.TrimSpace(c.Query("tipo")); tipo != "" {
		if !aulaModel.AulaTipoEnum(tipo).Valido() {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo de aula no válido")
		}
		tx = tx.Where("aula_tipo = ?", tipo)
	}
	if activo, ok := helper.ParseBoolLoose(c.Query("activo")); ok {
		tx = tx.Where("aula_activo = ?", activo)
	}

	var mods []aulaModel.AulaModel
	if err := tx.Order("aula_codigo ASC").Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar aulas")
	}
	return helper.JsonOK(c, "Listado de aulas", mods)
}

/* =========================================================
   DISPONIBILIDAD POR BLOQUE
   GET /api/a/aulas/disponibles/:bloque_id
   Resultado volátil: se recalcula en cada consulta, nunca se
   cachea — dos operadores pueden estar asignando a la vez y
   la BD es el único árbitro al momento del submit.
   ========================================================= */
func (h *AulasController) ListAulasDisponibles(c *fiber.Ctx) error {
	bloqueID, err := helper.ParseUUIDParam(c, "bloque_id")
	if err != nil {
		return err
	}

	var bloque bloqueModel.BloqueModel
	if err := h.DB.WithContext(c.UserContext()).Where("bloque_id = ?", bloqueID).First(&bloque).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bloque horario no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el bloque")
	}

	var mods []aulaModel.AulaModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("aula_activo = TRUE").
		Where(`aula_id NOT IN (
			SELECT asignacion_aula_id FROM asignaciones
			WHERE asignacion_bloque_id = ? AND asignacion_deleted_at IS NULL
		)`, bloqueID).
		Order("aula_codigo ASC").
		Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo calcular disponibilidad")
	}

	return helper.JsonOK(c, "Aulas disponibles para el bloque", mods)
}

// PUT /api/a/aulas/:id
func (h *AulasController) UpdateAula(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createAulaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mod aulaModel.AulaModel
	if err := h.DB.WithContext(c.UserContext()).Where("aula_id = ?", id).First(&mod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Aula no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el aula")
	}

	mod.AulaCodigo = req.Codigo
	mod.AulaNombre = req.Nombre
	if req.Capacidad != nil {
		mod.AulaCapacidad = *req.Capacidad
	}
	if req.Tipo != "" {
		mod.AulaTipo = aulaModel.AulaTipoEnum(req.Tipo)
	}
	if req.Equipamiento != nil {
		mod.AulaEquipamiento = pq.StringArray(req.Equipamiento)
	}
	if req.Activo != nil {
		mod.AulaActivo = *req.Activo
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&mod).Error; err != nil {
		status, msg := helper.MapPGError(err, "El código de aula ya está en uso")
		return fiber.NewError(status, msg)
	}
	return helper.JsonUpdated(c, "Aula actualizada", mod)
}

// DELETE /api/a/aulas/:id
func (h *AulasController) DeleteAula(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&aulaModel.AulaModel{}, "aula_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el aula")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Aula no encontrada")
	}
	return helper.JsonDeleted(c, "Aula eliminada", fiber.Map{"aula_id": id})
}
