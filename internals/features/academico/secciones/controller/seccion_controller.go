// file: internals/features/academico/secciones/controller/seccion_controller.go
package controller

import (
	"errors"
	"strings"

	seccionModel "portalacademico_backend/internals/features/academico/secciones/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SeccionesController struct {
	DB *gorm.DB
}

type createSeccionRequest struct {
	Codigo    string `json:"seccion_codigo" validate:"required,min=1,max=10"`
	Periodo   string `json:"seccion_periodo" validate:"required,min=4,max=10"`
	Capacidad *int   `json:"seccion_capacidad" validate:"omitempty,min=1,max=200"`
	Activo    *bool  `json:"seccion_activo"`
}

// GET /api/a/secciones?periodo=&activo=
func (h *SeccionesController) ListSecciones(c *fiber.Ctx) error {
	tx := h.DB.WithContext(c.UserContext()).Model(&seccionModel.SeccionModel{})

	if periodo := strings.TrimSpace(c.Query("periodo")); periodo != "" {
		tx = tx.Where("seccion_periodo = ?", periodo)
	}
	if activo, ok := helper.ParseBoolLoose(c.Query("activo")); ok {
		tx = tx.Where("seccion_activo = ?", activo)
	}

	var mods []seccionModel.SeccionModel
	if err := tx.Order("seccion_periodo DESC, seccion_codigo ASC").Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar secciones")
	}
	return helper.JsonOK(c, "Listado de secciones", mods)
}

// POST /api/a/secciones
func (h *SeccionesController) CreateSeccion(c *fiber.Ctx) error {
	var req createSeccionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Periodo = strings.ToUpper(strings.TrimSpace(req.Periodo))

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mod := seccionModel.SeccionModel{
		SeccionCodigo:    req.Codigo,
		SeccionPeriodo:   req.Periodo,
		SeccionCapacidad: 40,
		SeccionActivo:    true,
	}
	if req.Capacidad != nil {
		mod.SeccionCapacidad = *req.Capacidad
	}
	if req.Activo != nil {
		mod.SeccionActivo = *req.Activo
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&mod).Error; err != nil {
		status, msg := helper.MapPGError(err, "La sección ya existe para ese periodo")
		return fiber.NewError(status, msg)
	}
	return helper.JsonCreated(c, "Sección creada", mod)
}

// DELETE /api/a/secciones/:id
func (h *SeccionesController) DeleteSeccion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var mod seccionModel.SeccionModel
	if err := h.DB.WithContext(c.UserContext()).Where("seccion_id = ?", id).First(&mod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sección no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la sección")
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(&mod).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la sección")
	}
	return helper.JsonDeleted(c, "Sección eliminada", fiber.Map{"seccion_id": id})
}
