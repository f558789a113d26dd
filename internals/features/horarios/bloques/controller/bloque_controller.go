// file: internals/features/horarios/bloques/controller/bloque_controller.go
package controller

import (
	"errors"

	bloqueDTO "portalacademico_backend/internals/features/horarios/bloques/dto"
	bloqueModel "portalacademico_backend/internals/features/horarios/bloques/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BloquesController struct {
	DB *gorm.DB
}

// POST /api/a/bloques
func (h *BloquesController) CreateBloque(c *fiber.Ctx) error {
	var req bloqueDTO.CreateBloqueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mod, err := req.ToModel()
	if err != nil {
		return err
	}

	// mismo día + mismo rango exacto ya registrado → duplicado
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).Model(&bloqueModel.BloqueModel{}).
		Where("bloque_dia = ? AND bloque_inicio_min = ? AND bloque_fin_min = ?",
			mod.BloqueDia, mod.BloqueInicioMin, mod.BloqueFinMin).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar duplicados")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "El bloque horario ya está registrado")
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&mod).Error; err != nil {
		status, msg := helper.MapPGError(err, "El bloque horario ya está registrado")
		return fiber.NewError(status, msg)
	}
	return helper.JsonCreated(c, "Bloque horario creado", bloqueDTO.FromBloqueModel(mod))
}

// GET /api/a/bloques?dia=&turno=&activo=
func (h *BloquesController) ListBloques(c *fiber.Ctx) error {
	tx := h.DB.WithContext(c.UserContext()).Model(&bloqueModel.BloqueModel{})

	if dia := c.QueryInt("dia", 0); dia > 0 {
		tx = tx.Where("bloque_dia = ?", dia)
	}
	if activo, ok := helper.ParseBoolLoose(c.Query("activo")); ok {
		tx = tx.Where("bloque_activo = ?", activo)
	}

	var mods []bloqueModel.BloqueModel
	if err := tx.Order("bloque_dia ASC, bloque_inicio_min ASC").Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar bloques")
	}

	data := bloqueDTO.FromBloqueModels(mods)

	// el turno es derivado, así que el filtro se aplica sobre la proyección
	if turno := c.Query("turno"); turno != "" {
		filtrado := data[:0]
		for _, b := range data {
			if string(b.Turno) == turno {
				filtrado = append(filtrado, b)
			}
		}
		data = filtrado
	}

	return helper.JsonOK(c, "Listado de bloques horarios", data)
}

// GET /api/a/bloques/:id
func (h *BloquesController) GetBloque(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var mod bloqueModel.BloqueModel
	if err := h.DB.WithContext(c.UserContext()).Where("bloque_id = ?", id).First(&mod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bloque horario no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el bloque")
	}
	return helper.JsonOK(c, "Detalle de bloque horario", bloqueDTO.FromBloqueModel(mod))
}

// PUT /api/a/bloques/:id
func (h *BloquesController) UpdateBloque(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req bloqueDTO.CreateBloqueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	nuevo, err := req.ToModel()
	if err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var mod bloqueModel.BloqueModel
		if err := tx.Where("bloque_id = ?", id).First(&mod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bloque horario no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el bloque")
		}

		mod.BloqueDia = nuevo.BloqueDia
		mod.BloqueInicioMin = nuevo.BloqueInicioMin
		mod.BloqueFinMin = nuevo.BloqueFinMin
		mod.BloqueActivo = nuevo.BloqueActivo

		if err := tx.Save(&mod).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el bloque")
		}
		c.Locals("bloque_actualizado", mod)
		return nil
	}); err != nil {
		return err
	}

	mod := c.Locals("bloque_actualizado").(bloqueModel.BloqueModel)
	return helper.JsonUpdated(c, "Bloque horario actualizado", bloqueDTO.FromBloqueModel(mod))
}

// DELETE /api/a/bloques/:id
func (h *BloquesController) DeleteBloque(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&bloqueModel.BloqueModel{}, "bloque_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el bloque")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Bloque horario no encontrado")
	}
	return helper.JsonDeleted(c, "Bloque horario eliminado", fiber.Map{"bloque_id": id})
}
