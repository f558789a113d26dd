// file: internals/features/academico/docentes/controller/docente_controller.go
package controller

import (
	"strings"

	docenteModel "portalacademico_backend/internals/features/academico/docentes/model"
	helper "portalacademico_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DocentesController struct {
	DB *gorm.DB
}

type createDocenteRequest struct {
	Codigo  string `json:"docente_codigo" validate:"required,min=2,max=20"`
	Nombres string `json:"docente_nombres" validate:"required,min=2,max=120"`
	Email   string `json:"docente_email" validate:"required,email,max=120"`
}

// GET /api/a/docentes?q=&activo=
func (h *DocentesController) ListDocentes(c *fiber.Ctx) error {
	tx := h.DB.WithContext(c.UserContext()).Model(&docenteModel.DocenteModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(docente_nombres) LIKE ? OR lower(docente_codigo) LIKE ?", like, like)
	}
	if activo, ok := helper.ParseBoolLoose(c.Query("activo")); ok {
		tx = tx.Where("docente_activo = ?", activo)
	}

	var mods []docenteModel.DocenteModel
	if err := tx.Order("docente_nombres ASC").Find(&mods).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar docentes")
	}
	return helper.JsonOK(c, "Listado de docentes", mods)
}

// POST /api/a/docentes
func (h *DocentesController) CreateDocente(c *fiber.Ctx) error {
	var req createDocenteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombres = strings.TrimSpace(req.Nombres)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mod := docenteModel.DocenteModel{
		DocenteCodigo:  req.Codigo,
		DocenteNombres: req.Nombres,
		DocenteEmail:   req.Email,
		DocenteActivo:  true,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&mod).Error; err != nil {
		status, msg := helper.MapPGError(err, "El código de docente ya está en uso")
		return fiber.NewError(status, msg)
	}
	return helper.JsonCreated(c, "Docente registrado", mod)
}
