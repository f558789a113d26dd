// file: internals/features/academico/docentes/route/admin_route.go
package route

import (
	docenteController "portalacademico_backend/internals/features/academico/docentes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DocenteAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &docenteController.DocentesController{DB: db}

	docentes := r.Group("/docentes")
	docentes.Get("/", ctl.ListDocentes)
	docentes.Post("/", ctl.CreateDocente)
}
