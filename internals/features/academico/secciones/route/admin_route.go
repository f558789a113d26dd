// file: internals/features/academico/secciones/route/admin_route.go
package route

import (
	seccionController "portalacademico_backend/internals/features/academico/secciones/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SeccionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &seccionController.SeccionesController{DB: db}

	secciones := r.Group("/secciones")
	secciones.Get("/", ctl.ListSecciones)
	secciones.Post("/", ctl.CreateSeccion)
	secciones.Delete("/:id", ctl.DeleteSeccion)
}
