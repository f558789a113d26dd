// file: internals/features/horarios/aulas/route/admin_route.go
package route

import (
	aulaController "portalacademico_backend/internals/features/horarios/aulas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AulaAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &aulaController.AulasController{DB: db}

	aulas := r.Group("/aulas")
	aulas.Get("/", ctl.ListAulas)
	aulas.Post("/", ctl.CreateAula)
	// la disponibilidad va antes que :id para que no la capture la ruta genérica
	aulas.Get("/disponibles/:bloque_id", ctl.ListAulasDisponibles)
	aulas.Put("/:id", ctl.UpdateAula)
	aulas.Delete("/:id", ctl.DeleteAula)
}
