// file: internals/features/horarios/asignaciones/route/admin_route.go
package route

import (
	asignacionController "portalacademico_backend/internals/features/horarios/asignaciones/controller"
	"portalacademico_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AsignacionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &asignacionController.AsignacionesController{DB: db}

	asignaciones := r.Group("/asignaciones")
	asignaciones.Get("/", ctl.ListAsignaciones)
	asignaciones.Post("/", middlewares.WriteRateLimiter(), ctl.CreateAsignacion)
	asignaciones.Get("/:id", ctl.GetAsignacion)
	asignaciones.Put("/:id", middlewares.WriteRateLimiter(), ctl.UpdateAsignacion)
	asignaciones.Delete("/:id", ctl.DeleteAsignacion)
}
