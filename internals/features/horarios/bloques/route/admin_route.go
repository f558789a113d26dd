// file: internals/features/horarios/bloques/route/admin_route.go
package route

import (
	bloqueController "portalacademico_backend/internals/features/horarios/bloques/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BloqueAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bloqueController.BloquesController{DB: db}

	bloques := r.Group("/bloques")
	bloques.Get("/", ctl.ListBloques)
	bloques.Post("/", ctl.CreateBloque)
	bloques.Get("/:id", ctl.GetBloque)
	bloques.Put("/:id", ctl.UpdateBloque)
	bloques.Delete("/:id", ctl.DeleteBloque)
}
