// file: internals/features/academico/prerrequisitos/route/admin_route.go
package route

import (
	prereqController "portalacademico_backend/internals/features/academico/prerrequisitos/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PrerrequisitoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &prereqController.PrerrequisitosController{DB: db}

	pr := r.Group("/prerrequisitos")
	pr.Post("/", ctl.CreatePrerrequisito)            // POST   /api/a/prerrequisitos
	pr.Get("/curso/:curso_id", ctl.GetPorCurso)      // GET    /api/a/prerrequisitos/curso/:curso_id
	pr.Put("/curso/:curso_id", ctl.ReplacePorCurso)  // PUT    /api/a/prerrequisitos/curso/:curso_id (reemplazo atómico)
	pr.Delete("/curso/:curso_id", ctl.DeletePorCurso) // DELETE /api/a/prerrequisitos/curso/:curso_id
}
