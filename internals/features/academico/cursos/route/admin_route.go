// file: internals/features/academico/cursos/route/admin_route.go
package route

import (
	cursosController "portalacademico_backend/internals/features/academico/cursos/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Rutas de administración: CRUD completo del catálogo.
Montaje: CursoAdminRoutes(app.Group("/api/a"), db)
*/
func CursoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &cursosController.CursosController{DB: db}

	cursos := r.Group("/cursos")
	cursos.Get("/", ctl.ListCursos)         // GET    /api/a/cursos
	cursos.Post("/", ctl.CreateCurso)       // POST   /api/a/cursos
	cursos.Get("/:id", ctl.GetCurso)        // GET    /api/a/cursos/:id
	cursos.Put("/:id", ctl.UpdateCurso)     // PUT    /api/a/cursos/:id
	cursos.Delete("/:id", ctl.DeleteCurso)  // DELETE /api/a/cursos/:id?force=true

	// listado denormalizado para el editor de prerrequisitos
	r.Get("/cursos-con-prerrequisitos", ctl.ListCursosConPrerrequisitos)
}
