// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cursoRoute "portalacademico_backend/internals/features/academico/cursos/route"
	docenteRoute "portalacademico_backend/internals/features/academico/docentes/route"
	prereqRoute "portalacademico_backend/internals/features/academico/prerrequisitos/route"
	seccionRoute "portalacademico_backend/internals/features/academico/secciones/route"
	asignacionRoute "portalacademico_backend/internals/features/horarios/asignaciones/route"
	aulaRoute "portalacademico_backend/internals/features/horarios/aulas/route"
	bloqueRoute "portalacademico_backend/internals/features/horarios/bloques/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== ADMIN =====================
	admin := app.Group("/api/a")

	log.Println("[INFO] Montando rutas ACADÉMICO...")
	cursoRoute.CursoAdminRoutes(admin, db)
	prereqRoute.PrerrequisitoAdminRoutes(admin, db)
	seccionRoute.SeccionAdminRoutes(admin, db)
	docenteRoute.DocenteAdminRoutes(admin, db)

	log.Println("[INFO] Montando rutas HORARIOS...")
	bloqueRoute.BloqueAdminRoutes(admin, db)
	aulaRoute.AulaAdminRoutes(admin, db)
	asignacionRoute.AsignacionAdminRoutes(admin, db)

	// ===================== STATUS =====================
	app.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
