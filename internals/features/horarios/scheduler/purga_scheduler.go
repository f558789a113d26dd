// file: internals/features/horarios/scheduler/purga_scheduler.go
package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"portalacademico_backend/internals/configs"
)

// StartPurgaScheduler elimina definitivamente las filas soft-deleted con más
// de PURGE_TTL_DAYS días. Corre cada 24 horas en segundo plano.
func StartPurgaScheduler(db *gorm.DB) {
	go func() {
		ttlDias := 30
		if parsed, err := strconv.Atoi(configs.GetEnv("PURGE_TTL_DAYS", "30")); err == nil && parsed > 0 {
			ttlDias = parsed
		}

		tablas := []struct {
			nombre  string
			columna string
		}{
			{"cursos", "curso_deleted_at"},
			{"secciones", "seccion_deleted_at"},
			{"docentes", "docente_deleted_at"},
			{"bloques_horarios", "bloque_deleted_at"},
			{"aulas", "aula_deleted_at"},
			{"asignaciones", "asignacion_deleted_at"},
		}

		for {
			log.Println("[PURGA] Eliminando filas soft-deleted vencidas...")
			limite := time.Now().Add(-time.Duration(ttlDias) * 24 * time.Hour)

			for _, t := range tablas {
				res := db.Exec(
					"DELETE FROM "+t.nombre+" WHERE "+t.columna+" IS NOT NULL AND "+t.columna+" < ?",
					limite,
				)
				if res.Error != nil {
					log.Printf("[PURGA ERROR] %s: %v", t.nombre, res.Error)
					continue
				}
				if res.RowsAffected > 0 {
					log.Printf("[PURGA] %s: %d filas eliminadas", t.nombre, res.RowsAffected)
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
