package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portalacademico_backend/internals/configs"
	cursoModel "portalacademico_backend/internals/features/academico/cursos/model"
	docenteModel "portalacademico_backend/internals/features/academico/docentes/model"
	prereqModel "portalacademico_backend/internals/features/academico/prerrequisitos/model"
	seccionModel "portalacademico_backend/internals/features/academico/secciones/model"
	asignacionModel "portalacademico_backend/internals/features/horarios/asignaciones/model"
	aulaModel "portalacademico_backend/internals/features/horarios/aulas/model"
	bloqueModel "portalacademico_backend/internals/features/horarios/bloques/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=portalacademico&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a la base de datos: %v", err)
	}
	DB = db
	log.Println("✅ Base de datos conectada.")
}

func Migrate() {
	if err := DB.AutoMigrate(
		&cursoModel.CursoModel{},
		&prereqModel.PrerrequisitoModel{},
		&seccionModel.SeccionModel{},
		&docenteModel.DocenteModel{},
		&bloqueModel.BloqueModel{},
		&aulaModel.AulaModel{},
		&asignacionModel.AsignacionModel{},
	); err != nil {
		log.Fatalf("❌ Migración fallida: %v", err)
	}

	// Índices parciales y CHECKs que AutoMigrate no expresa.
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_cursos_codigo_vivo
			ON cursos (lower(curso_codigo)) WHERE curso_deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_prerrequisitos_par
			ON prerrequisitos (prerrequisito_curso_id, prerrequisito_requisito_id)`,
		`ALTER TABLE prerrequisitos DROP CONSTRAINT IF EXISTS ck_prerrequisito_sin_autociclo`,
		`ALTER TABLE prerrequisitos ADD CONSTRAINT ck_prerrequisito_sin_autociclo
			CHECK (prerrequisito_curso_id <> prerrequisito_requisito_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_asignaciones_bloque_aula_vivo
			ON asignaciones (asignacion_bloque_id, asignacion_aula_id) WHERE asignacion_deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_aulas_codigo_vivo
			ON aulas (lower(aula_codigo)) WHERE aula_deleted_at IS NULL`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Fatalf("❌ Índice/constraint fallido: %v", err)
		}
	}

	log.Println("✅ Migración completada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUp() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
