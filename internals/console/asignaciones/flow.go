// file: internals/console/asignaciones/flow.go
// Flujo de asignación de horarios: el operador arma una ficha
// (curso, sección, docente, bloque, aula) y la envía al backend.
package asignaciones

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"portalacademico_backend/internals/console"
	"portalacademico_backend/internals/console/api"
)

/* =========================================================
   Ficha (borrador de asignación)
   ========================================================= */

type modoFicha int

const (
	modoCrear modoFicha = iota
	modoActualizar
)

// Ficha es el borrador en edición. El modo (crear vs actualizar) viaja
// dentro de la ficha; Enviar despacha según él, nunca lo adivina.
type Ficha struct {
	modo         modoFicha
	asignacionID uuid.UUID

	CursoID   uuid.UUID
	SeccionID uuid.UUID
	DocenteID uuid.UUID
	BloqueID  uuid.UUID
	AulaID    uuid.UUID

	AlumnosEstimados int
	Observaciones    *string
}

func NuevaFicha() Ficha { return Ficha{modo: modoCrear} }

func FichaEnEdicion(asignacionID uuid.UUID) Ficha {
	return Ficha{modo: modoActualizar, asignacionID: asignacionID}
}

func (f Ficha) EsEdicion() bool { return f.modo == modoActualizar }

func (f Ficha) completa() bool {
	return f.CursoID != uuid.Nil &&
		f.SeccionID != uuid.Nil &&
		f.DocenteID != uuid.Nil &&
		f.BloqueID != uuid.Nil &&
		f.AulaID != uuid.Nil &&
		f.AlumnosEstimados >= 1
}

/* =========================================================
   Flujo
   ========================================================= */

// Colaborador es el contrato con el backend; los tests lo sustituyen.
type Colaborador interface {
	ListarCursos(ctx context.Context) ([]api.Curso, error)
	ListarSecciones(ctx context.Context) ([]api.Seccion, error)
	ListarDocentes(ctx context.Context) ([]api.Docente, error)
	ListarBloques(ctx context.Context) ([]api.Bloque, error)
	AulasDisponibles(ctx context.Context, bloqueID uuid.UUID) ([]api.Aula, error)
	CrearAsignacion(ctx context.Context, req api.AsignacionRequest) (api.Asignacion, error)
	ActualizarAsignacion(ctx context.Context, id uuid.UUID, req api.AsignacionRequest) (api.Asignacion, error)
	ListarAsignaciones(ctx context.Context) ([]api.Asignacion, error)
}

var (
	ErrFichaIncompleta   = errors.New("La ficha está incompleta: faltan campos obligatorios o alumnos < 1")
	ErrEnvioEnCurso      = errors.New("Hay un envío en curso, espere a que termine")
	ErrBloqueDesconocido = errors.New("El bloque indicado no está en las referencias cargadas")
	ErrAulaNoCandidata   = errors.New("El aula indicada no está entre las disponibles para el bloque elegido")
	ErrSinBloque         = errors.New("Elija primero un bloque horario")
	ErrRefDesconocida    = errors.New("El registro indicado no está en las referencias cargadas")
)

type Flujo struct {
	colaborador Colaborador
	sesion      console.Session

	cursos    []api.Curso
	secciones []api.Seccion
	docentes  []api.Docente
	bloques   []api.Bloque

	ficha      Ficha
	candidatas []api.Aula

	// token de generación: una respuesta de disponibilidad solo se
	// aplica si su token sigue siendo el vigente para el hueco
	genAulas uint64

	enviando bool

	listado     []api.Asignacion
	ultimoError string
}

func NewFlujo(colaborador Colaborador, sesion console.Session) *Flujo {
	return &Flujo{
		colaborador: colaborador,
		sesion:      sesion,
		ficha:       NuevaFicha(),
	}
}

func (f *Flujo) Sesion() console.Session   { return f.sesion }
func (f *Flujo) Ficha() Ficha              { return f.ficha }
func (f *Flujo) Cursos() []api.Curso       { return f.cursos }
func (f *Flujo) Secciones() []api.Seccion  { return f.secciones }
func (f *Flujo) Docentes() []api.Docente   { return f.docentes }
func (f *Flujo) Bloques() []api.Bloque     { return f.bloques }
func (f *Flujo) Candidatas() []api.Aula    { return append([]api.Aula(nil), f.candidatas...) }
func (f *Flujo) Listado() []api.Asignacion { return f.listado }
func (f *Flujo) Enviando() bool            { return f.enviando }
func (f *Flujo) UltimoError() string       { return f.ultimoError }

// CargarReferencias trae los cuatro catálogos en paralelo. Si cualquiera
// falla, falla la carga completa: sin referencias no hay ficha que armar.
func (f *Flujo) CargarReferencias(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	var cursos []api.Curso
	var secciones []api.Seccion
	var docentes []api.Docente
	var bloques []api.Bloque

	g.Go(func() error {
		var err error
		cursos, err = f.colaborador.ListarCursos(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		secciones, err = f.colaborador.ListarSecciones(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		docentes, err = f.colaborador.ListarDocentes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bloques, err = f.colaborador.ListarBloques(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		f.ultimoError = err.Error()
		return err
	}

	f.cursos = cursos
	f.secciones = secciones
	f.docentes = docentes
	f.bloques = bloques
	f.ultimoError = ""
	return nil
}

func (f *Flujo) EmpezarFicha(ficha Ficha) {
	f.genAulas++
	f.ficha = ficha
	f.candidatas = nil
	f.ultimoError = ""
}

func (f *Flujo) ElegirCurso(cursoID uuid.UUID) error {
	for _, c := range f.cursos {
		if c.CursoID == cursoID {
			f.ficha.CursoID = cursoID
			return nil
		}
	}
	return ErrRefDesconocida
}

func (f *Flujo) ElegirSeccion(seccionID uuid.UUID) error {
	for _, s := range f.secciones {
		if s.SeccionID == seccionID {
			f.ficha.SeccionID = seccionID
			return nil
		}
	}
	return ErrRefDesconocida
}

func (f *Flujo) ElegirDocente(docenteID uuid.UUID) error {
	for _, d := range f.docentes {
		if d.DocenteID == docenteID {
			f.ficha.DocenteID = docenteID
			return nil
		}
	}
	return ErrRefDesconocida
}

// ElegirBloque fija el bloque y consulta la disponibilidad de aulas en
// fresco. El aula previa se descarta siempre: las candidatas del bloque
// anterior no valen para el nuevo. Una respuesta que llega tarde, tras
// otra elección o una cancelación, se descarta por el token.
func (f *Flujo) ElegirBloque(ctx context.Context, bloqueID uuid.UUID) error {
	var existe bool
	for _, b := range f.bloques {
		if b.BloqueID == bloqueID {
			existe = true
			break
		}
	}
	if !existe {
		return ErrBloqueDesconocido
	}

	f.genAulas++
	gen := f.genAulas

	f.ficha.BloqueID = bloqueID
	f.ficha.AulaID = uuid.Nil
	f.candidatas = nil

	aulas, err := f.colaborador.AulasDisponibles(ctx, bloqueID)
	if gen != f.genAulas {
		// llegó tarde: ya hay otra selección vigente
		return nil
	}
	if err != nil {
		f.ultimoError = err.Error()
		return err
	}

	f.candidatas = aulas
	f.ultimoError = ""
	return nil
}

// ElegirAula solo acepta aulas de la lista de candidatas vigente.
func (f *Flujo) ElegirAula(aulaID uuid.UUID) error {
	if f.ficha.BloqueID == uuid.Nil {
		return ErrSinBloque
	}
	for _, a := range f.candidatas {
		if a.AulaID == aulaID {
			f.ficha.AulaID = aulaID
			return nil
		}
	}
	return ErrAulaNoCandidata
}

func (f *Flujo) FijarAlumnos(n int) { f.ficha.AlumnosEstimados = n }

func (f *Flujo) FijarObservaciones(texto string) {
	if texto == "" {
		f.ficha.Observaciones = nil
		return
	}
	f.ficha.Observaciones = &texto
}

// Enviar valida la ficha en local y, solo si está completa, hace una
// única llamada de escritura. El rechazo del servidor se muestra tal
// cual y la ficha queda intacta para corregir; no hay reintento.
func (f *Flujo) Enviar(ctx context.Context) (api.Asignacion, error) {
	if f.enviando {
		return api.Asignacion{}, ErrEnvioEnCurso
	}
	if !f.ficha.completa() {
		f.ultimoError = ErrFichaIncompleta.Error()
		return api.Asignacion{}, ErrFichaIncompleta
	}

	f.enviando = true
	defer func() { f.enviando = false }()

	req := api.AsignacionRequest{
		CursoID:          f.ficha.CursoID,
		SeccionID:        f.ficha.SeccionID,
		DocenteID:        f.ficha.DocenteID,
		BloqueID:         f.ficha.BloqueID,
		AulaID:           f.ficha.AulaID,
		AlumnosEstimados: f.ficha.AlumnosEstimados,
		Observaciones:    f.ficha.Observaciones,
	}

	var (
		out api.Asignacion
		err error
	)
	if f.ficha.EsEdicion() {
		out, err = f.colaborador.ActualizarAsignacion(ctx, f.ficha.asignacionID, req)
	} else {
		out, err = f.colaborador.CrearAsignacion(ctx, req)
	}
	if err != nil {
		f.ultimoError = err.Error()
		return api.Asignacion{}, err
	}

	f.genAulas++
	f.ficha = NuevaFicha()
	f.candidatas = nil
	f.ultimoError = ""

	if listado, lerr := f.colaborador.ListarAsignaciones(ctx); lerr == nil {
		f.listado = listado
	}
	return out, nil
}

// Cancelar descarta la ficha y cualquier respuesta de aulas en vuelo.
func (f *Flujo) Cancelar() {
	f.genAulas++
	f.ficha = NuevaFicha()
	f.candidatas = nil
	f.ultimoError = ""
}
