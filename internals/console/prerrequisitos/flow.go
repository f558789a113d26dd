// file: internals/console/prerrequisitos/flow.go
// Editor de prerrequisitos: mantiene una lista de trabajo local y la
// aplica contra el backend en una sola operación de reemplazo.
package prerrequisitos

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portalacademico_backend/internals/console"
	"portalacademico_backend/internals/console/api"
)

/* =========================================================
   Estados del editor
   ========================================================= */

type Estado int

const (
	EstadoInactivo Estado = iota
	EstadoEditando
	EstadoGuardando
)

func (e Estado) String() string {
	switch e {
	case EstadoEditando:
		return "editando"
	case EstadoGuardando:
		return "guardando"
	default:
		return "inactivo"
	}
}

// Catalogo es lo que el editor necesita del backend. El cliente HTTP lo
// implementa; los tests lo sustituyen por un doble en memoria.
type Catalogo interface {
	ListarCursos(ctx context.Context) ([]api.Curso, error)
	ListarCursosConPrerrequisitos(ctx context.Context) ([]api.CursoConPrerrequisitos, error)
	ReemplazarPrerrequisitos(ctx context.Context, cursoID uuid.UUID, requisitos []uuid.UUID) error
	VaciarPrerrequisitos(ctx context.Context, cursoID uuid.UUID) (int64, error)
}

var (
	ErrSinCurso       = errors.New("No hay ningún curso en edición")
	ErrCursoNoListado = errors.New("El curso no está en el listado cargado")
	ErrAutociclo      = errors.New("Un curso no puede ser prerrequisito de sí mismo")
	ErrNoEncontrado   = errors.New("El curso indicado no existe en el catálogo")
	ErrGuardando      = errors.New("Hay un guardado en curso, espere a que termine")
)

/* =========================================================
   Editor
   ========================================================= */

type Editor struct {
	catalogo Catalogo
	sesion   console.Session

	estado     Estado
	generacion uint64

	listado []api.CursoConPrerrequisitos
	indice  map[uuid.UUID]api.Curso

	cursoID    uuid.UUID
	pendientes []uuid.UUID

	// aristas del servidor cuyo requisito ya no figura en el catálogo;
	// se descartan al entrar en edición y se informa al operador
	descartadas int

	ultimoError string
}

func NewEditor(catalogo Catalogo, sesion console.Session) *Editor {
	return &Editor{
		catalogo: catalogo,
		sesion:   sesion,
		indice:   map[uuid.UUID]api.Curso{},
	}
}

func (e *Editor) Sesion() console.Session { return e.sesion }

func (e *Editor) Estado() Estado                      { return e.estado }
func (e *Editor) Listado() []api.CursoConPrerrequisitos { return e.listado }
func (e *Editor) CursoEnEdicion() uuid.UUID           { return e.cursoID }
func (e *Editor) Pendientes() []uuid.UUID             { return append([]uuid.UUID(nil), e.pendientes...) }
func (e *Editor) AristasDescartadas() int             { return e.descartadas }
func (e *Editor) UltimoError() string                 { return e.ultimoError }

// CargarListado trae el catálogo completo y le cuelga las aristas que el
// backend reporta (solo los cursos con ≥1 prerrequisito figuran en ese
// segundo listado). Si cualquiera de las llamadas falla se conserva el
// listado anterior: un refresco fallido nunca deja la vista en blanco.
func (e *Editor) CargarListado(ctx context.Context) error {
	gen := e.generacion

	cursos, err := e.catalogo.ListarCursos(ctx)
	if err != nil {
		e.ultimoError = err.Error()
		return err
	}
	conAristas, err := e.catalogo.ListarCursosConPrerrequisitos(ctx)
	if err != nil {
		e.ultimoError = err.Error()
		return err
	}
	// respuesta tardía de una sesión ya cancelada: se descarta
	if gen != e.generacion {
		return nil
	}

	aristas := make(map[uuid.UUID][]api.Prerrequisito, len(conAristas))
	for _, c := range conAristas {
		aristas[c.CursoID] = c.Prerrequisitos
	}

	e.listado = make([]api.CursoConPrerrequisitos, 0, len(cursos))
	e.indice = make(map[uuid.UUID]api.Curso, len(cursos))
	for _, c := range cursos {
		e.listado = append(e.listado, api.CursoConPrerrequisitos{
			Curso:          c,
			Prerrequisitos: aristas[c.CursoID],
		})
		e.indice[c.CursoID] = c
	}
	e.ultimoError = ""
	return nil
}

// EditarCurso abre la lista de trabajo del curso con sus aristas
// actuales. Las aristas cuyo requisito ya no está en el catálogo se
// descartan y se cuentan para informar al operador.
func (e *Editor) EditarCurso(cursoID uuid.UUID) error {
	if e.estado == EstadoGuardando {
		return ErrGuardando
	}

	var encontrado *api.CursoConPrerrequisitos
	for i := range e.listado {
		if e.listado[i].CursoID == cursoID {
			encontrado = &e.listado[i]
			break
		}
	}
	if encontrado == nil {
		return ErrCursoNoListado
	}

	e.cursoID = cursoID
	e.pendientes = e.pendientes[:0]
	e.descartadas = 0
	for _, p := range encontrado.Prerrequisitos {
		if _, ok := e.indice[p.RequisitoID]; !ok {
			e.descartadas++
			continue
		}
		e.pendientes = append(e.pendientes, p.RequisitoID)
	}

	e.estado = EstadoEditando
	e.ultimoError = ""
	return nil
}

// Agregar añade un requisito al final de la lista de trabajo. Repetirlo
// no duplica; el autociclo se rechaza aquí mismo sin ir al servidor.
func (e *Editor) Agregar(requisitoID uuid.UUID) error {
	if e.estado != EstadoEditando {
		return ErrSinCurso
	}
	if requisitoID == e.cursoID {
		e.ultimoError = ErrAutociclo.Error()
		return ErrAutociclo
	}
	if _, ok := e.indice[requisitoID]; !ok {
		e.ultimoError = ErrNoEncontrado.Error()
		return ErrNoEncontrado
	}
	for _, id := range e.pendientes {
		if id == requisitoID {
			return nil
		}
	}
	e.pendientes = append(e.pendientes, requisitoID)
	e.ultimoError = ""
	return nil
}

// Quitar elimina un requisito de la lista de trabajo. Quitar algo que no
// está es un no-op.
func (e *Editor) Quitar(requisitoID uuid.UUID) error {
	if e.estado != EstadoEditando {
		return ErrSinCurso
	}
	for i, id := range e.pendientes {
		if id == requisitoID {
			e.pendientes = append(e.pendientes[:i], e.pendientes[i+1:]...)
			break
		}
	}
	return nil
}

// Guardar aplica la lista de trabajo completa en una sola llamada de
// reemplazo. Si el servidor la rechaza (ciclo, conflicto), la lista se
// conserva tal cual para que el operador corrija y reintente.
func (e *Editor) Guardar(ctx context.Context) error {
	if e.estado != EstadoEditando {
		return ErrSinCurso
	}

	e.estado = EstadoGuardando
	gen := e.generacion

	err := e.catalogo.ReemplazarPrerrequisitos(ctx, e.cursoID, e.pendientes)
	if gen != e.generacion {
		// el operador canceló mientras la llamada estaba en vuelo
		return nil
	}
	if err != nil {
		e.estado = EstadoEditando
		e.ultimoError = err.Error()
		return err
	}

	e.estado = EstadoInactivo
	e.cursoID = uuid.Nil
	e.pendientes = nil
	e.ultimoError = ""

	// el guardado ya se aplicó; si el refresco falla se conserva el
	// listado anterior y el error queda como aviso, no como fallo
	_ = e.CargarListado(ctx)
	return nil
}

// Vaciar borra todos los prerrequisitos del curso en edición directamente
// en el servidor y devuelve cuántas aristas se eliminaron.
func (e *Editor) Vaciar(ctx context.Context) (int64, error) {
	if e.estado != EstadoEditando {
		return 0, ErrSinCurso
	}

	n, err := e.catalogo.VaciarPrerrequisitos(ctx, e.cursoID)
	if err != nil {
		e.ultimoError = err.Error()
		return 0, err
	}

	e.pendientes = e.pendientes[:0]
	e.ultimoError = ""
	return n, nil
}

// Cancelar descarta la lista de trabajo sin tocar el servidor e invalida
// cualquier respuesta en vuelo.
func (e *Editor) Cancelar() {
	e.generacion++
	e.estado = EstadoInactivo
	e.cursoID = uuid.Nil
	e.pendientes = nil
	e.descartadas = 0
	e.ultimoError = ""
}
