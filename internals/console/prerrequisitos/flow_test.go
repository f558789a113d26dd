// file: internals/console/prerrequisitos/flow_test.go
package prerrequisitos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"portalacademico_backend/internals/console"
	"portalacademico_backend/internals/console/api"
)

func sesionDePrueba() console.Session {
	return console.Session{
		OperadorID:     uuid.New(),
		OperadorNombre: "Carmen Quispe",
		Rol:            "coordinador",
	}
}

/* =========================================================
   Doble del catálogo
   ========================================================= */

type catalogoFake struct {
	listado    []api.CursoConPrerrequisitos
	errListar  error
	errReplace error

	replaceCalls [][]uuid.UUID
	replaceCurso []uuid.UUID
	vaciados     int64

	// hook que corre mientras el reemplazo está "en vuelo"
	duranteReplace func()
}

func (f *catalogoFake) ListarCursos(ctx context.Context) ([]api.Curso, error) {
	if f.errListar != nil {
		return nil, f.errListar
	}
	out := make([]api.Curso, 0, len(f.listado))
	for _, c := range f.listado {
		out = append(out, c.Curso)
	}
	return out, nil
}

func (f *catalogoFake) ListarCursosConPrerrequisitos(ctx context.Context) ([]api.CursoConPrerrequisitos, error) {
	if f.errListar != nil {
		return nil, f.errListar
	}
	return f.listado, nil
}

func (f *catalogoFake) ReemplazarPrerrequisitos(ctx context.Context, cursoID uuid.UUID, requisitos []uuid.UUID) error {
	if f.duranteReplace != nil {
		f.duranteReplace()
	}
	if f.errReplace != nil {
		return f.errReplace
	}
	f.replaceCurso = append(f.replaceCurso, cursoID)
	f.replaceCalls = append(f.replaceCalls, append([]uuid.UUID(nil), requisitos...))
	return nil
}

func (f *catalogoFake) VaciarPrerrequisitos(ctx context.Context, cursoID uuid.UUID) (int64, error) {
	return f.vaciados, nil
}

func curso(codigo string) api.CursoConPrerrequisitos {
	return api.CursoConPrerrequisitos{
		Curso: api.Curso{CursoID: uuid.New(), Codigo: codigo, Nombre: "Curso " + codigo, Activo: true},
	}
}

func catalogoDeTres() (*catalogoFake, []api.CursoConPrerrequisitos) {
	cursos := []api.CursoConPrerrequisitos{curso("MAT-101"), curso("MAT-201"), curso("FIS-101")}
	return &catalogoFake{listado: cursos}, cursos
}

/* =========================================================
   Tests
   ========================================================= */

func TestEditarCursoCargaAristasExistentes(t *testing.T) {
	fake, cursos := catalogoDeTres()
	fake.listado[1].Prerrequisitos = []api.Prerrequisito{
		{RequisitoID: cursos[0].CursoID, Codigo: cursos[0].Codigo},
	}

	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))

	assert.Equal(t, EstadoEditando, ed.Estado())
	assert.Equal(t, []uuid.UUID{cursos[0].CursoID}, ed.Pendientes())
	assert.Zero(t, ed.AristasDescartadas())
}

func TestEditarCursoDescartaAristasHuerfanas(t *testing.T) {
	fake, cursos := catalogoDeTres()
	fake.listado[0].Prerrequisitos = []api.Prerrequisito{
		{RequisitoID: uuid.New(), Codigo: "BORRADO-1"}, // ya no está en el catálogo
		{RequisitoID: cursos[2].CursoID, Codigo: cursos[2].Codigo},
	}

	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[0].CursoID))

	assert.Equal(t, 1, ed.AristasDescartadas())
	assert.Equal(t, []uuid.UUID{cursos[2].CursoID}, ed.Pendientes())
}

func TestAgregarConservaOrdenYNoDuplica(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))

	assert.NoError(t, ed.Agregar(cursos[0].CursoID))
	assert.NoError(t, ed.Agregar(cursos[2].CursoID))
	// repetir no duplica ni reordena
	assert.NoError(t, ed.Agregar(cursos[0].CursoID))

	assert.Equal(t, []uuid.UUID{cursos[0].CursoID, cursos[2].CursoID}, ed.Pendientes())
}

func TestAgregarRechazaAutociclo(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[0].CursoID))

	err := ed.Agregar(cursos[0].CursoID)
	assert.ErrorIs(t, err, ErrAutociclo)
	assert.Empty(t, ed.Pendientes())
	assert.Equal(t, ErrAutociclo.Error(), ed.UltimoError())
}

func TestAgregarRechazaCursoDesconocido(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[0].CursoID))

	assert.ErrorIs(t, ed.Agregar(uuid.New()), ErrNoEncontrado)
	assert.Empty(t, ed.Pendientes())
}

func TestQuitarEsLocalYTolerante(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))
	assert.NoError(t, ed.Agregar(cursos[0].CursoID))

	assert.NoError(t, ed.Quitar(cursos[0].CursoID))
	assert.Empty(t, ed.Pendientes())
	// quitar lo que no está es un no-op
	assert.NoError(t, ed.Quitar(cursos[2].CursoID))
	assert.Empty(t, fake.replaceCalls, "quitar no debe llamar al servidor")
}

func TestGuardarAplicaReemplazoAtomico(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))
	assert.NoError(t, ed.Agregar(cursos[0].CursoID))
	assert.NoError(t, ed.Agregar(cursos[2].CursoID))

	assert.NoError(t, ed.Guardar(context.Background()))

	// una sola llamada con el conjunto completo, en orden
	assert.Len(t, fake.replaceCalls, 1)
	assert.Equal(t, []uuid.UUID{cursos[0].CursoID, cursos[2].CursoID}, fake.replaceCalls[0])
	assert.Equal(t, cursos[1].CursoID, fake.replaceCurso[0])
	assert.Equal(t, EstadoInactivo, ed.Estado())
}

func TestGuardarRechazadoConservaListaDeTrabajo(t *testing.T) {
	fake, cursos := catalogoDeTres()
	fake.errReplace = errors.New("El conjunto propuesto formaría un ciclo de prerrequisitos")

	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))
	assert.NoError(t, ed.Agregar(cursos[0].CursoID))

	err := ed.Guardar(context.Background())
	assert.Error(t, err)
	assert.Equal(t, EstadoEditando, ed.Estado())
	assert.Equal(t, []uuid.UUID{cursos[0].CursoID}, ed.Pendientes())
	// el mensaje del servidor llega al operador sin reformular
	assert.Equal(t, fake.errReplace.Error(), ed.UltimoError())
}

func TestCancelarDescartaSinTocarServidor(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))
	assert.NoError(t, ed.Agregar(cursos[0].CursoID))

	ed.Cancelar()

	assert.Equal(t, EstadoInactivo, ed.Estado())
	assert.Empty(t, ed.Pendientes())
	assert.Empty(t, fake.replaceCalls)
}

func TestCancelarInvalidaGuardadoEnVuelo(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))
	assert.NoError(t, ed.Agregar(cursos[0].CursoID))

	// el operador cancela mientras el reemplazo sigue en vuelo
	fake.duranteReplace = func() { ed.Cancelar() }

	assert.NoError(t, ed.Guardar(context.Background()))
	assert.Equal(t, EstadoInactivo, ed.Estado())
	assert.Empty(t, ed.Pendientes())
}

func TestRefrescoSinEscriturasEsIdempotente(t *testing.T) {
	fake, _ := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())

	assert.NoError(t, ed.CargarListado(context.Background()))
	primero := ed.Listado()
	assert.NoError(t, ed.CargarListado(context.Background()))

	assert.Equal(t, primero, ed.Listado())
}

func TestRefrescoFallidoConservaListadoAnterior(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.Len(t, ed.Listado(), 3)

	fake.errListar = errors.New("conexión rechazada")
	assert.Error(t, ed.CargarListado(context.Background()))

	// la vista no se vacía por un refresco fallido
	assert.Len(t, ed.Listado(), 3)
	assert.Equal(t, cursos[0].CursoID, ed.Listado()[0].CursoID)
}

func TestVaciarLimpiaLaListaDeTrabajo(t *testing.T) {
	fake, cursos := catalogoDeTres()
	fake.listado[1].Prerrequisitos = []api.Prerrequisito{
		{RequisitoID: cursos[0].CursoID, Codigo: cursos[0].Codigo},
	}
	fake.vaciados = 1

	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))
	assert.NoError(t, ed.EditarCurso(cursos[1].CursoID))

	n, err := ed.Vaciar(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Empty(t, ed.Pendientes())
}

func TestOperacionesFueraDeEdicion(t *testing.T) {
	fake, cursos := catalogoDeTres()
	ed := NewEditor(fake, sesionDePrueba())
	assert.NoError(t, ed.CargarListado(context.Background()))

	assert.ErrorIs(t, ed.Agregar(cursos[0].CursoID), ErrSinCurso)
	assert.ErrorIs(t, ed.Quitar(cursos[0].CursoID), ErrSinCurso)
	assert.ErrorIs(t, ed.Guardar(context.Background()), ErrSinCurso)
	assert.ErrorIs(t, ed.EditarCurso(uuid.New()), ErrCursoNoListado)
}
