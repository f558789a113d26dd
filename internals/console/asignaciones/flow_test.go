// file: internals/console/asignaciones/flow_test.go
package asignaciones

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"portalacademico_backend/internals/console"
	"portalacademico_backend/internals/console/api"
)

/* =========================================================
   Doble del colaborador
   ========================================================= */

type colaboradorFake struct {
	cursos    []api.Curso
	secciones []api.Seccion
	docentes  []api.Docente
	bloques   []api.Bloque
	aulas     map[uuid.UUID][]api.Aula

	errReferencias error
	errCrear       error

	creadas      []api.AsignacionRequest
	actualizadas []uuid.UUID
	listados     int

	// hook que corre mientras la consulta de aulas está "en vuelo"
	duranteAulas func()
}

func (f *colaboradorFake) ListarCursos(ctx context.Context) ([]api.Curso, error) {
	if f.errReferencias != nil {
		return nil, f.errReferencias
	}
	return f.cursos, nil
}

func (f *colaboradorFake) ListarSecciones(ctx context.Context) ([]api.Seccion, error) {
	return f.secciones, nil
}

func (f *colaboradorFake) ListarDocentes(ctx context.Context) ([]api.Docente, error) {
	return f.docentes, nil
}

func (f *colaboradorFake) ListarBloques(ctx context.Context) ([]api.Bloque, error) {
	return f.bloques, nil
}

func (f *colaboradorFake) AulasDisponibles(ctx context.Context, bloqueID uuid.UUID) ([]api.Aula, error) {
	if f.duranteAulas != nil {
		hook := f.duranteAulas
		f.duranteAulas = nil
		hook()
	}
	return f.aulas[bloqueID], nil
}

func (f *colaboradorFake) CrearAsignacion(ctx context.Context, req api.AsignacionRequest) (api.Asignacion, error) {
	if f.errCrear != nil {
		return api.Asignacion{}, f.errCrear
	}
	f.creadas = append(f.creadas, req)
	return api.Asignacion{AsignacionID: uuid.New(), CursoID: req.CursoID, AulaID: req.AulaID}, nil
}

func (f *colaboradorFake) ActualizarAsignacion(ctx context.Context, id uuid.UUID, req api.AsignacionRequest) (api.Asignacion, error) {
	f.actualizadas = append(f.actualizadas, id)
	return api.Asignacion{AsignacionID: id, CursoID: req.CursoID, AulaID: req.AulaID}, nil
}

func (f *colaboradorFake) ListarAsignaciones(ctx context.Context) ([]api.Asignacion, error) {
	f.listados++
	return nil, nil
}

func nuevoEscenario() (*colaboradorFake, *Flujo) {
	fake := &colaboradorFake{
		cursos:    []api.Curso{{CursoID: uuid.New(), Codigo: "MAT-101"}},
		secciones: []api.Seccion{{SeccionID: uuid.New(), Codigo: "A"}},
		docentes:  []api.Docente{{DocenteID: uuid.New(), Codigo: "DOC-001"}},
		bloques: []api.Bloque{
			{BloqueID: uuid.New(), Dia: 1, Inicio: "08:00", Fin: "10:00"},
			{BloqueID: uuid.New(), Dia: 2, Inicio: "19:00", Fin: "21:00"},
		},
		aulas: map[uuid.UUID][]api.Aula{},
	}
	fake.aulas[fake.bloques[0].BloqueID] = []api.Aula{
		{AulaID: uuid.New(), Codigo: "R-101"},
		{AulaID: uuid.New(), Codigo: "R-204"},
	}
	fake.aulas[fake.bloques[1].BloqueID] = []api.Aula{
		{AulaID: uuid.New(), Codigo: "LAB-3"},
	}

	sesion := console.Session{OperadorID: uuid.New(), OperadorNombre: "Carmen Quispe", Rol: "coordinador"}
	return fake, NewFlujo(fake, sesion)
}

func fichaCompleta(t *testing.T, fake *colaboradorFake, fl *Flujo) {
	t.Helper()
	assert.NoError(t, fl.CargarReferencias(context.Background()))
	assert.NoError(t, fl.ElegirCurso(fake.cursos[0].CursoID))
	assert.NoError(t, fl.ElegirSeccion(fake.secciones[0].SeccionID))
	assert.NoError(t, fl.ElegirDocente(fake.docentes[0].DocenteID))
	assert.NoError(t, fl.ElegirBloque(context.Background(), fake.bloques[0].BloqueID))
	assert.NoError(t, fl.ElegirAula(fake.aulas[fake.bloques[0].BloqueID][0].AulaID))
	fl.FijarAlumnos(35)
}

/* =========================================================
   Tests
   ========================================================= */

func TestCargarReferenciasEnParalelo(t *testing.T) {
	fake, fl := nuevoEscenario()
	assert.NoError(t, fl.CargarReferencias(context.Background()))

	assert.Len(t, fl.Cursos(), 1)
	assert.Len(t, fl.Secciones(), 1)
	assert.Len(t, fl.Docentes(), 1)
	assert.Len(t, fl.Bloques(), 2)
	_ = fake
}

func TestCargarReferenciasPropagaElFallo(t *testing.T) {
	fake, fl := nuevoEscenario()
	fake.errReferencias = errors.New("conexión rechazada")

	assert.Error(t, fl.CargarReferencias(context.Background()))
	assert.Empty(t, fl.Cursos())
}

func TestElegirBloqueReemplazaCandidatasYDescartaAula(t *testing.T) {
	fake, fl := nuevoEscenario()
	assert.NoError(t, fl.CargarReferencias(context.Background()))

	assert.NoError(t, fl.ElegirBloque(context.Background(), fake.bloques[0].BloqueID))
	assert.Len(t, fl.Candidatas(), 2)
	assert.NoError(t, fl.ElegirAula(fake.aulas[fake.bloques[0].BloqueID][1].AulaID))

	// cambiar de bloque invalida el aula elegida y reemplaza la lista entera
	assert.NoError(t, fl.ElegirBloque(context.Background(), fake.bloques[1].BloqueID))
	assert.Equal(t, uuid.Nil, fl.Ficha().AulaID)
	assert.Len(t, fl.Candidatas(), 1)
	assert.Equal(t, "LAB-3", fl.Candidatas()[0].Codigo)
}

func TestElegirAulaSoloEntreCandidatas(t *testing.T) {
	fake, fl := nuevoEscenario()
	assert.NoError(t, fl.CargarReferencias(context.Background()))

	assert.ErrorIs(t, fl.ElegirAula(uuid.New()), ErrSinBloque)

	assert.NoError(t, fl.ElegirBloque(context.Background(), fake.bloques[0].BloqueID))
	assert.ErrorIs(t, fl.ElegirAula(uuid.New()), ErrAulaNoCandidata)
}

func TestRespuestaDeAulasTardiaSeDescarta(t *testing.T) {
	fake, fl := nuevoEscenario()
	assert.NoError(t, fl.CargarReferencias(context.Background()))

	// el operador cancela mientras la disponibilidad sigue en vuelo
	fake.duranteAulas = func() { fl.Cancelar() }

	assert.NoError(t, fl.ElegirBloque(context.Background(), fake.bloques[0].BloqueID))
	assert.Empty(t, fl.Candidatas(), "una respuesta tardía no debe aplicarse")
	assert.Equal(t, uuid.Nil, fl.Ficha().BloqueID)
}

func TestEnviarExigeFichaCompletaSinLlamadaRemota(t *testing.T) {
	fake, fl := nuevoEscenario()
	assert.NoError(t, fl.CargarReferencias(context.Background()))
	assert.NoError(t, fl.ElegirCurso(fake.cursos[0].CursoID))

	_, err := fl.Enviar(context.Background())
	assert.ErrorIs(t, err, ErrFichaIncompleta)
	assert.Empty(t, fake.creadas, "la validación local no debe llegar al servidor")
}

func TestEnviarExigeAlumnosPositivos(t *testing.T) {
	fake, fl := nuevoEscenario()
	fichaCompleta(t, fake, fl)
	fl.FijarAlumnos(0)

	_, err := fl.Enviar(context.Background())
	assert.ErrorIs(t, err, ErrFichaIncompleta)
	assert.Empty(t, fake.creadas)
}

func TestEnviarCreaYLimpiaLaFicha(t *testing.T) {
	fake, fl := nuevoEscenario()
	fichaCompleta(t, fake, fl)
	fl.FijarObservaciones("grupo grande")

	out, err := fl.Enviar(context.Background())
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.AsignacionID)

	assert.Len(t, fake.creadas, 1)
	assert.Equal(t, 35, fake.creadas[0].AlumnosEstimados)
	assert.Equal(t, 1, fake.listados, "tras crear se refresca el listado")

	// la ficha vuelve a cero para la siguiente asignación
	assert.Equal(t, uuid.Nil, fl.Ficha().CursoID)
	assert.Empty(t, fl.Candidatas())
	assert.False(t, fl.Ficha().EsEdicion())
}

func TestEnviarRechazadoConservaLaFicha(t *testing.T) {
	fake, fl := nuevoEscenario()
	fichaCompleta(t, fake, fl)
	fake.errCrear = errors.New("El aula ya está ocupada en ese bloque horario")

	_, err := fl.Enviar(context.Background())
	assert.Error(t, err)

	// el mensaje del servidor se muestra tal cual y la ficha queda intacta
	assert.Equal(t, fake.errCrear.Error(), fl.UltimoError())
	assert.Equal(t, fake.cursos[0].CursoID, fl.Ficha().CursoID)
	assert.NotEqual(t, uuid.Nil, fl.Ficha().AulaID)
	assert.Zero(t, fake.listados)
}

func TestEnviarDespachaActualizacionEnModoEdicion(t *testing.T) {
	fake, fl := nuevoEscenario()
	asignacionID := uuid.New()
	fl.EmpezarFicha(FichaEnEdicion(asignacionID))
	fichaCompleta(t, fake, fl)

	_, err := fl.Enviar(context.Background())
	assert.NoError(t, err)

	assert.Empty(t, fake.creadas)
	assert.Equal(t, []uuid.UUID{asignacionID}, fake.actualizadas)
}

func TestEnvioDuplicadoBloqueado(t *testing.T) {
	fake, fl := nuevoEscenario()
	fichaCompleta(t, fake, fl)

	fl.enviando = true
	_, err := fl.Enviar(context.Background())
	assert.ErrorIs(t, err, ErrEnvioEnCurso)
	assert.Empty(t, fake.creadas)
}

func TestCancelarDescartaFichaYCandidatas(t *testing.T) {
	fake, fl := nuevoEscenario()
	fichaCompleta(t, fake, fl)

	fl.Cancelar()

	assert.Equal(t, uuid.Nil, fl.Ficha().CursoID)
	assert.Empty(t, fl.Candidatas())
	assert.Empty(t, fake.creadas)
}
