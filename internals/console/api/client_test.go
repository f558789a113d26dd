// file: internals/console/api/client_test.go
package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	helper "portalacademico_backend/internals/helpers"
)

func TestListarCursosDecodificaElEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/a/cursos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"code": 200, "status": "success", "message": "Listado de cursos",
			"data": [
				{"curso_id":"7b0d2c9e-0a1f-4c59-9a30-6a2f1d6a9b01","curso_codigo":"MAT-101","curso_nombre":"Cálculo I","curso_creditos":4,"curso_ciclo":1,"curso_activo":true}
			],
			"pagination": {"page":1,"per_page":200,"total_rows":1,"total_pages":1}
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	cursos, err := c.ListarCursos(context.Background())
	assert.NoError(t, err)
	assert.Len(t, cursos, 1)
	assert.Equal(t, "MAT-101", cursos[0].Codigo)
	assert.Equal(t, "Cálculo I", cursos[0].Nombre)
}

func TestErrorDelServidorLlegaTalCual(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{
			"code": 409, "status": "error", "error": "CONFLICT",
			"message": "El aula ya está ocupada en ese bloque horario"
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.CrearAsignacion(context.Background(), AsignacionRequest{})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	// el mensaje del servidor se conserva sin reformular
	assert.Equal(t, "El aula ya está ocupada en ese bloque horario", err.Error())
}

func TestReemplazarPrerrequisitosEnviaElConjuntoCompleto(t *testing.T) {
	cursoID := uuid.New()
	reqs := []uuid.UUID{uuid.New(), uuid.New()}

	var capturado struct {
		RequisitoIDs []uuid.UUID `json:"requisito_ids"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/a/prerrequisitos/curso/"+cursoID.String(), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&capturado))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"code":200,"status":"success","message":"Prerrequisitos reemplazados","data":null}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	assert.NoError(t, c.ReemplazarPrerrequisitos(context.Background(), cursoID, reqs))
	assert.Equal(t, reqs, capturado.RequisitoIDs)
}

func TestVaciarPrerrequisitosDevuelveElConteo(t *testing.T) {
	cursoID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"code":200,"status":"success","message":"Prerrequisitos eliminados","data":{"eliminados":3}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	n, err := c.VaciarPrerrequisitos(context.Background(), cursoID)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

// Levanta una app fiber con la misma configuración de errores del
// servidor real y la consume con el cliente: el rechazo del backend debe
// llegar como APIError con el mensaje intacto, de punta a punta.
func TestRechazoDeFiberLlegaVerbatimAlCliente(t *testing.T) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
	})
	app.Post("/api/a/asignaciones", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "El aula ya está ocupada en ese bloque horario")
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	defer func() { _ = app.Shutdown() }()

	c := NewClient("http://"+ln.Addr().String(), 2*time.Second)
	_, err = c.CrearAsignacion(context.Background(), AsignacionRequest{})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "El aula ya está ocupada en ese bloque horario", err.Error())
}

func TestRespuestaNoJSONProduceErrorLegible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>proxy caído</html>")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.ListarBloques(context.Background())
	assert.ErrorContains(t, err, "respuesta no válida del servidor")
}
