// file: internals/console/api/client.go
// Cliente HTTP del portal: la consola de operador habla con el backend
// exclusivamente a través de este paquete.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Client envuelve net/http con la base URL del backend y un timeout duro:
// una llamada colgada no puede dejar la consola bloqueada para siempre.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError conserva el mensaje del servidor tal cual: la consola lo muestra
// al operador sin reformular.
type APIError struct {
	Status  int
	Mensaje string
}

func (e *APIError) Error() string { return e.Mensaje }

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("respuesta no válida del servidor: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Mensaje: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := sonic.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("respuesta no válida del servidor: %w", err)
		}
	}
	return nil
}

/* =========================================================
   ACADÉMICO
   ========================================================= */

func (c *Client) ListarCursos(ctx context.Context) ([]Curso, error) {
	var out []Curso
	if err := c.do(ctx, http.MethodGet, "/api/a/cursos?per_page=200", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListarCursosConPrerrequisitos(ctx context.Context) ([]CursoConPrerrequisitos, error) {
	var out []CursoConPrerrequisitos
	if err := c.do(ctx, http.MethodGet, "/api/a/cursos-con-prerrequisitos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReemplazarPrerrequisitos sustituye el conjunto completo del curso en una
// sola llamada; el servidor lo aplica en una transacción.
func (c *Client) ReemplazarPrerrequisitos(ctx context.Context, cursoID uuid.UUID, requisitos []uuid.UUID) error {
	if requisitos == nil {
		requisitos = []uuid.UUID{}
	}
	body := map[string]any{"requisito_ids": requisitos}
	return c.do(ctx, http.MethodPut, "/api/a/prerrequisitos/curso/"+cursoID.String(), body, nil)
}

func (c *Client) VaciarPrerrequisitos(ctx context.Context, cursoID uuid.UUID) (int64, error) {
	var out struct {
		Eliminados int64 `json:"eliminados"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/a/prerrequisitos/curso/"+cursoID.String(), nil, &out); err != nil {
		return 0, err
	}
	return out.Eliminados, nil
}

/* =========================================================
   HORARIOS
   ========================================================= */

func (c *Client) ListarSecciones(ctx context.Context) ([]Seccion, error) {
	var out []Seccion
	if err := c.do(ctx, http.MethodGet, "/api/a/secciones?activo=true", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListarDocentes(ctx context.Context) ([]Docente, error) {
	var out []Docente
	if err := c.do(ctx, http.MethodGet, "/api/a/docentes?activo=true", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListarBloques(ctx context.Context) ([]Bloque, error) {
	var out []Bloque
	if err := c.do(ctx, http.MethodGet, "/api/a/bloques?activo=true", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AulasDisponibles(ctx context.Context, bloqueID uuid.UUID) ([]Aula, error) {
	var out []Aula
	if err := c.do(ctx, http.MethodGet, "/api/a/aulas/disponibles/"+bloqueID.String(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CrearAsignacion(ctx context.Context, req AsignacionRequest) (Asignacion, error) {
	var out Asignacion
	if err := c.do(ctx, http.MethodPost, "/api/a/asignaciones", req, &out); err != nil {
		return Asignacion{}, err
	}
	return out, nil
}

func (c *Client) ActualizarAsignacion(ctx context.Context, id uuid.UUID, req AsignacionRequest) (Asignacion, error) {
	var out Asignacion
	if err := c.do(ctx, http.MethodPut, "/api/a/asignaciones/"+id.String(), req, &out); err != nil {
		return Asignacion{}, err
	}
	return out, nil
}

func (c *Client) ListarAsignaciones(ctx context.Context) ([]Asignacion, error) {
	var out []Asignacion
	if err := c.do(ctx, http.MethodGet, "/api/a/asignaciones", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
