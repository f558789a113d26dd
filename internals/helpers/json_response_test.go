// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func appDePrueba() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

type envelopeError struct {
	Code      int    `json:"code"`
	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func TestErrorHandlerEnvuelveLosFiberError(t *testing.T) {
	app := appDePrueba()
	app.Get("/conflicto", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "El aula ya está ocupada en ese bloque horario")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/conflicto", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	raw, _ := io.ReadAll(resp.Body)
	var env envelopeError
	assert.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, fiber.StatusConflict, env.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "CONFLICT", env.ErrorCode)
	// el texto del handler viaja sin reformular
	assert.Equal(t, "El aula ya está ocupada en ese bloque horario", env.Message)
}

func TestErrorHandlerTrataErroresPlanosComo500(t *testing.T) {
	app := appDePrueba()
	app.Get("/roto", func(c *fiber.Ctx) error {
		return errors.New("algo falló adentro")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/roto", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var env envelopeError
	assert.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "INTERNAL_ERROR", env.ErrorCode)
	assert.Equal(t, "algo falló adentro", env.Message)
}

func TestErrorHandlerRespeta404DeRuta(t *testing.T) {
	app := appDePrueba()

	resp, err := app.Test(httptest.NewRequest("GET", "/no-existe", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var env envelopeError
	assert.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)
}
