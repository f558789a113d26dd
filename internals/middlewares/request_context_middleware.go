// file: internals/middlewares/request_context_middleware.go
package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// QueryTimeout acota el contexto de usuario de cada request; los
// controladores lo propagan a GORM con WithContext, de modo que el
// corte HTTP y el statement_timeout de la BD van alineados.
const QueryTimeout = 5 * time.Second

// RequestContext asigna X-Request-ID, mide la duración y cuelga un
// contexto con deadline en c.UserContext() para las consultas.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), QueryTimeout)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
