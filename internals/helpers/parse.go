// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam lee un path param y lo valida como UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}
	return id, nil
}

// ParseBoolLoose acepta las variantes usuales de booleano en query string.
// El segundo retorno indica si el valor estaba presente y era reconocible.
func ParseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// ParseHoraMin convierte "HH:MM" a minutos desde medianoche.
func ParseHoraMin(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("hora no válida: %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("hora no válida: %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("hora no válida: %q", s)
	}
	return h*60 + m, nil
}

// FormatHoraMin convierte minutos desde medianoche a "HH:MM".
func FormatHoraMin(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
