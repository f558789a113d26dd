// file: internals/console/session.go
package console

import "github.com/google/uuid"

// Session es el contexto explícito de sesión del operador. Se pasa a los
// constructores de cada flujo; ningún flujo lee estado ambiental.
type Session struct {
	OperadorID     uuid.UUID
	OperadorNombre string
	Rol            string // superadmin | admin
}
