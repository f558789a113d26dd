// file: internals/features/academico/prerrequisitos/controller/prerrequisito_controller_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAlcanzable(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	casos := []struct {
		nombre string
		ady    map[uuid.UUID][]uuid.UUID
		desde  uuid.UUID
		hasta  uuid.UUID
		quiere bool
	}{
		{
			nombre: "ciclo directo A→B→A",
			ady:    map[uuid.UUID][]uuid.UUID{a: {b}, b: {a}},
			desde:  b,
			hasta:  a,
			quiere: true,
		},
		{
			nombre: "ciclo transitivo A→B→C→A",
			ady:    map[uuid.UUID][]uuid.UUID{a: {b}, b: {c}, c: {a}},
			desde:  b,
			hasta:  a,
			quiere: true,
		},
		{
			nombre: "diamante sin ciclo no alcanza hacia atrás",
			ady:    map[uuid.UUID][]uuid.UUID{a: {b, c}, b: {d}, c: {d}},
			desde:  d,
			hasta:  a,
			quiere: false,
		},
		{
			nombre: "diamante hacia adelante sí alcanza",
			ady:    map[uuid.UUID][]uuid.UUID{a: {b, c}, b: {d}, c: {d}},
			desde:  a,
			hasta:  d,
			quiere: true,
		},
		{
			nombre: "grafo vacío",
			ady:    map[uuid.UUID][]uuid.UUID{},
			desde:  a,
			hasta:  b,
			quiere: false,
		},
		{
			nombre: "camino vacío: un nodo se alcanza a sí mismo",
			ady:    map[uuid.UUID][]uuid.UUID{},
			desde:  a,
			hasta:  a,
			quiere: true,
		},
		{
			nombre: "rama desconectada",
			ady:    map[uuid.UUID][]uuid.UUID{a: {b}, c: {d}},
			desde:  c,
			hasta:  b,
			quiere: false,
		},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.quiere, alcanzable(tc.ady, tc.desde, tc.hasta))
		})
	}
}

// El reemplazo instala las aristas nuevas antes de caminar: un conjunto
// que cierra un ciclo a través de terceros debe detectarse aunque
// ninguna arista nueva apunte directamente al curso.
func TestAlcanzableConAristasInstaladas(t *testing.T) {
	curso, x, y := uuid.New(), uuid.New(), uuid.New()

	// grafo existente: X→Y, Y→curso; propuesta: curso→X
	ady := map[uuid.UUID][]uuid.UUID{
		x:     {y},
		y:     {curso},
		curso: {x}, // el conjunto propuesto, ya instalado
	}

	assert.True(t, alcanzable(ady, x, curso))

	// sin la arista Y→curso el conjunto es aceptable
	ady[y] = nil
	assert.False(t, alcanzable(ady, x, curso))
}
