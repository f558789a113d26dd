package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "portalacademico_backend/internals/features/horarios/bloques/model"
)

func TestToModelDuracion(t *testing.T) {
	tests := []struct {
		nombre string
		inicio string
		fin    string
		ok     bool
	}{
		{"dos horas pasa", "08:00", "10:00", true},
		{"seis horas exactas pasa", "08:00", "14:00", true},
		{"siete horas rechazado", "08:00", "15:00", false},
		{"361 minutos rechazado", "08:00", "14:01", false},
		{"duracion cero rechazada", "08:00", "08:00", false},
		{"fin antes de inicio rechazado", "10:00", "08:00", false},
		{"hora malformada rechazada", "8h00", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			req := CreateBloqueRequest{Dia: 1, Inicio: tt.inicio, Fin: tt.fin}
			mod, err := req.ToModel()
			if tt.ok {
				assert.NoError(t, err)
				assert.Positive(t, mod.DuracionMin())
				assert.LessOrEqual(t, mod.DuracionMin(), m.DuracionMaxMin)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestToModelDiaInvalido(t *testing.T) {
	req := CreateBloqueRequest{Dia: 8, Inicio: "08:00", Fin: "10:00"}
	_, err := req.ToModel()
	assert.Error(t, err)
}

func TestTurnoDeInicio(t *testing.T) {
	tests := []struct {
		inicio string
		min    int
		turno  m.TurnoEnum
	}{
		{"07:00", 7 * 60, m.TurnoManana},
		{"11:59", 11*60 + 59, m.TurnoManana},
		{"12:00", 12 * 60, m.TurnoTarde},
		{"18:59", 18*60 + 59, m.TurnoTarde},
		{"19:00", 19 * 60, m.TurnoNoche}, // umbral vespertino autoritativo
		{"22:00", 22 * 60, m.TurnoNoche},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.turno, m.TurnoDeInicio(tt.min), "inicio %s", tt.inicio)
	}
}

func TestFromBloqueModelDeriva(t *testing.T) {
	req := CreateBloqueRequest{Dia: 3, Inicio: "19:30", Fin: "21:30"}
	mod, err := req.ToModel()
	assert.NoError(t, err)

	resp := FromBloqueModel(mod)
	assert.Equal(t, "Miércoles", resp.DiaNombre)
	assert.Equal(t, "19:30", resp.Inicio)
	assert.Equal(t, "21:30", resp.Fin)
	assert.Equal(t, 120, resp.DuracionMin)
	assert.Equal(t, m.TurnoNoche, resp.Turno)
}
