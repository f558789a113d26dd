package constants

// Días de la semana (1 = Lunes ... 7 = Domingo), igual que en la BD.
const (
	DiaLunes = iota + 1
	DiaMartes
	DiaMiercoles
	DiaJueves
	DiaViernes
	DiaSabado
	DiaDomingo
)

var nombresDia = map[int]string{
	DiaLunes:     "Lunes",
	DiaMartes:    "Martes",
	DiaMiercoles: "Miércoles",
	DiaJueves:    "Jueves",
	DiaViernes:   "Viernes",
	DiaSabado:    "Sábado",
	DiaDomingo:   "Domingo",
}

func NombreDia(dia int) string {
	if n, ok := nombresDia[dia]; ok {
		return n
	}
	return "Desconocido"
}

func DiaValido(dia int) bool {
	return dia >= DiaLunes && dia <= DiaDomingo
}
