// file: cmd/consola/main.go
// Consola de operador: superficie de línea de comandos sobre los dos
// flujos (editor de prerrequisitos y asignación de horarios).
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"portalacademico_backend/internals/configs"
	"portalacademico_backend/internals/console"
	"portalacademico_backend/internals/console/api"
	"portalacademico_backend/internals/console/asignaciones"
	"portalacademico_backend/internals/console/prerrequisitos"
)

func main() {
	configs.LoadEnv()

	baseURL := configs.GetEnv("PORTAL_API_URL", "http://localhost:3000")
	operador := configs.GetEnv("PORTAL_OPERADOR", "Operador")

	sesion := console.Session{
		OperadorID:     uuid.New(),
		OperadorNombre: operador,
		Rol:            "coordinador",
	}

	cliente := api.NewClient(baseURL, 10*time.Second)
	editor := prerrequisitos.NewEditor(cliente, sesion)
	flujo := asignaciones.NewFlujo(cliente, sesion)

	fmt.Printf("Portal Académico — consola de operador (%s)\n", baseURL)
	fmt.Printf("Sesión: %s [%s]\n", sesion.OperadorNombre, sesion.Rol)
	fmt.Println(`Escriba "ayuda" para ver los comandos.`)

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		linea := strings.TrimSpace(sc.Text())
		if linea == "" {
			continue
		}
		campos := strings.Fields(linea)
		cmd, args := campos[0], campos[1:]

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		switch cmd {
		case "salir":
			cancel()
			return
		case "ayuda":
			imprimirAyuda()

		// ----- editor de prerrequisitos -----
		case "cursos":
			if err := editor.CargarListado(ctx); err != nil {
				fmt.Println("✗", err)
				break
			}
			for i, c := range editor.Listado() {
				fmt.Printf("  [%d] %s  %s (%d prerrequisitos)\n", i, c.Codigo, c.Nombre, len(c.Prerrequisitos))
			}
		case "editar":
			conIndiceDeListado(editor, args, func(c api.CursoConPrerrequisitos) {
				if err := editor.EditarCurso(c.CursoID); err != nil {
					fmt.Println("✗", err)
					return
				}
				if n := editor.AristasDescartadas(); n > 0 {
					fmt.Printf("⚠ %d prerrequisito(s) apuntaban a cursos ya inexistentes y se descartaron\n", n)
				}
				fmt.Printf("Editando %s — %d pendiente(s)\n", c.Codigo, len(editor.Pendientes()))
			})
		case "agregar":
			conIndiceDeListado(editor, args, func(c api.CursoConPrerrequisitos) {
				if err := editor.Agregar(c.CursoID); err != nil {
					fmt.Println("✗", err)
					return
				}
				fmt.Printf("Pendientes: %d\n", len(editor.Pendientes()))
			})
		case "quitar":
			conIndiceDeListado(editor, args, func(c api.CursoConPrerrequisitos) {
				if err := editor.Quitar(c.CursoID); err != nil {
					fmt.Println("✗", err)
					return
				}
				fmt.Printf("Pendientes: %d\n", len(editor.Pendientes()))
			})
		case "guardar":
			if err := editor.Guardar(ctx); err != nil {
				fmt.Println("✗", err)
				break
			}
			fmt.Println("✓ Prerrequisitos guardados")
		case "vaciar":
			n, err := editor.Vaciar(ctx)
			if err != nil {
				fmt.Println("✗", err)
				break
			}
			fmt.Printf("✓ %d prerrequisito(s) eliminados\n", n)
		case "cancelar":
			editor.Cancelar()
			flujo.Cancelar()
			fmt.Println("Edición descartada")

		// ----- flujo de asignación -----
		case "referencias":
			if err := flujo.CargarReferencias(ctx); err != nil {
				fmt.Println("✗", err)
				break
			}
			fmt.Printf("Cargado: %d cursos, %d secciones, %d docentes, %d bloques\n",
				len(flujo.Cursos()), len(flujo.Secciones()), len(flujo.Docentes()), len(flujo.Bloques()))
		case "bloques":
			for i, b := range flujo.Bloques() {
				fmt.Printf("  [%d] %s %s–%s (%s)\n", i, b.DiaNombre, b.Inicio, b.Fin, b.Turno)
			}
		case "bloque":
			i, ok := indice(args, len(flujo.Bloques()))
			if !ok {
				break
			}
			if err := flujo.ElegirBloque(ctx, flujo.Bloques()[i].BloqueID); err != nil {
				fmt.Println("✗", err)
				break
			}
			for j, a := range flujo.Candidatas() {
				fmt.Printf("  [%d] %s  %s (cap. %d)\n", j, a.Codigo, a.Nombre, a.Capacidad)
			}
			if len(flujo.Candidatas()) == 0 {
				fmt.Println("  (sin aulas disponibles en ese bloque)")
			}
		case "aula":
			i, ok := indice(args, len(flujo.Candidatas()))
			if !ok {
				break
			}
			if err := flujo.ElegirAula(flujo.Candidatas()[i].AulaID); err != nil {
				fmt.Println("✗", err)
			}
		case "curso":
			i, ok := indice(args, len(flujo.Cursos()))
			if !ok {
				break
			}
			if err := flujo.ElegirCurso(flujo.Cursos()[i].CursoID); err != nil {
				fmt.Println("✗", err)
			}
		case "seccion":
			i, ok := indice(args, len(flujo.Secciones()))
			if !ok {
				break
			}
			if err := flujo.ElegirSeccion(flujo.Secciones()[i].SeccionID); err != nil {
				fmt.Println("✗", err)
			}
		case "docente":
			i, ok := indice(args, len(flujo.Docentes()))
			if !ok {
				break
			}
			if err := flujo.ElegirDocente(flujo.Docentes()[i].DocenteID); err != nil {
				fmt.Println("✗", err)
			}
		case "alumnos":
			if len(args) != 1 {
				fmt.Println("uso: alumnos <n>")
				break
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("✗ número no válido")
				break
			}
			flujo.FijarAlumnos(n)
		case "obs":
			flujo.FijarObservaciones(strings.Join(args, " "))
		case "enviar":
			out, err := flujo.Enviar(ctx)
			if err != nil {
				fmt.Println("✗", err)
				break
			}
			fmt.Printf("✓ Asignación registrada (%s)\n", out.AsignacionID)

		default:
			fmt.Println("Comando desconocido; escriba \"ayuda\"")
		}
		cancel()
	}

	if err := sc.Err(); err != nil {
		log.Fatalf("lectura de consola: %v", err)
	}
}

func indice(args []string, limite int) (int, bool) {
	if len(args) != 1 {
		fmt.Println("uso: <comando> <índice>")
		return 0, false
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= limite {
		fmt.Println("✗ índice fuera de rango")
		return 0, false
	}
	return i, true
}

func conIndiceDeListado(editor *prerrequisitos.Editor, args []string, fn func(api.CursoConPrerrequisitos)) {
	i, ok := indice(args, len(editor.Listado()))
	if !ok {
		return
	}
	fn(editor.Listado()[i])
}

func imprimirAyuda() {
	fmt.Print(`Prerrequisitos:
  cursos                 listar cursos con sus prerrequisitos
  editar <i>             abrir la lista de trabajo del curso
  agregar <i>            añadir el curso i como prerrequisito
  quitar <i>             quitar el curso i de la lista de trabajo
  guardar                aplicar la lista completa en el servidor
  vaciar                 eliminar todos los prerrequisitos del curso
  cancelar               descartar la edición en curso

Asignaciones:
  referencias            cargar cursos/secciones/docentes/bloques
  bloques                listar bloques horarios
  bloque <i>             elegir bloque y consultar aulas disponibles
  aula <i>               elegir aula entre las disponibles
  curso|seccion|docente <i>
  alumnos <n>            fijar alumnos estimados
  obs <texto>            observaciones
  enviar                 registrar la asignación

  ayuda | salir
`)
}
