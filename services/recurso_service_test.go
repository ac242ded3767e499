package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

func nuevoRecurso() *models.RecursoEducativo {
	return &models.RecursoEducativo{
		TipoRecurso:           "Video",
		Nombre:                "Primeros auxilios básicos",
		Autor:                 "Cuerpo de Bomberos",
		URL:                   "https://capacitaciones.safe-rescue.cl/primeros-auxilios",
		FechaPublicacionAutor: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCrearRecursoAsignaFechaDeCreacion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecursoService(db, testConfig())

	recurso := nuevoRecurso()
	require.NoError(t, svc.CrearRecurso(recurso))
	assert.NotZero(t, recurso.ID)
	assert.False(t, recurso.FechaCreacionRecurso.IsZero())
}

func TestCrearRecursoValidaciones(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecursoService(db, testConfig())

	casos := []struct {
		nombre  string
		mutar   func(*models.RecursoEducativo)
		mensaje string
	}{
		{"tipo corto", func(r *models.RecursoEducativo) { r.TipoRecurso = "V" },
			"El tipo de recurso debe tener entre 2 y 50 caracteres y no puede estar en blanco."},
		{"nombre en blanco", func(r *models.RecursoEducativo) { r.Nombre = "   " },
			"El nombre del recurso debe tener entre 3 y 100 caracteres y no puede estar en blanco."},
		{"autor corto", func(r *models.RecursoEducativo) { r.Autor = "AB" },
			"El autor debe tener entre 3 y 100 caracteres y no puede estar en blanco."},
		{"url vacia", func(r *models.RecursoEducativo) { r.URL = "" },
			"La URL no puede estar en blanco y no puede exceder los 500 caracteres."},
		{"url invalida", func(r *models.RecursoEducativo) { r.URL = "esto-no-es-una-url" },
			"La URL proporcionada no es válida."},
		{"fecha nula", func(r *models.RecursoEducativo) { r.FechaPublicacionAutor = time.Time{} },
			"La fecha de publicación del autor no puede ser nula."},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			recurso := nuevoRecurso()
			caso.mutar(recurso)
			err := svc.CrearRecurso(recurso)
			require.Error(t, err)
			assert.Equal(t, code.KindValidation, code.KindOf(err))
			assert.Equal(t, caso.mensaje, err.Error())
		})
	}
}

func TestCrearRecursoAceptaEsquemasAlternativos(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecursoService(db, testConfig())

	for _, url := range []string{
		"http://intranet/manual",
		"ftp://archivos.safe-rescue.cl/protocolos.pdf",
		"file://respaldo/capacitacion",
	} {
		recurso := nuevoRecurso()
		recurso.URL = url
		require.NoError(t, svc.CrearRecurso(recurso), "url: %s", url)
	}
}

func TestActualizarRecursoNoTocaFechaDeCreacion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecursoService(db, testConfig())

	recurso := nuevoRecurso()
	require.NoError(t, svc.CrearRecurso(recurso))
	fechaCreacion := recurso.FechaCreacionRecurso

	actualizado, err := svc.ActualizarRecurso(recurso.ID, map[string]interface{}{
		"nombre": "Primeros auxilios avanzados",
	})
	require.NoError(t, err)
	assert.Equal(t, "Primeros auxilios avanzados", actualizado.Nombre)
	assert.WithinDuration(t, fechaCreacion, actualizado.FechaCreacionRecurso, 0)
}

func TestActualizarRecursoValidaURL(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecursoService(db, testConfig())

	recurso := nuevoRecurso()
	require.NoError(t, svc.CrearRecurso(recurso))

	_, err := svc.ActualizarRecurso(recurso.ID, map[string]interface{}{
		"url": "sin-esquema",
	})
	require.Error(t, err)
	assert.Equal(t, "La URL proporcionada no es válida.", err.Error())
}

func TestEliminarRecursoInexistente(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecursoService(db, testConfig())

	err := svc.EliminarRecurso(99)
	require.Error(t, err)
	assert.Equal(t, code.KindNotFound, code.KindOf(err))
	assert.Equal(t, code.MsgRecursoNoEncontrado, err.Error())
}

func TestBusquedasDeRecursos(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecursoService(db, testConfig())

	video := nuevoRecurso()
	require.NoError(t, svc.CrearRecurso(video))

	guia := nuevoRecurso()
	guia.TipoRecurso = "Guía"
	guia.Nombre = "Manual de rescate en altura"
	guia.Autor = "Academia Nacional"
	guia.FechaPublicacionAutor = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.CrearRecurso(guia))

	porTipo, err := svc.BuscarPorTipo("Video")
	require.NoError(t, err)
	assert.Len(t, porTipo, 1)

	porAutor, err := svc.BuscarPorAutor("Academia Nacional")
	require.NoError(t, err)
	assert.Len(t, porAutor, 1)

	// Búsqueda por contenido sin distinguir mayúsculas
	porNombre, err := svc.BuscarPorNombre("RESCATE")
	require.NoError(t, err)
	assert.Len(t, porNombre, 1)

	despues, err := svc.BuscarPublicadosDespues(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, despues, 1)

	antes, err := svc.BuscarCreadosAntes(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, antes, 2)

	combinado, err := svc.BuscarPorTipoYAutor("Guía", "Academia Nacional")
	require.NoError(t, err)
	assert.Len(t, combinado, 1)
}
