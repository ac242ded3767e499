package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

func nuevoBorrador(idEmisor int) *models.BorradorMensaje {
	return &models.BorradorMensaje{
		IDEmisor:  idEmisor,
		Titulo:    "Aviso de simulacro",
		Contenido: "Simulacro el viernes",
	}
}

func TestCrearBorradorAsignaFecha(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBorradorService(db, testConfig())

	borrador := nuevoBorrador(5)
	require.NoError(t, svc.CrearBorrador(borrador))
	assert.NotZero(t, borrador.ID)
	assert.False(t, borrador.FechaBorrador.IsZero())
}

func TestCrearBorradorRespetaFechaDada(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBorradorService(db, testConfig())

	fecha := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	borrador := nuevoBorrador(5)
	borrador.FechaBorrador = fecha
	require.NoError(t, svc.CrearBorrador(borrador))
	assert.WithinDuration(t, fecha, borrador.FechaBorrador, 0)
}

func TestCrearBorradorValidaciones(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBorradorService(db, testConfig())

	err := svc.CrearBorrador(nuevoBorrador(0))
	require.Error(t, err)
	assert.Equal(t, "El emisor del borrador no puede ser cero.", err.Error())

	sinTitulo := nuevoBorrador(5)
	sinTitulo.Titulo = " "
	err = svc.CrearBorrador(sinTitulo)
	require.Error(t, err)
	assert.Equal(t, code.KindValidation, code.KindOf(err))

	tituloLargo := nuevoBorrador(5)
	tituloLargo.Titulo = "Este título supera con creces el máximo"
	err = svc.CrearBorrador(tituloLargo)
	require.Error(t, err)
	assert.Equal(t, code.ExcedeMaximo("titulo", 30), err.Error())
}

func TestActualizarBorradorSoloTituloYContenido(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBorradorService(db, testConfig())

	borrador := nuevoBorrador(5)
	require.NoError(t, svc.CrearBorrador(borrador))

	actualizado, err := svc.ActualizarBorrador(borrador.ID, map[string]interface{}{
		"titulo": "Aviso reprogramado",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aviso reprogramado", actualizado.Titulo)
	assert.Equal(t, "Simulacro el viernes", actualizado.Contenido)
	assert.Equal(t, 5, actualizado.IDEmisor)
}

func TestEliminarBorradorInexistente(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBorradorService(db, testConfig())

	err := svc.EliminarBorrador(99)
	require.Error(t, err)
	assert.Equal(t, code.KindNotFound, code.KindOf(err))
	assert.Equal(t, code.MsgBorradorNoEncontrado, err.Error())
}

func TestBuscarBorradoresPorEmisor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBorradorService(db, testConfig())

	require.NoError(t, svc.CrearBorrador(nuevoBorrador(5)))
	require.NoError(t, svc.CrearBorrador(nuevoBorrador(5)))
	require.NoError(t, svc.CrearBorrador(nuevoBorrador(9)))

	delEmisor, err := svc.BuscarPorEmisor(5)
	require.NoError(t, err)
	assert.Len(t, delEmisor, 2)
}

func TestBuscarBorradoresPorRangoFechas(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBorradorService(db, testConfig())

	viejo := nuevoBorrador(5)
	viejo.FechaBorrador = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.CrearBorrador(viejo))

	reciente := nuevoBorrador(5)
	reciente.FechaBorrador = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.CrearBorrador(reciente))

	enRango, err := svc.BuscarPorRangoFechas(
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Len(t, enRango, 1)
}
