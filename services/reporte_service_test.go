package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

func nuevoReporte(idIncidente, bomberoEmisor int) *models.ReporteOperativo {
	return &models.ReporteOperativo{
		IDIncidente:     idIncidente,
		TipoOperacion:   "Incendio estructural",
		EstadoOperacion: "En curso",
		BomberoEmisorID: bomberoEmisor,
	}
}

func TestCrearReporteAsignaFecha(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	reporte := nuevoReporte(101, 7)
	require.NoError(t, svc.CrearReporte(reporte))
	assert.NotZero(t, reporte.ID)
	// La fecha siempre la pone el servidor
	assert.False(t, reporte.FechaHoraReporte.IsZero())
}

func TestCrearReporteValidaciones(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	negativo := -1

	casos := []struct {
		nombre  string
		mutar   func(*models.ReporteOperativo)
		mensaje string
	}{
		{"incidente cero", func(r *models.ReporteOperativo) { r.IDIncidente = 0 },
			"El ID del incidente es obligatorio y debe ser un número positivo."},
		{"emisor cero", func(r *models.ReporteOperativo) { r.BomberoEmisorID = 0 },
			"El ID del bombero emisor es obligatorio y debe ser un número positivo."},
		{"tipo vacio", func(r *models.ReporteOperativo) { r.TipoOperacion = "  " },
			"El tipo de operación es obligatorio."},
		{"estado vacio", func(r *models.ReporteOperativo) { r.EstadoOperacion = "" },
			"El estado de la operación es obligatorio."},
		{"heridos negativos", func(r *models.ReporteOperativo) { r.NumHeridos = &negativo },
			"El número de heridos no puede ser negativo."},
		{"fallecidos negativos", func(r *models.ReporteOperativo) { r.NumFallecidos = &negativo },
			"El número de fallecidos no puede ser negativo."},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			reporte := nuevoReporte(101, 7)
			caso.mutar(reporte)
			err := svc.CrearReporte(reporte)
			require.Error(t, err)
			assert.Equal(t, code.KindValidation, code.KindOf(err))
			assert.Equal(t, caso.mensaje, err.Error())
		})
	}
}

func TestCrearReporteAceptaContadoresEnCero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	cero := 0
	reporte := nuevoReporte(101, 7)
	reporte.NumHeridos = &cero
	reporte.NumFallecidos = &cero
	require.NoError(t, svc.CrearReporte(reporte))

	guardado, err := svc.GetReporteByID(reporte.ID)
	require.NoError(t, err)
	// Cero informado se distingue de "no informado"
	require.NotNil(t, guardado.NumHeridos)
	assert.Zero(t, *guardado.NumHeridos)
	assert.Nil(t, guardado.NumEvacuados)
}

func TestActualizarReporteParcial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	reporte := nuevoReporte(101, 7)
	require.NoError(t, svc.CrearReporte(reporte))
	fechaOriginal := reporte.FechaHoraReporte

	actualizado, err := svc.ActualizarReporte(reporte.ID, map[string]interface{}{
		"estado_operacion": "Finalizada",
		"num_heridos":      2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Finalizada", actualizado.EstadoOperacion)
	require.NotNil(t, actualizado.NumHeridos)
	assert.Equal(t, 2, *actualizado.NumHeridos)
	// La fecha del reporte no cambia al actualizar
	assert.WithinDuration(t, fechaOriginal, actualizado.FechaHoraReporte, 0)
	assert.Equal(t, "Incendio estructural", actualizado.TipoOperacion)
}

func TestActualizarReporteMensajesDeActualizacion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	reporte := nuevoReporte(101, 7)
	require.NoError(t, svc.CrearReporte(reporte))

	_, err := svc.ActualizarReporte(reporte.ID, map[string]interface{}{"id_incidente": 0})
	require.Error(t, err)
	assert.Equal(t, "El ID del incidente debe ser un número positivo.", err.Error())

	_, err = svc.ActualizarReporte(reporte.ID, map[string]interface{}{"tipo_operacion": " "})
	require.Error(t, err)
	assert.Equal(t, "El tipo de operación no puede estar vacío.", err.Error())
}

func TestEliminarReporte(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	reporte := nuevoReporte(101, 7)
	require.NoError(t, svc.CrearReporte(reporte))
	require.NoError(t, svc.EliminarReporte(reporte.ID))

	err := svc.EliminarReporte(reporte.ID)
	require.Error(t, err)
	assert.Equal(t, code.MsgReporteNoEncontrado, err.Error())
}

func TestBusquedasDeReportes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	dos := 2
	primero := nuevoReporte(101, 7)
	primero.NumHeridos = &dos
	require.NoError(t, svc.CrearReporte(primero))

	segundo := nuevoReporte(101, 8)
	segundo.EstadoOperacion = "Finalizada"
	segundo.TipoOperacion = "Rescate vehicular"
	require.NoError(t, svc.CrearReporte(segundo))

	tercero := nuevoReporte(202, 7)
	require.NoError(t, svc.CrearReporte(tercero))

	porIncidente, err := svc.BuscarPorIncidente(101)
	require.NoError(t, err)
	assert.Len(t, porIncidente, 2)

	porEmisor, err := svc.BuscarPorBomberoEmisor(7)
	require.NoError(t, err)
	assert.Len(t, porEmisor, 2)

	// El estado se compara exacto
	porEstado, err := svc.BuscarPorEstado("Finalizada")
	require.NoError(t, err)
	assert.Len(t, porEstado, 1)

	// El tipo se busca por contenido sin distinguir mayúsculas
	porTipo, err := svc.BuscarPorTipoOperacion("RESCATE")
	require.NoError(t, err)
	assert.Len(t, porTipo, 1)

	combinado, err := svc.BuscarPorIncidenteYEstado(101, "En curso")
	require.NoError(t, err)
	assert.Len(t, combinado, 1)

	conHeridos, err := svc.BuscarConHeridosMinimos(1)
	require.NoError(t, err)
	assert.Len(t, conHeridos, 1)
}

func TestBuscarReportesPorRangoDuracion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReporteService(db, testConfig())

	corta := 30
	larga := 120

	rapido := nuevoReporte(101, 7)
	rapido.DuracionOperacionMinutos = &corta
	require.NoError(t, svc.CrearReporte(rapido))

	extenso := nuevoReporte(102, 7)
	extenso.DuracionOperacionMinutos = &larga
	require.NoError(t, svc.CrearReporte(extenso))

	// El rango incluye ambos extremos
	enRango, err := svc.BuscarPorRangoDuracion(30, 60)
	require.NoError(t, err)
	assert.Len(t, enRango, 1)

	todos, err := svc.BuscarPorRangoDuracion(0, 120)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
