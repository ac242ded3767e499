package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

func nuevoCiudadano(run, telefono int64) *models.Ciudadano {
	return &models.Ciudadano{
		Run:      run,
		Dv:       "1",
		Nombre:   "María",
		APaterno: "González",
		AMaterno: "Rojas",
		Telefono: telefono,
	}
}

func TestCreateCiudadanoSinCredencial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCiudadanoService(db, testConfig())

	// El registro ciudadano no exige cuenta de acceso
	ciudadano := nuevoCiudadano(23456789, 912345678)
	require.NoError(t, svc.CreateCiudadano(ciudadano))
	assert.NotZero(t, ciudadano.ID)
	assert.Nil(t, ciudadano.CredencialID)
}

func TestCreateCiudadanoRunDuplicado(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCiudadanoService(db, testConfig())

	require.NoError(t, svc.CreateCiudadano(nuevoCiudadano(23456789, 912345678)))

	err := svc.CreateCiudadano(nuevoCiudadano(23456789, 922222222))
	require.Error(t, err)
	assert.Equal(t, code.KindConflict, code.KindOf(err))
	assert.Equal(t, code.MsgRunExiste, err.Error())
}

func TestCiudadanoYBomberoNoCompartenUnicidad(t *testing.T) {
	db := setupTestDB(t)
	ciudadanoSvc := NewCiudadanoService(db, testConfig())
	bomberoSvc := NewBomberoService(db, testConfig())

	// El mismo RUN puede existir en ambos registros: son tablas distintas
	require.NoError(t, bomberoSvc.CreateBombero(nuevoBombero(12345678, 987654321)))
	require.NoError(t, ciudadanoSvc.CreateCiudadano(nuevoCiudadano(12345678, 987654321)))
}

func TestUpdateCiudadanoParcial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCiudadanoService(db, testConfig())

	ciudadano := nuevoCiudadano(23456789, 912345678)
	require.NoError(t, svc.CreateCiudadano(ciudadano))

	actualizado, err := svc.UpdateCiudadano(ciudadano.ID, map[string]interface{}{
		"telefono": int64(933333333),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(933333333), actualizado.Telefono)
	assert.Equal(t, "María", actualizado.Nombre)
}

func TestUpdateCiudadanoTelefonoMuyLargo(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCiudadanoService(db, testConfig())

	ciudadano := nuevoCiudadano(23456789, 912345678)
	require.NoError(t, svc.CreateCiudadano(ciudadano))

	_, err := svc.UpdateCiudadano(ciudadano.ID, map[string]interface{}{
		"telefono": int64(9123456789),
	})
	require.Error(t, err)
	assert.Equal(t, code.ExcedeMaximo("telefono", 9), err.Error())
}

func TestDeleteCiudadanoConCredencial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCiudadanoService(db, testConfig())

	ciudadano := nuevoCiudadano(23456789, 912345678)
	ciudadano.Credencial = &models.Credencial{Correo: "maria@safe-rescue.cl", Contrasenia: "Clave123"}
	require.NoError(t, svc.CreateCiudadano(ciudadano))
	credencialID := *ciudadano.CredencialID

	require.NoError(t, svc.DeleteCiudadano(ciudadano.ID))

	var cuantos int64
	db.Model(&models.Credencial{}).Where("id = ?", credencialID).Count(&cuantos)
	assert.Zero(t, cuantos)
}

func TestGetCiudadanoNoEncontrado(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCiudadanoService(db, testConfig())

	_, err := svc.GetCiudadanoByID(99)
	require.Error(t, err)
	assert.Equal(t, code.KindNotFound, code.KindOf(err))
	assert.Equal(t, code.MsgCiudadanoNoEncontrado, err.Error())
}
