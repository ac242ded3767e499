package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
	"github.com/NikoGox/SAFE-Rescue-F3/utils"
)

func TestCreateCredencialHasheaLaContrasenia(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	cred := &models.Credencial{Correo: "ana@safe-rescue.cl", Contrasenia: "Clave123", Activo: true}
	require.NoError(t, svc.CreateCredencial(cred))

	var guardada models.Credencial
	require.NoError(t, db.First(&guardada, cred.ID).Error)
	assert.NotEqual(t, "Clave123", guardada.Contrasenia)
	assert.True(t, utils.CheckPasswordHash("Clave123", guardada.Contrasenia))
}

func TestCreateCredencialValidaEnOrden(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	err := svc.CreateCredencial(&models.Credencial{Correo: "", Contrasenia: "x"})
	require.Error(t, err)
	assert.Equal(t, code.KindValidation, code.KindOf(err))

	err = svc.CreateCredencial(&models.Credencial{Correo: "a@b.cl", Contrasenia: ""})
	require.Error(t, err)
	assert.Equal(t, code.KindValidation, code.KindOf(err))

	err = svc.CreateCredencial(&models.Credencial{Correo: "a@b.cl", Contrasenia: "estaclaveesdemasiadolarga"})
	require.Error(t, err)
	assert.Equal(t, code.ExcedeMaximo("contrasenia", 16), err.Error())
}

func TestCreateCredencialCorreoDuplicado(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	require.NoError(t, svc.CreateCredencial(&models.Credencial{Correo: "dup@safe-rescue.cl", Contrasenia: "Clave123"}))

	err := svc.CreateCredencial(&models.Credencial{Correo: "dup@safe-rescue.cl", Contrasenia: "Otra1234"})
	require.Error(t, err)
	assert.Equal(t, code.KindConflict, code.KindOf(err))
	assert.Equal(t, code.MsgCorreoEnUso, err.Error())
}

func TestCreateCredencialRolInexistente(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	rolID := uint(99)
	err := svc.CreateCredencial(&models.Credencial{Correo: "r@b.cl", Contrasenia: "Clave123", RolID: &rolID})
	require.Error(t, err)
	assert.Equal(t, code.KindValidation, code.KindOf(err))
	assert.Equal(t, code.MsgRolNoEncontrado, err.Error())
}

func TestUpdateCredencialParcial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	cred := &models.Credencial{Correo: "antes@safe-rescue.cl", Contrasenia: "Clave123", Activo: true}
	require.NoError(t, svc.CreateCredencial(cred))

	// Solo se cambia la contraseña; el correo queda intacto
	actualizada, err := svc.UpdateCredencial(cred.ID, map[string]interface{}{
		"contrasenia": "Nueva456",
	})
	require.NoError(t, err)
	assert.Equal(t, "antes@safe-rescue.cl", actualizada.Correo)
	assert.True(t, utils.CheckPasswordHash("Nueva456", actualizada.Contrasenia))
}

func TestUpdateCredencialCorreoEnUsoPorOtra(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	require.NoError(t, svc.CreateCredencial(&models.Credencial{Correo: "una@safe-rescue.cl", Contrasenia: "Clave123"}))
	otra := &models.Credencial{Correo: "otra@safe-rescue.cl", Contrasenia: "Clave123"}
	require.NoError(t, svc.CreateCredencial(otra))

	_, err := svc.UpdateCredencial(otra.ID, map[string]interface{}{
		"correo": "una@safe-rescue.cl",
	})
	require.Error(t, err)
	assert.Equal(t, code.KindConflict, code.KindOf(err))
	assert.Equal(t, code.MsgCorreoExiste, err.Error())
}

func TestDeleteCredencialAnonimiza(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	rolID := seedRol(t, db, "Bombero")
	cred := &models.Credencial{Correo: "baja@safe-rescue.cl", Contrasenia: "Clave123", RolID: &rolID, Activo: true}
	require.NoError(t, svc.CreateCredencial(cred))

	require.NoError(t, svc.DeleteCredencial(cred.ID))

	// La fila se conserva pero sin datos personales
	var anonimizada models.Credencial
	require.NoError(t, db.First(&anonimizada, cred.ID).Error)
	assert.Empty(t, anonimizada.Correo)
	assert.Empty(t, anonimizada.Contrasenia)
	assert.False(t, anonimizada.Activo)
	assert.Nil(t, anonimizada.RolID)
	assert.Zero(t, anonimizada.IntentosFallidos)
}

func TestDeleteCredencialPermiteReusarCorreo(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	cred := &models.Credencial{Correo: "libre@safe-rescue.cl", Contrasenia: "Clave123"}
	require.NoError(t, svc.CreateCredencial(cred))
	require.NoError(t, svc.DeleteCredencial(cred.ID))

	// El correo queda disponible tras la anonimización
	require.NoError(t, svc.CreateCredencial(&models.Credencial{Correo: "libre@safe-rescue.cl", Contrasenia: "Clave123"}))
}

func TestVerificarCredenciales(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	cred := &models.Credencial{Correo: "login@safe-rescue.cl", Contrasenia: "Clave123", Activo: true}
	require.NoError(t, svc.CreateCredencial(cred))

	ok, err := svc.VerificarCredenciales("login@safe-rescue.cl", "Clave123")
	require.NoError(t, err)
	assert.True(t, ok)

	// Un fallo incrementa el contador; no hay bloqueo
	ok, err = svc.VerificarCredenciales("login@safe-rescue.cl", "equivocada")
	require.NoError(t, err)
	assert.False(t, ok)

	var tras models.Credencial
	require.NoError(t, db.First(&tras, cred.ID).Error)
	assert.Equal(t, 1, tras.IntentosFallidos)

	// Un acierto posterior no toca el contador
	ok, err = svc.VerificarCredenciales("login@safe-rescue.cl", "Clave123")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, db.First(&tras, cred.ID).Error)
	assert.Equal(t, 1, tras.IntentosFallidos)
}

func TestVerificarCredencialesCorreoDesconocido(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	ok, err := svc.VerificarCredenciales("nadie@safe-rescue.cl", "Clave123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAsignarRol(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	rolID := seedRol(t, db, "Administrador")
	cred := &models.Credencial{Correo: "rol@safe-rescue.cl", Contrasenia: "Clave123"}
	require.NoError(t, svc.CreateCredencial(cred))

	require.NoError(t, svc.AsignarRol(cred.ID, rolID))

	asignada, err := svc.GetCredencialByID(cred.ID)
	require.NoError(t, err)
	require.NotNil(t, asignada.RolID)
	assert.Equal(t, rolID, *asignada.RolID)
	require.NotNil(t, asignada.Rol)
	assert.Equal(t, "Administrador", asignada.Rol.Nombre)
}

func TestAsignarRolInexistente(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCredencialService(db, testConfig())

	cred := &models.Credencial{Correo: "sinrol@safe-rescue.cl", Contrasenia: "Clave123"}
	require.NoError(t, svc.CreateCredencial(cred))

	err := svc.AsignarRol(cred.ID, 99)
	require.Error(t, err)
	assert.Equal(t, code.KindNotFound, code.KindOf(err))
	assert.Equal(t, code.MsgRolNoEncontrado, err.Error())
}
