package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

// setupTestRouter levanta el enrutador completo contra una base SQLite
// en memoria, sin Redis y con la autenticación apagada
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Rol{},
		&models.Credencial{},
		&models.Bombero{},
		&models.Ciudadano{},
		&models.ReporteOperativo{},
		&models.RecursoEducativo{},
		&models.BorradorMensaje{},
	))

	cfg := &config.Config{
		EnvType:      "LOCAL",
		ServerPort:   "8080",
		JWTSecretKey: "clave-de-prueba",
		AuthEnabled:  false,
	}

	return SetupRouter(db, cfg, nil), db
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListadoVacioResponde204(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, path := range []string{
		"/api/v1/bomberos",
		"/api-ciudadano/v1/ciudadanos",
		"/api/v1/credenciales",
		"/api-reportes-bomberos/v1/reportes-operativos",
		"/api-capacitaciones/v1/recursos-educativos",
		"/api-comunicacion/v1/borradores",
	} {
		w := doRequest(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNoContent, w.Code, "ruta: %s", path)
	}
}

func TestCrearBomberoResponde201(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/bomberos", gin.H{
		"run":       12345678,
		"dv":        "K",
		"nombre":    "Juan",
		"a_paterno": "Pérez",
		"telefono":  987654321,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// El segundo alta con el mismo RUN choca
	w = doRequest(r, http.MethodPost, "/api/v1/bomberos", gin.H{
		"run":       12345678,
		"dv":        "1",
		"nombre":    "Otro",
		"a_paterno": "Soto",
		"telefono":  911111111,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El RUN ya existe")
}

func TestObtenerBomberoInexistenteResponde404(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/bomberos/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMutacionesDeRolesResponden401(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/roles", gin.H{"nombre": "Nuevo"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No posee permisos para crear roles.")

	w = doRequest(r, http.MethodPut, "/api/v1/roles/1", gin.H{"nombre": "Otro"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No posee permisos para realizar cambios.")

	w = doRequest(r, http.MethodDelete, "/api/v1/roles/1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No posee permisos para realizar eliminar.")
}

func TestLoginEmiteToken(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/credenciales", gin.H{
		"correo":      "operador@safe-rescue.cl",
		"contrasenia": "Clave123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/credenciales/login", gin.H{
		"correo":      "operador@safe-rescue.cl",
		"contrasenia": "Clave123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	// Contraseña equivocada: 401
	w = doRequest(r, http.MethodPost, "/api/v1/credenciales/login", gin.H{
		"correo":      "operador@safe-rescue.cl",
		"contrasenia": "equivocada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCrearReporteValidaCampos(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api-reportes-bomberos/v1/reportes-operativos", gin.H{
		"id_incidente":      0,
		"tipo_operacion":    "Incendio",
		"estado_operacion":  "En curso",
		"bombero_emisor_id": 7,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El ID del incidente es obligatorio")
}

func TestBusquedaDeReportesPorEstado(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api-reportes-bomberos/v1/reportes-operativos", gin.H{
		"id_incidente":      101,
		"tipo_operacion":    "Incendio",
		"estado_operacion":  "En curso",
		"bombero_emisor_id": 7,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api-reportes-bomberos/v1/reportes-operativos/by-estado/En%20curso", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api-reportes-bomberos/v1/reportes-operativos/by-estado/Finalizada", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEliminarCredencialAnonimizaViaHTTP(t *testing.T) {
	r, db := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/credenciales", gin.H{
		"correo":      "baja@safe-rescue.cl",
		"contrasenia": "Clave123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/v1/credenciales/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cred models.Credencial
	require.NoError(t, db.First(&cred, 1).Error)
	assert.Empty(t, cred.Correo)
	assert.False(t, cred.Activo)
}
