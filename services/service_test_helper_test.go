package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

// setupTestDB abre una base SQLite en memoria con el mismo esquema que
// producción. TranslateError se mantiene para que las colisiones de
// unicidad lleguen como gorm.ErrDuplicatedKey, igual que con MySQL.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("no se pudo abrir la base en memoria: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Rol{},
		&models.Credencial{},
		&models.Bombero{},
		&models.Ciudadano{},
		&models.ReporteOperativo{},
		&models.RecursoEducativo{},
		&models.BorradorMensaje{},
	); err != nil {
		t.Fatalf("fallo la migración del esquema de prueba: %v", err)
	}

	return db
}

// testConfig devuelve una configuración mínima para los servicios
func testConfig() *config.Config {
	return &config.Config{
		EnvType:      "LOCAL",
		ServerPort:   "8080",
		JWTSecretKey: "clave-de-prueba",
	}
}

// seedRol inserta un rol y devuelve su ID
func seedRol(t *testing.T, db *gorm.DB, nombre string) uint {
	t.Helper()

	rol := models.Rol{Nombre: nombre}
	if err := db.Create(&rol).Error; err != nil {
		t.Fatalf("no se pudo sembrar el rol %q: %v", nombre, err)
	}
	return rol.ID
}
