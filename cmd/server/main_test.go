package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
	"github.com/NikoGox/SAFE-Rescue-F3/utils"
)

func TestMain(m *testing.M) {
	if err := config.SetupLogger(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setupBootDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, autoMigrate(db))
	return db
}

func TestSeedRolesEsIdempotente(t *testing.T) {
	db := setupBootDB(t)

	seedRoles(db)
	seedRoles(db)

	var count int64
	require.NoError(t, db.Model(&models.Rol{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	var nombres []string
	require.NoError(t, db.Model(&models.Rol{}).Order("id").Pluck("nombre", &nombres).Error)
	assert.Equal(t, []string{"Administrador", "Bombero", "Ciudadano"}, nombres)
}

func TestEnsureAdminExistsCreaUnaSolaCredencial(t *testing.T) {
	db := setupBootDB(t)
	seedRoles(db)

	cfg := &config.Config{
		DefaultAdminCorreo:     "admin@saferescue.cl",
		DefaultAdminContrasena: "admin123",
	}

	ensureAdminExists(db, cfg)
	ensureAdminExists(db, cfg)

	var count int64
	require.NoError(t, db.Model(&models.Credencial{}).
		Where("correo = ?", cfg.DefaultAdminCorreo).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var admin models.Credencial
	require.NoError(t, db.Preload("Rol").
		Where("correo = ?", cfg.DefaultAdminCorreo).First(&admin).Error)
	assert.True(t, admin.Activo)
	require.NotNil(t, admin.Rol)
	assert.Equal(t, "Administrador", admin.Rol.Nombre)

	// La contraseña queda con hash bcrypt, nunca en claro
	assert.NotEqual(t, cfg.DefaultAdminContrasena, admin.Contrasenia)
	assert.True(t, utils.CheckPasswordHash(cfg.DefaultAdminContrasena, admin.Contrasenia))
}

func TestDropAndRecreateTables(t *testing.T) {
	db := setupBootDB(t)
	seedRoles(db)

	require.NoError(t, dropAndRecreateTables(db))

	var count int64
	require.NoError(t, db.Model(&models.Rol{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
