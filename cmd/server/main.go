// @title           SAFE-Rescue API
// @version         1.0
// @description     API de administración del sistema SAFE-Rescue: bomberos, ciudadanos, credenciales, roles, reportes operativos, recursos educativos y borradores de mensaje.

// @contact.name   Equipo SAFE-Rescue

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Token con el prefijo `Bearer: `
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
	"github.com/NikoGox/SAFE-Rescue-F3/routes"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := config.SetupLogger(); err != nil {
		fmt.Printf("Fallo al inicializar los registros: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("No se pudo cargar el archivo .env: %v", err)
		// Se continúa: las variables pueden venir del entorno
	} else {
		config.Info("Archivo .env cargado con éxito")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		config.Error("No se pudo conectar a la base de datos: %v", err)
		os.Exit(1)
	}

	if cfg.DBMigrationMode == "drop" {
		config.Warning("Modo drop: se eliminan y recrean todas las tablas")
		if err := dropAndRecreateTables(db); err != nil {
			config.Error("Fallo al recrear las tablas: %v", err)
			os.Exit(1)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			config.Error("Fallo la migración automática: %v", err)
			os.Exit(1)
		}
	}

	seedRoles(db)
	ensureAdminExists(db, cfg)

	redisClient := initRedis(cfg)

	r := routes.SetupRouter(db, cfg, redisClient)

	port := cfg.ServerPort
	config.Info("Servidor iniciado en: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		config.Error("Fallo al iniciar el servidor: %v", err)
		os.Exit(1)
	}
}

// initDB abre la conexión a MySQL. TranslateError permite detectar las
// colisiones de unicidad como gorm.ErrDuplicatedKey en los servicios.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fallo al conectar a la base de datos: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// initRedis crea el cliente de Redis si hay host configurado
func initRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		config.Info("Redis no configurado, el caché funciona solo en memoria")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
}

// autoMigrate agrega tablas y columnas nuevas sin tocar las existentes
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Rol{},
		&models.Credencial{},
		&models.Bombero{},
		&models.Ciudadano{},
		&models.ReporteOperativo{},
		&models.RecursoEducativo{},
		&models.BorradorMensaje{},
	)
}

// dropAndRecreateTables elimina todas las tablas y las vuelve a crear
func dropAndRecreateTables(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&models.Bombero{},
		&models.Ciudadano{},
		&models.Credencial{},
		&models.Rol{},
		&models.ReporteOperativo{},
		&models.RecursoEducativo{},
		&models.BorradorMensaje{},
	); err != nil {
		return err
	}
	return autoMigrate(db)
}

// seedRoles siembra el catálogo fijo de roles si la tabla está vacía
func seedRoles(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Rol{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	roles := []models.Rol{
		{Nombre: "Administrador"},
		{Nombre: "Bombero"},
		{Nombre: "Ciudadano"},
	}
	if err := db.Create(&roles).Error; err != nil {
		config.Warning("No se pudo sembrar el catálogo de roles: %v", err)
		return
	}
	config.Info("Catálogo de roles sembrado")
}

// ensureAdminExists garantiza que exista la credencial de administrador
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.Credencial{}).
		Where("correo = ?", cfg.DefaultAdminCorreo).Count(&count).Error; err != nil || count > 0 {
		return
	}

	var rolAdmin models.Rol
	var rolID *uint
	if err := db.Where("nombre = ?", "Administrador").First(&rolAdmin).Error; err == nil {
		rolID = &rolAdmin.ID
	}

	admin := models.Credencial{
		Correo:      cfg.DefaultAdminCorreo,
		Contrasenia: cfg.DefaultAdminContrasena,
		Activo:      true,
		RolID:       rolID,
	}
	if err := db.Create(&admin).Error; err != nil {
		config.Warning("No se pudo crear la credencial de administrador: %v", err)
		return
	}
	config.Info("Credencial de administrador creada: %s", cfg.DefaultAdminCorreo)
}
