package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/services"
)

// ServiceContainer concentra la construcción explícita de los servicios:
// todas las dependencias se arman aquí, sin escaneo ni inyección mágica
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Servicios base
	jwtService *services.JWTService

	// Servicios de negocio
	bomberoService    services.InterfaceBomberoService
	ciudadanoService  services.InterfaceCiudadanoService
	credencialService services.InterfaceCredencialService
	rolService        services.InterfaceRolService
	reporteService    services.InterfaceReporteService
	recursoService    services.InterfaceRecursoService
	borradorService   services.InterfaceBorradorService

	mu sync.RWMutex
}

// NewServiceContainer crea el contenedor de servicios
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("la conexión a la base de datos es nula")
	}

	if cfg == nil {
		panic("la configuración es nula")
	}

	// Probar la conexión a Redis; el caché es opcional
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Fallo la prueba de conexión a Redis: %v, se continúa sin caché", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices inicializa todos los servicios
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	c.bomberoService = services.NewBomberoService(c.db, c.config)
	c.ciudadanoService = services.NewCiudadanoService(c.db, c.config)
	c.credencialService = services.NewCredencialService(c.db, c.config)
	c.rolService = services.NewRolService(c.db, c.config)
	c.reporteService = services.NewReporteService(c.db, c.config)
	c.recursoService = services.NewRecursoService(c.db, c.config)
	c.borradorService = services.NewBorradorService(c.db, c.config)
}

// GetService obtiene un servicio por su nombre
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redis
	case "jwt":
		return c.jwtService
	case "bombero":
		return c.bomberoService
	case "ciudadano":
		return c.ciudadanoService
	case "credencial":
		return c.credencialService
	case "rol":
		return c.rolService
	case "reporte":
		return c.reporteService
	case "recurso":
		return c.recursoService
	case "borrador":
		return c.borradorService
	default:
		return nil
	}
}

// GetDB obtiene la conexión a la base de datos
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
