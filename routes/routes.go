package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/controllers"
	_ "github.com/NikoGox/SAFE-Rescue-F3/docs"
	"github.com/NikoGox/SAFE-Rescue-F3/middleware"
	"github.com/NikoGox/SAFE-Rescue-F3/services/container"
)

// SetupRouter inicializa el enrutador con todos los grupos de rutas.
// Cada grupo conserva el prefijo del microservicio original para que
// los clientes existentes no tengan que cambiar.
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS abierto para el front de administración
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimiter())

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg)
	middleware.InitCache(redisClient)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configura todas las rutas de la API
func registerRoutes(r *gin.Engine, c *container.ServiceContainer) {
	// Verificación de salud
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"message": "pong"})
	})

	registerBomberoRoutes(r, c)
	registerCiudadanoRoutes(r, c)
	registerCredencialRoutes(r, c)
	registerRolRoutes(r, c)
	registerReporteRoutes(r, c)
	registerRecursoRoutes(r, c)
	registerBorradorRoutes(r, c)
}

func registerBomberoRoutes(r *gin.Engine, c *container.ServiceContainer) {
	bomberos := r.Group("/api/v1/bomberos")
	bomberos.Use(middleware.Autenticar())

	bomberos.GET("", controllers.HandleBomberoFunc(c, "getBomberos"))
	bomberos.GET("/:id", controllers.HandleBomberoFunc(c, "getBombero"))
	bomberos.POST("", controllers.HandleBomberoFunc(c, "createBombero"))
	bomberos.PUT("/:id", controllers.HandleBomberoFunc(c, "updateBombero"))
	bomberos.DELETE("/:id", controllers.HandleBomberoFunc(c, "deleteBombero"))
	bomberos.POST("/:id/asignar-credencial/:credencialId", controllers.HandleBomberoFunc(c, "asignarCredencial"))
}

func registerCiudadanoRoutes(r *gin.Engine, c *container.ServiceContainer) {
	ciudadanos := r.Group("/api-ciudadano/v1/ciudadanos")
	ciudadanos.Use(middleware.Autenticar())

	ciudadanos.GET("", controllers.HandleCiudadanoFunc(c, "getCiudadanos"))
	ciudadanos.GET("/:id", controllers.HandleCiudadanoFunc(c, "getCiudadano"))
	ciudadanos.POST("", controllers.HandleCiudadanoFunc(c, "createCiudadano"))
	ciudadanos.PUT("/:id", controllers.HandleCiudadanoFunc(c, "updateCiudadano"))
	ciudadanos.DELETE("/:id", controllers.HandleCiudadanoFunc(c, "deleteCiudadano"))
	ciudadanos.POST("/:id/asignar-credencial/:credencialId", controllers.HandleCiudadanoFunc(c, "asignarCredencial"))
}

func registerCredencialRoutes(r *gin.Engine, c *container.ServiceContainer) {
	credenciales := r.Group("/api/v1/credenciales")

	// El inicio de sesión queda fuera de la autenticación
	credenciales.POST("/login", controllers.HandleCredencialFunc(c, "login"))

	protegidas := credenciales.Group("")
	protegidas.Use(middleware.Autenticar())
	protegidas.GET("", controllers.HandleCredencialFunc(c, "getCredenciales"))
	protegidas.GET("/:id", controllers.HandleCredencialFunc(c, "getCredencial"))
	protegidas.POST("", controllers.HandleCredencialFunc(c, "createCredencial"))
	protegidas.PUT("/:id", controllers.HandleCredencialFunc(c, "updateCredencial"))
	protegidas.DELETE("/:id", controllers.HandleCredencialFunc(c, "deleteCredencial"))
	protegidas.POST("/:id/asignar-rol/:rolId", controllers.HandleCredencialFunc(c, "asignarRol"))
}

func registerRolRoutes(r *gin.Engine, c *container.ServiceContainer) {
	roles := r.Group("/api/v1/roles")
	roles.Use(middleware.Autenticar())

	// El catálogo es chico y estable: las lecturas van cacheadas
	roles.GET("", middleware.Cache(), controllers.HandleRolFunc(c, "getRoles"))
	roles.GET("/:id", middleware.Cache(), controllers.HandleRolFunc(c, "getRol"))
	roles.POST("", controllers.HandleRolFunc(c, "createRol"))
	roles.PUT("/:id", controllers.HandleRolFunc(c, "updateRol"))
	roles.DELETE("/:id", controllers.HandleRolFunc(c, "deleteRol"))
}

func registerReporteRoutes(r *gin.Engine, c *container.ServiceContainer) {
	reportes := r.Group("/api-reportes-bomberos/v1/reportes-operativos")
	reportes.Use(middleware.Autenticar())

	reportes.GET("", controllers.HandleReporteFunc(c, "getReportes"))
	reportes.GET("/:id", controllers.HandleReporteFunc(c, "getReporte"))
	reportes.POST("", controllers.HandleReporteFunc(c, "createReporte"))
	reportes.PUT("/:id", controllers.HandleReporteFunc(c, "updateReporte"))
	reportes.DELETE("/:id", controllers.HandleReporteFunc(c, "deleteReporte"))

	reportes.GET("/by-incidente/:id", controllers.HandleReporteFunc(c, "getPorIncidente"))
	reportes.GET("/by-bombero-emisor/:id", controllers.HandleReporteFunc(c, "getPorBomberoEmisor"))
	reportes.GET("/by-estado/:estado", controllers.HandleReporteFunc(c, "getPorEstado"))
	reportes.GET("/by-tipo-operacion/:tipo", controllers.HandleReporteFunc(c, "getPorTipoOperacion"))
	reportes.GET("/con-heridos-minimos/:minimo", controllers.HandleReporteFunc(c, "getConHeridosMinimos"))
	reportes.GET("/duracion-entre/:min/:max", controllers.HandleReporteFunc(c, "getPorRangoDuracion"))
}

func registerRecursoRoutes(r *gin.Engine, c *container.ServiceContainer) {
	recursos := r.Group("/api-capacitaciones/v1/recursos-educativos")
	recursos.Use(middleware.Autenticar())

	recursos.GET("", controllers.HandleRecursoFunc(c, "getRecursos"))
	recursos.GET("/:id", controllers.HandleRecursoFunc(c, "getRecurso"))
	recursos.POST("", controllers.HandleRecursoFunc(c, "createRecurso"))
	recursos.PUT("/:id", controllers.HandleRecursoFunc(c, "updateRecurso"))
	recursos.DELETE("/:id", controllers.HandleRecursoFunc(c, "deleteRecurso"))

	recursos.GET("/tipo/:tipo", controllers.HandleRecursoFunc(c, "getPorTipo"))
	recursos.GET("/autor/:autor", controllers.HandleRecursoFunc(c, "getPorAutor"))
	recursos.GET("/nombre/:nombre", controllers.HandleRecursoFunc(c, "getPorNombre"))
	recursos.GET("/publicado-despues/:fecha", controllers.HandleRecursoFunc(c, "getPublicadosDespues"))
	recursos.GET("/creado-antes/:fecha", controllers.HandleRecursoFunc(c, "getCreadosAntes"))
}

func registerBorradorRoutes(r *gin.Engine, c *container.ServiceContainer) {
	borradores := r.Group("/api-comunicacion/v1/borradores")
	borradores.Use(middleware.Autenticar())

	borradores.GET("", controllers.HandleBorradorFunc(c, "getBorradores"))
	borradores.GET("/:id", controllers.HandleBorradorFunc(c, "getBorrador"))
	borradores.POST("", controllers.HandleBorradorFunc(c, "createBorrador"))
	borradores.PUT("/:id", controllers.HandleBorradorFunc(c, "updateBorrador"))
	borradores.DELETE("/:id", controllers.HandleBorradorFunc(c, "deleteBorrador"))
	borradores.GET("/emisor/:id", controllers.HandleBorradorFunc(c, "getPorEmisor"))
}
