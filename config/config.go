package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config almacena toda la configuración de la aplicación
type Config struct {
	// Tipo de entorno
	EnvType string

	// Base de datos
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // modo de migración: "auto"(por defecto) o "drop"(borrar y recrear)

	// Servidor
	ServerPort string

	// Redis (opcional, para caché de listados)
	RedisHost string
	RedisPort string
	RedisDB   int

	// Autenticación JWT
	JWTSecretKey string
	AuthEnabled  bool // si es true, las rutas CRUD exigen token Bearer

	// Credencial de administrador por defecto
	DefaultAdminCorreo     string
	DefaultAdminContrasena string
}

// LoadConfig carga la configuración desde variables de entorno según ENV_TYPE
func LoadConfig() *Config {
	// Tipo de entorno (LOCAL por defecto)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Advertencia: ENV_TYPE desconocido '%s', se usa entorno LOCAL\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Cargando configuración para el entorno: %s\n", envType)

	return &Config{
		EnvType: envType,

		// Base de datos - usa variables con prefijo de entorno si existen
		DBHost:          getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:          getEnv(prefix+"DB_USER", getEnv("DB_USER", "root")),
		DBPassword:      getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "")),
		DBName:          getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "safe_rescue_db")),
		DBPort:          getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "3306")),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", getEnv("DB_MIGRATION_MODE", "auto")),

		// Servidor
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),

		// Redis
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// JWT
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "safe-rescue-secret-cambiar-en-produccion"),
		AuthEnabled:  getEnvAsBool("AUTH_ENABLED", false),

		// Administrador por defecto
		DefaultAdminCorreo:     getEnv("DEFAULT_ADMIN_CORREO", "admin@saferescue.cl"),
		DefaultAdminContrasena: getEnv("DEFAULT_ADMIN_CONTRASENA", "admin123"),
	}
}

// GetConfig devuelve la configuración de la aplicación como singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN devuelve la cadena de conexión a la base de datos
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

// GetRedisAddr devuelve la dirección de Redis
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// getEnv obtiene una variable de entorno con valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt obtiene una variable de entorno como entero
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool obtiene una variable de entorno como booleano
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
