package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/response"
	"github.com/NikoGox/SAFE-Rescue-F3/services"
)

var (
	jwtService  *services.JWTService
	authEnabled bool
)

// InitAuthMiddleware inicializa el middleware de autenticación
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
	authEnabled = cfg.AuthEnabled
}

// extractToken quita el prefijo "Bearer " del encabezado de autorización
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Autenticar valida el token de la solicitud y deja las declaraciones en
// el contexto. Con AUTH_ENABLED apagado deja pasar todo; las redes de
// las compañías son cerradas y la autenticación es opcional.
func Autenticar() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authEnabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Se requiere el encabezado Authorization")
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		token, err := jwtService.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			response.Unauthorized(c, "Token inválido o expirado")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c, "Declaraciones del token inválidas")
			c.Abort()
			return
		}

		c.Set("credencialID", claims["credencial_id"])
		c.Set("correo", claims["correo"])
		c.Set("rol", claims["rol"])
		c.Set("claims", claims)
		c.Next()
	}
}
