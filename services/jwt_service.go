package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
)

// JWTService emite y valida los tokens de sesión
type JWTService struct {
	secretKey string
	issuer    string
}

// JWTClaims son las declaraciones que viajan dentro del token
type JWTClaims struct {
	CredencialID uint   `json:"credencial_id"`
	Correo       string `json:"correo"`
	Rol          string `json:"rol,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService crea un nuevo servicio de tokens
func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "safe-rescue-f3",
	}
}

// GenerateToken genera un token firmado con validez de 24 horas
func (s *JWTService) GenerateToken(credencialID uint, correo, rol string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		CredencialID: credencialID,
		Correo:       correo,
		Rol:          rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken valida la firma y la vigencia de un token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extrae las declaraciones de un token válido
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		jwtClaims := &JWTClaims{}

		if issuer, ok := claims["iss"].(string); ok {
			jwtClaims.Issuer = issuer
		}
		if credencialID, ok := claims["credencial_id"].(float64); ok {
			jwtClaims.CredencialID = uint(credencialID)
		}
		if correo, ok := claims["correo"].(string); ok {
			jwtClaims.Correo = correo
		}
		if rol, ok := claims["rol"].(string); ok {
			jwtClaims.Rol = rol
		}

		return jwtClaims, nil
	}

	return nil, errors.New("declaraciones del token inválidas")
}
