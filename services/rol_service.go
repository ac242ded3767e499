package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

// InterfaceRolService define el servicio de roles. El catálogo de roles
// es de solo lectura: las mutaciones se rechazan en la capa HTTP.
type InterfaceRolService interface {
	GetAllRoles() ([]models.Rol, error)
	GetRolByID(id uint) (*models.Rol, error)
}

// RolService expone el catálogo de roles
type RolService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRolService crea un nuevo servicio de roles
func NewRolService(db *gorm.DB, cfg *config.Config) InterfaceRolService {
	return &RolService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllRoles obtiene todos los roles
func (s *RolService) GetAllRoles() ([]models.Rol, error) {
	var roles []models.Rol
	if err := s.DB.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRolByID obtiene un rol por su ID
func (s *RolService) GetRolByID(id uint) (*models.Rol, error) {
	var rol models.Rol
	if err := s.DB.First(&rol, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgRolNoEncontrado)
		}
		return nil, err
	}
	return &rol, nil
}
