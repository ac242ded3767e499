package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

// InterfaceCiudadanoService define el servicio de ciudadanos
type InterfaceCiudadanoService interface {
	GetAllCiudadanos() ([]models.Ciudadano, error)
	GetCiudadanoByID(id uint) (*models.Ciudadano, error)
	CreateCiudadano(ciudadano *models.Ciudadano) error
	UpdateCiudadano(id uint, updates map[string]interface{}) (*models.Ciudadano, error)
	DeleteCiudadano(id uint) error
	AsignarCredencial(ciudadanoID, credencialID uint) error
}

// CiudadanoService administra el registro de ciudadanos
type CiudadanoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCiudadanoService crea un nuevo servicio de ciudadanos
func NewCiudadanoService(db *gorm.DB, cfg *config.Config) InterfaceCiudadanoService {
	return &CiudadanoService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllCiudadanos obtiene todos los ciudadanos con su credencial y rol
func (s *CiudadanoService) GetAllCiudadanos() ([]models.Ciudadano, error) {
	var ciudadanos []models.Ciudadano
	if err := s.DB.Preload("Credencial").Preload("Credencial.Rol").Find(&ciudadanos).Error; err != nil {
		return nil, err
	}
	return ciudadanos, nil
}

// GetCiudadanoByID obtiene un ciudadano por su ID
func (s *CiudadanoService) GetCiudadanoByID(id uint) (*models.Ciudadano, error) {
	var ciudadano models.Ciudadano
	if err := s.DB.Preload("Credencial").Preload("Credencial.Rol").First(&ciudadano, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgCiudadanoNoEncontrado)
		}
		return nil, err
	}
	return &ciudadano, nil
}

// validarCiudadano corre las mismas reglas que el registro de bomberos,
// contra la tabla de ciudadanos
func (s *CiudadanoService) validarCiudadano(ciudadano *models.Ciudadano) error {
	var count int64
	if err := s.DB.Model(&models.Ciudadano{}).Where("run = ?", ciudadano.Run).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.Conflict(code.MsgRunExiste)
	}

	if err := s.DB.Model(&models.Ciudadano{}).Where("telefono = ?", ciudadano.Telefono).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.Conflict(code.MsgTelefonoExiste)
	}

	if cantidadDigitos(ciudadano.Run) > 8 {
		return code.Validation("run", code.ExcedeMaximo("RUN", 8))
	}
	if len(ciudadano.Dv) > 1 {
		return code.Validation("dv", code.ExcedeMaximo("DV", 1))
	}
	if len(ciudadano.Nombre) > 50 {
		return code.Validation("nombre", code.ExcedeMaximo("nombre", 50))
	}
	if len(ciudadano.APaterno) > 50 {
		return code.Validation("a_paterno", code.ExcedeMaximo("a_paterno", 50))
	}
	if len(ciudadano.AMaterno) > 50 {
		return code.Validation("a_materno", code.ExcedeMaximo("a_materno", 50))
	}
	if cantidadDigitos(ciudadano.Telefono) > 9 {
		return code.Validation("telefono", code.ExcedeMaximo("telefono", 9))
	}
	return nil
}

// CreateCiudadano valida y persiste un ciudadano nuevo. La credencial
// embebida, si viene, se persiste a través del servicio de credenciales
// antes de enlazarla.
func (s *CiudadanoService) CreateCiudadano(ciudadano *models.Ciudadano) error {
	if err := s.validarCiudadano(ciudadano); err != nil {
		return err
	}

	if ciudadano.Credencial != nil {
		credencialService := NewCredencialService(s.DB, s.Config)
		if err := credencialService.CreateCredencial(ciudadano.Credencial); err != nil {
			return err
		}
		ciudadano.CredencialID = &ciudadano.Credencial.ID
	}

	if ciudadano.FechaRegistro.IsZero() {
		ciudadano.FechaRegistro = time.Now()
	}

	if err := s.DB.Create(ciudadano).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return code.Conflict(code.MsgRunExiste)
		}
		return err
	}
	return nil
}

// UpdateCiudadano aplica una actualización parcial en el orden del
// sistema original
func (s *CiudadanoService) UpdateCiudadano(id uint, updates map[string]interface{}) (*models.Ciudadano, error) {
	ciudadano, err := s.GetCiudadanoByID(id)
	if err != nil {
		return nil, err
	}

	cambios := make(map[string]interface{})

	if nombre, ok := updates["nombre"].(string); ok {
		if len(nombre) > 50 {
			return nil, code.Validation("nombre", code.ExcedeMaximo("nombre", 50))
		}
		cambios["nombre"] = nombre
	}

	if telefono, ok := updates["telefono"].(int64); ok && telefono != ciudadano.Telefono {
		var count int64
		if err := s.DB.Model(&models.Ciudadano{}).
			Where("telefono = ? AND id <> ?", telefono, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.Conflict(code.MsgTelefonoExiste)
		}
		if cantidadDigitos(telefono) > 9 {
			return nil, code.Validation("telefono", code.ExcedeMaximo("telefono", 9))
		}
		cambios["telefono"] = telefono
	}

	if run, ok := updates["run"].(int64); ok && run != ciudadano.Run {
		var count int64
		if err := s.DB.Model(&models.Ciudadano{}).
			Where("run = ? AND id <> ?", run, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.Conflict(code.MsgRunExiste)
		}
		if cantidadDigitos(run) > 8 {
			return nil, code.Validation("run", code.ExcedeMaximo("RUN", 8))
		}
		cambios["run"] = run
	}

	if dv, ok := updates["dv"].(string); ok {
		if len(dv) > 1 {
			return nil, code.Validation("dv", code.ExcedeMaximo("DV", 1))
		}
		cambios["dv"] = dv
	}

	if aPaterno, ok := updates["a_paterno"].(string); ok {
		if len(aPaterno) > 50 {
			return nil, code.Validation("a_paterno", code.ExcedeMaximo("a_paterno", 50))
		}
		cambios["a_paterno"] = aPaterno
	}

	if aMaterno, ok := updates["a_materno"].(string); ok {
		if len(aMaterno) > 50 {
			return nil, code.Validation("a_materno", code.ExcedeMaximo("a_materno", 50))
		}
		cambios["a_materno"] = aMaterno
	}

	if fecha, ok := updates["fecha_registro"].(time.Time); ok {
		cambios["fecha_registro"] = fecha
	}

	if len(cambios) > 0 {
		if err := s.DB.Model(ciudadano).Updates(cambios).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, code.Conflict(code.MsgRunExiste)
			}
			return nil, err
		}
	}

	return s.GetCiudadanoByID(id)
}

// DeleteCiudadano elimina el ciudadano junto con la credencial de su
// propiedad
func (s *CiudadanoService) DeleteCiudadano(id uint) error {
	ciudadano, err := s.GetCiudadanoByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&models.Ciudadano{}, id).Error; err != nil {
		return err
	}

	if ciudadano.CredencialID != nil {
		if err := s.DB.Delete(&models.Credencial{}, *ciudadano.CredencialID).Error; err != nil {
			return err
		}
	}
	return nil
}

// AsignarCredencial resuelve ambos lados de la relación y enlaza la
// credencial al ciudadano
func (s *CiudadanoService) AsignarCredencial(ciudadanoID, credencialID uint) error {
	var ciudadano models.Ciudadano
	if err := s.DB.First(&ciudadano, ciudadanoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NotFound(code.MsgCiudadanoNoEncontrado)
		}
		return err
	}

	var credencial models.Credencial
	if err := s.DB.First(&credencial, credencialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NotFound(code.MsgCredencialNoEncontrada)
		}
		return err
	}

	return s.DB.Model(&ciudadano).Update("credencial_id", credencialID).Error
}
