package services

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

// InterfaceBomberoService define el servicio de bomberos
type InterfaceBomberoService interface {
	GetAllBomberos() ([]models.Bombero, error)
	GetBomberoByID(id uint) (*models.Bombero, error)
	CreateBombero(bombero *models.Bombero) error
	UpdateBombero(id uint, updates map[string]interface{}) (*models.Bombero, error)
	DeleteBombero(id uint) error
	AsignarCredencial(bomberoID, credencialID uint) error
}

// BomberoService administra el registro de bomberos
type BomberoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBomberoService crea un nuevo servicio de bomberos
func NewBomberoService(db *gorm.DB, cfg *config.Config) InterfaceBomberoService {
	return &BomberoService{
		DB:     db,
		Config: cfg,
	}
}

// cantidadDigitos cuenta los dígitos decimales de un número
func cantidadDigitos(n int64) int {
	if n < 0 {
		n = -n
	}
	return len(strconv.FormatInt(n, 10))
}

// GetAllBomberos obtiene todos los bomberos con su credencial y rol
func (s *BomberoService) GetAllBomberos() ([]models.Bombero, error) {
	var bomberos []models.Bombero
	if err := s.DB.Preload("Credencial").Preload("Credencial.Rol").Find(&bomberos).Error; err != nil {
		return nil, err
	}
	return bomberos, nil
}

// GetBomberoByID obtiene un bombero por su ID
func (s *BomberoService) GetBomberoByID(id uint) (*models.Bombero, error) {
	var bombero models.Bombero
	if err := s.DB.Preload("Credencial").Preload("Credencial.Rol").First(&bombero, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgBomberoNoEncontrado)
		}
		return nil, err
	}
	return &bombero, nil
}

// validarBombero corre las reglas de negocio en el orden del sistema
// original; corta en el primer error para un mensaje determinista
func (s *BomberoService) validarBombero(bombero *models.Bombero) error {
	var count int64
	if err := s.DB.Model(&models.Bombero{}).Where("run = ?", bombero.Run).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.Conflict(code.MsgRunExiste)
	}

	if err := s.DB.Model(&models.Bombero{}).Where("telefono = ?", bombero.Telefono).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.Conflict(code.MsgTelefonoExiste)
	}

	if cantidadDigitos(bombero.Run) > 8 {
		return code.Validation("run", code.ExcedeMaximo("RUN", 8))
	}
	if len(bombero.Dv) > 1 {
		return code.Validation("dv", code.ExcedeMaximo("DV", 1))
	}
	if len(bombero.Nombre) > 50 {
		return code.Validation("nombre", code.ExcedeMaximo("nombre", 50))
	}
	if len(bombero.APaterno) > 50 {
		return code.Validation("a_paterno", code.ExcedeMaximo("a_paterno", 50))
	}
	if len(bombero.AMaterno) > 50 {
		return code.Validation("a_materno", code.ExcedeMaximo("a_materno", 50))
	}
	if cantidadDigitos(bombero.Telefono) > 9 {
		return code.Validation("telefono", code.ExcedeMaximo("telefono", 9))
	}
	return nil
}

// CreateBombero valida y persiste un bombero nuevo. Si trae una
// credencial embebida, esta se persiste primero y se enlaza.
// El índice único de la base es la autoridad final ante carreras
// entre la verificación y el insert.
func (s *BomberoService) CreateBombero(bombero *models.Bombero) error {
	if err := s.validarBombero(bombero); err != nil {
		return err
	}

	if bombero.Credencial != nil {
		credencialService := NewCredencialService(s.DB, s.Config)
		if err := credencialService.CreateCredencial(bombero.Credencial); err != nil {
			return err
		}
		bombero.CredencialID = &bombero.Credencial.ID
	}

	if bombero.FechaRegistro.IsZero() {
		bombero.FechaRegistro = time.Now()
	}

	if err := s.DB.Create(bombero).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return code.Conflict(code.MsgRunExiste)
		}
		return err
	}
	return nil
}

// UpdateBombero aplica una actualización parcial. Los campos se revisan
// en el orden del sistema original y los ausentes quedan intactos.
func (s *BomberoService) UpdateBombero(id uint, updates map[string]interface{}) (*models.Bombero, error) {
	bombero, err := s.GetBomberoByID(id)
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

	if telefono, ok := updates["telefono"].(int64); ok && telefono != bombero.Telefono {
		var count int64
		if err := s.DB.Model(&models.Bombero{}).
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

	if run, ok := updates["run"].(int64); ok && run != bombero.Run {
		var count int64
		if err := s.DB.Model(&models.Bombero{}).
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
		if err := s.DB.Model(bombero).Updates(cambios).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, code.Conflict(code.MsgRunExiste)
			}
			return nil, err
		}
	}

	return s.GetBomberoByID(id)
}

// DeleteBombero elimina el bombero y la credencial de su propiedad.
// La credencial es propiedad exclusiva del bombero, así que la fila se
// borra junto con él.
func (s *BomberoService) DeleteBombero(id uint) error {
	bombero, err := s.GetBomberoByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&models.Bombero{}, id).Error; err != nil {
		return err
	}

	if bombero.CredencialID != nil {
		if err := s.DB.Delete(&models.Credencial{}, *bombero.CredencialID).Error; err != nil {
			return err
		}
	}
	return nil
}

// AsignarCredencial resuelve ambos lados de la relación y enlaza la
// credencial al bombero
func (s *BomberoService) AsignarCredencial(bomberoID, credencialID uint) error {
	var bombero models.Bombero
	if err := s.DB.First(&bombero, bomberoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NotFound(code.MsgBomberoNoEncontrado)
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

	return s.DB.Model(&bombero).Update("credencial_id", credencialID).Error
}
