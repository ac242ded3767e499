package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

// InterfaceBorradorService define el servicio de borradores de mensaje
type InterfaceBorradorService interface {
	GetAllBorradores() ([]models.BorradorMensaje, error)
	GetBorradorByID(id uint) (*models.BorradorMensaje, error)
	CrearBorrador(borrador *models.BorradorMensaje) error
	ActualizarBorrador(id uint, updates map[string]interface{}) (*models.BorradorMensaje, error)
	EliminarBorrador(id uint) error
	BuscarPorEmisor(idEmisor int) ([]models.BorradorMensaje, error)
	BuscarPorRangoFechas(desde, hasta time.Time) ([]models.BorradorMensaje, error)
}

// BorradorService administra los borradores de avisos aún no enviados
type BorradorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBorradorService crea un nuevo servicio de borradores
func NewBorradorService(db *gorm.DB, cfg *config.Config) InterfaceBorradorService {
	return &BorradorService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllBorradores obtiene todos los borradores
func (s *BorradorService) GetAllBorradores() ([]models.BorradorMensaje, error) {
	var borradores []models.BorradorMensaje
	if err := s.DB.Find(&borradores).Error; err != nil {
		return nil, err
	}
	return borradores, nil
}

// GetBorradorByID obtiene un borrador por su ID
func (s *BorradorService) GetBorradorByID(id uint) (*models.BorradorMensaje, error) {
	var borrador models.BorradorMensaje
	if err := s.DB.First(&borrador, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgBorradorNoEncontrado)
		}
		return nil, err
	}
	return &borrador, nil
}

// CrearBorrador valida y persiste un borrador nuevo. Si no trae fecha,
// se le asigna la actual.
func (s *BorradorService) CrearBorrador(borrador *models.BorradorMensaje) error {
	if borrador.IDEmisor <= 0 {
		return code.Validation("id_emisor", "El emisor del borrador no puede ser cero.")
	}
	if strings.TrimSpace(borrador.Titulo) == "" {
		return code.Validation("titulo", "El título del borrador es obligatorio.")
	}
	if len(borrador.Titulo) > 30 {
		return code.Validation("titulo", code.ExcedeMaximo("titulo", 30))
	}
	if strings.TrimSpace(borrador.Contenido) == "" {
		return code.Validation("contenido", "El contenido del borrador es obligatorio.")
	}
	if len(borrador.Contenido) > 30 {
		return code.Validation("contenido", code.ExcedeMaximo("contenido", 30))
	}

	if borrador.FechaBorrador.IsZero() {
		borrador.FechaBorrador = time.Now()
	}
	return s.DB.Create(borrador).Error
}

// ActualizarBorrador aplica una actualización parcial. Solo el título y
// el contenido son editables; el emisor y la fecha quedan intactos.
func (s *BorradorService) ActualizarBorrador(id uint, updates map[string]interface{}) (*models.BorradorMensaje, error) {
	borrador, err := s.GetBorradorByID(id)
	if err != nil {
		return nil, err
	}

	cambios := make(map[string]interface{})

	if titulo, ok := updates["titulo"].(string); ok {
		if len(titulo) > 30 {
			return nil, code.Validation("titulo", code.ExcedeMaximo("titulo", 30))
		}
		cambios["titulo"] = titulo
	}

	if contenido, ok := updates["contenido"].(string); ok {
		if len(contenido) > 30 {
			return nil, code.Validation("contenido", code.ExcedeMaximo("contenido", 30))
		}
		cambios["contenido"] = contenido
	}

	if len(cambios) > 0 {
		if err := s.DB.Model(borrador).Updates(cambios).Error; err != nil {
			return nil, err
		}
	}

	return s.GetBorradorByID(id)
}

// EliminarBorrador borra un borrador por su ID
func (s *BorradorService) EliminarBorrador(id uint) error {
	if _, err := s.GetBorradorByID(id); err != nil {
		return err
	}
	return s.DB.Delete(&models.BorradorMensaje{}, id).Error
}

// BuscarPorEmisor obtiene los borradores de un emisor
func (s *BorradorService) BuscarPorEmisor(idEmisor int) ([]models.BorradorMensaje, error) {
	var borradores []models.BorradorMensaje
	if err := s.DB.Where("id_emisor = ?", idEmisor).Find(&borradores).Error; err != nil {
		return nil, err
	}
	return borradores, nil
}

// BuscarPorRangoFechas obtiene los borradores dentro del rango de fechas,
// ambos extremos inclusive
func (s *BorradorService) BuscarPorRangoFechas(desde, hasta time.Time) ([]models.BorradorMensaje, error) {
	var borradores []models.BorradorMensaje
	if err := s.DB.Where("fecha_borrador BETWEEN ? AND ?", desde, hasta).
		Find(&borradores).Error; err != nil {
		return nil, err
	}
	return borradores, nil
}
