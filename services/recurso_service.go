package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
)

// patronURL acepta esquemas http, https, ftp y file, con el mismo
// alfabeto de caracteres que validaba el sistema original
var patronURL = regexp.MustCompile(`^(https?|ftp|file)://[-a-zA-Z0-9+&@#/%?=~_|!:,.;]*[-a-zA-Z0-9+&@#/%=~_|]$`)

// InterfaceRecursoService define el servicio del catálogo de recursos
// educativos
type InterfaceRecursoService interface {
	GetAllRecursos() ([]models.RecursoEducativo, error)
	GetRecursoByID(id uint) (*models.RecursoEducativo, error)
	CrearRecurso(recurso *models.RecursoEducativo) error
	ActualizarRecurso(id uint, updates map[string]interface{}) (*models.RecursoEducativo, error)
	EliminarRecurso(id uint) error
	BuscarPorTipo(tipo string) ([]models.RecursoEducativo, error)
	BuscarPorAutor(autor string) ([]models.RecursoEducativo, error)
	BuscarPorNombre(nombre string) ([]models.RecursoEducativo, error)
	BuscarPublicadosDespues(fecha time.Time) ([]models.RecursoEducativo, error)
	BuscarCreadosAntes(fecha time.Time) ([]models.RecursoEducativo, error)
	BuscarPorTipoYAutor(tipo, autor string) ([]models.RecursoEducativo, error)
}

// RecursoService administra el catálogo de material de capacitación
type RecursoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRecursoService crea un nuevo servicio de recursos educativos
func NewRecursoService(db *gorm.DB, cfg *config.Config) InterfaceRecursoService {
	return &RecursoService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllRecursos obtiene todos los recursos educativos
func (s *RecursoService) GetAllRecursos() ([]models.RecursoEducativo, error) {
	var recursos []models.RecursoEducativo
	if err := s.DB.Find(&recursos).Error; err != nil {
		return nil, err
	}
	return recursos, nil
}

// GetRecursoByID obtiene un recurso educativo por su ID
func (s *RecursoService) GetRecursoByID(id uint) (*models.RecursoEducativo, error) {
	var recurso models.RecursoEducativo
	if err := s.DB.First(&recurso, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgRecursoNoEncontrado)
		}
		return nil, err
	}
	return &recurso, nil
}

// validarRecurso corre las reglas del catálogo en orden fijo
func validarRecurso(recurso *models.RecursoEducativo) error {
	tipo := strings.TrimSpace(recurso.TipoRecurso)
	if tipo == "" || len(recurso.TipoRecurso) < 2 || len(recurso.TipoRecurso) > 50 {
		return code.Validation("tipo_recurso", "El tipo de recurso debe tener entre 2 y 50 caracteres y no puede estar en blanco.")
	}
	nombre := strings.TrimSpace(recurso.Nombre)
	if nombre == "" || len(recurso.Nombre) < 3 || len(recurso.Nombre) > 100 {
		return code.Validation("nombre", "El nombre del recurso debe tener entre 3 y 100 caracteres y no puede estar en blanco.")
	}
	autor := strings.TrimSpace(recurso.Autor)
	if autor == "" || len(recurso.Autor) < 3 || len(recurso.Autor) > 100 {
		return code.Validation("autor", "El autor debe tener entre 3 y 100 caracteres y no puede estar en blanco.")
	}
	if strings.TrimSpace(recurso.URL) == "" || len(recurso.URL) > 500 {
		return code.Validation("url", "La URL no puede estar en blanco y no puede exceder los 500 caracteres.")
	}
	if !patronURL.MatchString(recurso.URL) {
		return code.Validation("url", "La URL proporcionada no es válida.")
	}
	if len(recurso.Descripcion) > 1000 {
		return code.Validation("descripcion", "La descripción no puede exceder los 1000 caracteres.")
	}
	if recurso.FechaPublicacionAutor.IsZero() {
		return code.Validation("fecha_publicacion_autor", "La fecha de publicación del autor no puede ser nula.")
	}
	return nil
}

// CrearRecurso valida y persiste un recurso nuevo. La fecha de creación
// del registro la asigna el servidor.
func (s *RecursoService) CrearRecurso(recurso *models.RecursoEducativo) error {
	if err := validarRecurso(recurso); err != nil {
		return err
	}
	recurso.FechaCreacionRecurso = time.Now()
	return s.DB.Create(recurso).Error
}

// ActualizarRecurso aplica una actualización parcial con las mismas
// reglas del alta. La fecha de creación del registro es inmutable.
func (s *RecursoService) ActualizarRecurso(id uint, updates map[string]interface{}) (*models.RecursoEducativo, error) {
	recurso, err := s.GetRecursoByID(id)
	if err != nil {
		return nil, err
	}

	cambios := make(map[string]interface{})

	if tipo, ok := updates["tipo_recurso"].(string); ok {
		if strings.TrimSpace(tipo) == "" || len(tipo) < 2 || len(tipo) > 50 {
			return nil, code.Validation("tipo_recurso", "El tipo de recurso debe tener entre 2 y 50 caracteres y no puede estar en blanco.")
		}
		cambios["tipo_recurso"] = tipo
	}

	if nombre, ok := updates["nombre"].(string); ok {
		if strings.TrimSpace(nombre) == "" || len(nombre) < 3 || len(nombre) > 100 {
			return nil, code.Validation("nombre", "El nombre del recurso debe tener entre 3 y 100 caracteres y no puede estar en blanco.")
		}
		cambios["nombre"] = nombre
	}

	if autor, ok := updates["autor"].(string); ok {
		if strings.TrimSpace(autor) == "" || len(autor) < 3 || len(autor) > 100 {
			return nil, code.Validation("autor", "El autor debe tener entre 3 y 100 caracteres y no puede estar en blanco.")
		}
		cambios["autor"] = autor
	}

	if url, ok := updates["url"].(string); ok {
		if strings.TrimSpace(url) == "" || len(url) > 500 {
			return nil, code.Validation("url", "La URL no puede estar en blanco y no puede exceder los 500 caracteres.")
		}
		if !patronURL.MatchString(url) {
			return nil, code.Validation("url", "La URL proporcionada no es válida.")
		}
		cambios["url"] = url
	}

	if descripcion, ok := updates["descripcion"].(string); ok {
		if len(descripcion) > 1000 {
			return nil, code.Validation("descripcion", "La descripción no puede exceder los 1000 caracteres.")
		}
		cambios["descripcion"] = descripcion
	}

	if fecha, ok := updates["fecha_publicacion_autor"].(time.Time); ok {
		if fecha.IsZero() {
			return nil, code.Validation("fecha_publicacion_autor", "La fecha de publicación del autor no puede ser nula.")
		}
		cambios["fecha_publicacion_autor"] = fecha
	}

	if len(cambios) > 0 {
		if err := s.DB.Model(recurso).Updates(cambios).Error; err != nil {
			return nil, err
		}
	}

	return s.GetRecursoByID(id)
}

// EliminarRecurso borra un recurso educativo por su ID
func (s *RecursoService) EliminarRecurso(id uint) error {
	if _, err := s.GetRecursoByID(id); err != nil {
		return err
	}
	return s.DB.Delete(&models.RecursoEducativo{}, id).Error
}

// BuscarPorTipo obtiene los recursos de un tipo exacto
func (s *RecursoService) BuscarPorTipo(tipo string) ([]models.RecursoEducativo, error) {
	var recursos []models.RecursoEducativo
	if err := s.DB.Where("tipo_recurso = ?", tipo).Find(&recursos).Error; err != nil {
		return nil, err
	}
	return recursos, nil
}

// BuscarPorAutor obtiene los recursos de un autor exacto
func (s *RecursoService) BuscarPorAutor(autor string) ([]models.RecursoEducativo, error) {
	var recursos []models.RecursoEducativo
	if err := s.DB.Where("autor = ?", autor).Find(&recursos).Error; err != nil {
		return nil, err
	}
	return recursos, nil
}

// BuscarPorNombre obtiene los recursos cuyo nombre contiene el texto,
// sin distinguir mayúsculas
func (s *RecursoService) BuscarPorNombre(nombre string) ([]models.RecursoEducativo, error) {
	var recursos []models.RecursoEducativo
	patron := "%" + strings.ToLower(nombre) + "%"
	if err := s.DB.Where("LOWER(nombre) LIKE ?", patron).Find(&recursos).Error; err != nil {
		return nil, err
	}
	return recursos, nil
}

// BuscarPublicadosDespues obtiene los recursos cuya fecha de publicación
// del autor es posterior a la indicada
func (s *RecursoService) BuscarPublicadosDespues(fecha time.Time) ([]models.RecursoEducativo, error) {
	var recursos []models.RecursoEducativo
	if err := s.DB.Where("fecha_publicacion_autor > ?", fecha).Find(&recursos).Error; err != nil {
		return nil, err
	}
	return recursos, nil
}

// BuscarCreadosAntes obtiene los recursos registrados en el catálogo
// antes de la fecha indicada
func (s *RecursoService) BuscarCreadosAntes(fecha time.Time) ([]models.RecursoEducativo, error) {
	var recursos []models.RecursoEducativo
	if err := s.DB.Where("fecha_creacion_recurso < ?", fecha).Find(&recursos).Error; err != nil {
		return nil, err
	}
	return recursos, nil
}

// BuscarPorTipoYAutor combina ambos filtros exactos
func (s *RecursoService) BuscarPorTipoYAutor(tipo, autor string) ([]models.RecursoEducativo, error) {
	var recursos []models.RecursoEducativo
	if err := s.DB.Where("tipo_recurso = ? AND autor = ?", tipo, autor).Find(&recursos).Error; err != nil {
		return nil, err
	}
	return recursos, nil
}
