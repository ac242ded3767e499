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

// InterfaceReporteService define el servicio de reportes operativos
type InterfaceReporteService interface {
	GetAllReportes() ([]models.ReporteOperativo, error)
	GetReporteByID(id uint) (*models.ReporteOperativo, error)
	CrearReporte(reporte *models.ReporteOperativo) error
	ActualizarReporte(id uint, updates map[string]interface{}) (*models.ReporteOperativo, error)
	EliminarReporte(id uint) error
	BuscarPorIncidente(idIncidente int) ([]models.ReporteOperativo, error)
	BuscarPorBomberoEmisor(bomberoID int) ([]models.ReporteOperativo, error)
	BuscarPorEstado(estado string) ([]models.ReporteOperativo, error)
	BuscarPorTipoOperacion(tipo string) ([]models.ReporteOperativo, error)
	BuscarPorIncidenteYEstado(idIncidente int, estado string) ([]models.ReporteOperativo, error)
	BuscarConHeridosMinimos(minimo int) ([]models.ReporteOperativo, error)
	BuscarPorRangoDuracion(minMinutos, maxMinutos int) ([]models.ReporteOperativo, error)
}

// ReporteService administra los partes de operaciones de los bomberos
type ReporteService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReporteService crea un nuevo servicio de reportes operativos
func NewReporteService(db *gorm.DB, cfg *config.Config) InterfaceReporteService {
	return &ReporteService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllReportes obtiene todos los reportes operativos
func (s *ReporteService) GetAllReportes() ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	if err := s.DB.Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}

// GetReporteByID obtiene un reporte operativo por su ID
func (s *ReporteService) GetReporteByID(id uint) (*models.ReporteOperativo, error) {
	var reporte models.ReporteOperativo
	if err := s.DB.First(&reporte, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgReporteNoEncontrado)
		}
		return nil, err
	}
	return &reporte, nil
}

// CrearReporte valida y persiste un reporte nuevo. La fecha y hora del
// reporte siempre la asigna el servidor.
func (s *ReporteService) CrearReporte(reporte *models.ReporteOperativo) error {
	if reporte.IDIncidente <= 0 {
		return code.Validation("id_incidente", "El ID del incidente es obligatorio y debe ser un número positivo.")
	}
	if reporte.BomberoEmisorID <= 0 {
		return code.Validation("bombero_emisor_id", "El ID del bombero emisor es obligatorio y debe ser un número positivo.")
	}
	if strings.TrimSpace(reporte.TipoOperacion) == "" {
		return code.Validation("tipo_operacion", "El tipo de operación es obligatorio.")
	}
	if len(reporte.TipoOperacion) > 100 {
		return code.Validation("tipo_operacion", "El tipo de operación no debe exceder los 100 caracteres.")
	}
	if strings.TrimSpace(reporte.EstadoOperacion) == "" {
		return code.Validation("estado_operacion", "El estado de la operación es obligatorio.")
	}
	if len(reporte.EstadoOperacion) > 50 {
		return code.Validation("estado_operacion", "El estado de la operación no debe exceder los 50 caracteres.")
	}

	if reporte.DuracionOperacionMinutos != nil && *reporte.DuracionOperacionMinutos < 0 {
		return code.Validation("duracion_operacion_minutos", "La duración de la operación no puede ser negativa.")
	}
	if reporte.NumHeridos != nil && *reporte.NumHeridos < 0 {
		return code.Validation("num_heridos", "El número de heridos no puede ser negativo.")
	}
	if reporte.NumFallecidos != nil && *reporte.NumFallecidos < 0 {
		return code.Validation("num_fallecidos", "El número de fallecidos no puede ser negativo.")
	}
	if reporte.NumEvacuados != nil && *reporte.NumEvacuados < 0 {
		return code.Validation("num_evacuados", "El número de evacuados no puede ser negativo.")
	}
	if reporte.NumDesaparecidos != nil && *reporte.NumDesaparecidos < 0 {
		return code.Validation("num_desaparecidos", "El número de desaparecidos no puede ser negativo.")
	}
	if len(reporte.RecursosUtilizadosDetalle) > 1000 {
		return code.Validation("recursos_utilizados_detalle", "El detalle de recursos utilizados no puede exceder los 1000 caracteres.")
	}
	if len(reporte.EquipoParticipante) > 1000 {
		return code.Validation("equipo_participante", "El detalle del equipo participante no puede exceder los 1000 caracteres.")
	}
	if len(reporte.CausaProbable) > 255 {
		return code.Validation("causa_probable", "La causa probable no puede exceder los 255 caracteres.")
	}
	if len(reporte.ObservacionesAdicionales) > 2000 {
		return code.Validation("observaciones_adicionales", "Las observaciones adicionales no pueden exceder los 2000 caracteres.")
	}

	reporte.FechaHoraReporte = time.Now()
	return s.DB.Create(reporte).Error
}

// ActualizarReporte aplica una actualización parcial: cada campo presente
// se valida y sobrescribe en el orden del sistema original. La fecha y
// hora del reporte no se toca.
func (s *ReporteService) ActualizarReporte(id uint, updates map[string]interface{}) (*models.ReporteOperativo, error) {
	reporte, err := s.GetReporteByID(id)
	if err != nil {
		return nil, err
	}

	cambios := make(map[string]interface{})

	if idIncidente, ok := updates["id_incidente"].(int); ok {
		if idIncidente <= 0 {
			return nil, code.Validation("id_incidente", "El ID del incidente debe ser un número positivo.")
		}
		cambios["id_incidente"] = idIncidente
	}

	if tipo, ok := updates["tipo_operacion"].(string); ok {
		if strings.TrimSpace(tipo) == "" {
			return nil, code.Validation("tipo_operacion", "El tipo de operación no puede estar vacío.")
		}
		if len(tipo) > 100 {
			return nil, code.Validation("tipo_operacion", "El tipo de operación no debe exceder los 100 caracteres.")
		}
		cambios["tipo_operacion"] = tipo
	}

	if estado, ok := updates["estado_operacion"].(string); ok {
		if strings.TrimSpace(estado) == "" {
			return nil, code.Validation("estado_operacion", "El estado de la operación no puede estar vacío.")
		}
		if len(estado) > 50 {
			return nil, code.Validation("estado_operacion", "El estado de la operación no debe exceder los 50 caracteres.")
		}
		cambios["estado_operacion"] = estado
	}

	if duracion, ok := updates["duracion_operacion_minutos"].(int); ok {
		if duracion < 0 {
			return nil, code.Validation("duracion_operacion_minutos", "La duración de la operación no puede ser negativa.")
		}
		cambios["duracion_operacion_minutos"] = duracion
	}

	if heridos, ok := updates["num_heridos"].(int); ok {
		if heridos < 0 {
			return nil, code.Validation("num_heridos", "El número de heridos no puede ser negativo.")
		}
		cambios["num_heridos"] = heridos
	}

	if fallecidos, ok := updates["num_fallecidos"].(int); ok {
		if fallecidos < 0 {
			return nil, code.Validation("num_fallecidos", "El número de fallecidos no puede ser negativo.")
		}
		cambios["num_fallecidos"] = fallecidos
	}

	if evacuados, ok := updates["num_evacuados"].(int); ok {
		if evacuados < 0 {
			return nil, code.Validation("num_evacuados", "El número de evacuados no puede ser negativo.")
		}
		cambios["num_evacuados"] = evacuados
	}

	if desaparecidos, ok := updates["num_desaparecidos"].(int); ok {
		if desaparecidos < 0 {
			return nil, code.Validation("num_desaparecidos", "El número de desaparecidos no puede ser negativo.")
		}
		cambios["num_desaparecidos"] = desaparecidos
	}

	if recursos, ok := updates["recursos_utilizados_detalle"].(string); ok {
		if len(recursos) > 1000 {
			return nil, code.Validation("recursos_utilizados_detalle", "El detalle de recursos utilizados no puede exceder los 1000 caracteres.")
		}
		cambios["recursos_utilizados_detalle"] = recursos
	}

	if equipo, ok := updates["equipo_participante"].(string); ok {
		if len(equipo) > 1000 {
			return nil, code.Validation("equipo_participante", "El detalle del equipo participante no puede exceder los 1000 caracteres.")
		}
		cambios["equipo_participante"] = equipo
	}

	if causa, ok := updates["causa_probable"].(string); ok {
		if len(causa) > 255 {
			return nil, code.Validation("causa_probable", "La causa probable no puede exceder los 255 caracteres.")
		}
		cambios["causa_probable"] = causa
	}

	if observaciones, ok := updates["observaciones_adicionales"].(string); ok {
		if len(observaciones) > 2000 {
			return nil, code.Validation("observaciones_adicionales", "Las observaciones adicionales no pueden exceder los 2000 caracteres.")
		}
		cambios["observaciones_adicionales"] = observaciones
	}

	if emisor, ok := updates["bombero_emisor_id"].(int); ok {
		if emisor <= 0 {
			return nil, code.Validation("bombero_emisor_id", "El ID del bombero emisor es obligatorio y debe ser un número positivo.")
		}
		cambios["bombero_emisor_id"] = emisor
	}

	if len(cambios) > 0 {
		if err := s.DB.Model(reporte).Updates(cambios).Error; err != nil {
			return nil, err
		}
	}

	return s.GetReporteByID(id)
}

// EliminarReporte borra un reporte operativo por su ID
func (s *ReporteService) EliminarReporte(id uint) error {
	if _, err := s.GetReporteByID(id); err != nil {
		return err
	}
	return s.DB.Delete(&models.ReporteOperativo{}, id).Error
}

// BuscarPorIncidente obtiene los reportes asociados a un incidente
func (s *ReporteService) BuscarPorIncidente(idIncidente int) ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	if err := s.DB.Where("id_incidente = ?", idIncidente).Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}

// BuscarPorBomberoEmisor obtiene los reportes emitidos por un bombero
func (s *ReporteService) BuscarPorBomberoEmisor(bomberoID int) ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	if err := s.DB.Where("bombero_emisor_id = ?", bomberoID).Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}

// BuscarPorEstado obtiene los reportes con un estado de operación exacto
func (s *ReporteService) BuscarPorEstado(estado string) ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	if err := s.DB.Where("estado_operacion = ?", estado).Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}

// BuscarPorTipoOperacion obtiene los reportes cuyo tipo de operación
// contiene el texto, sin distinguir mayúsculas
func (s *ReporteService) BuscarPorTipoOperacion(tipo string) ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	patron := "%" + strings.ToLower(tipo) + "%"
	if err := s.DB.Where("LOWER(tipo_operacion) LIKE ?", patron).Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}

// BuscarPorIncidenteYEstado combina ambos filtros exactos
func (s *ReporteService) BuscarPorIncidenteYEstado(idIncidente int, estado string) ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	if err := s.DB.Where("id_incidente = ? AND estado_operacion = ?", idIncidente, estado).
		Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}

// BuscarConHeridosMinimos obtiene los reportes con al menos el número
// indicado de heridos
func (s *ReporteService) BuscarConHeridosMinimos(minimo int) ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	if err := s.DB.Where("num_heridos >= ?", minimo).Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}

// BuscarPorRangoDuracion obtiene los reportes cuya duración de operación
// cae dentro del rango en minutos, incluyendo ambos extremos
func (s *ReporteService) BuscarPorRangoDuracion(minMinutos, maxMinutos int) ([]models.ReporteOperativo, error) {
	var reportes []models.ReporteOperativo
	if err := s.DB.Where("duracion_operacion_minutos BETWEEN ? AND ?", minMinutos, maxMinutos).
		Find(&reportes).Error; err != nil {
		return nil, err
	}
	return reportes, nil
}
