package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/config"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
	"github.com/NikoGox/SAFE-Rescue-F3/utils"
)

// InterfaceCredencialService define el servicio de credenciales
type InterfaceCredencialService interface {
	GetAllCredenciales() ([]models.Credencial, error)
	GetCredencialByID(id uint) (*models.Credencial, error)
	GetCredencialByCorreo(correo string) (*models.Credencial, error)
	CreateCredencial(credencial *models.Credencial) error
	UpdateCredencial(id uint, updates map[string]interface{}) (*models.Credencial, error)
	DeleteCredencial(id uint) error
	VerificarCredenciales(correo, contrasenia string) (bool, error)
	AsignarRol(credencialID, rolID uint) error
}

// CredencialService administra las cuentas de acceso
type CredencialService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCredencialService crea un nuevo servicio de credenciales
func NewCredencialService(db *gorm.DB, cfg *config.Config) InterfaceCredencialService {
	return &CredencialService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllCredenciales obtiene todas las credenciales
func (s *CredencialService) GetAllCredenciales() ([]models.Credencial, error) {
	var credenciales []models.Credencial
	if err := s.DB.Preload("Rol").Find(&credenciales).Error; err != nil {
		return nil, err
	}
	return credenciales, nil
}

// GetCredencialByID obtiene una credencial por su ID
func (s *CredencialService) GetCredencialByID(id uint) (*models.Credencial, error) {
	var credencial models.Credencial
	if err := s.DB.Preload("Rol").First(&credencial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgCredencialNoEncontrada)
		}
		return nil, err
	}
	return &credencial, nil
}

// GetCredencialByCorreo obtiene una credencial por su correo. Las filas
// anonimizadas (correo vacío) nunca se devuelven.
func (s *CredencialService) GetCredencialByCorreo(correo string) (*models.Credencial, error) {
	var credencial models.Credencial
	err := s.DB.Preload("Rol").Where("correo = ? AND correo <> ''", correo).First(&credencial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound(code.MsgCredencialNoEncontrada)
		}
		return nil, err
	}
	return &credencial, nil
}

// CreateCredencial valida y persiste una credencial nueva.
// Las validaciones cortan en el primer error, en orden fijo, para que el
// mensaje devuelto sea determinista.
func (s *CredencialService) CreateCredencial(credencial *models.Credencial) error {
	if credencial.Correo == "" {
		return code.Validation("correo", "El correo es obligatorio")
	}
	if len(credencial.Correo) > 80 {
		return code.Validation("correo", code.ExcedeMaximo("correo", 80))
	}
	if credencial.Contrasenia == "" {
		return code.Validation("contrasenia", "La contrasenia es obligatoria")
	}
	if len(credencial.Contrasenia) > 16 {
		return code.Validation("contrasenia", code.ExcedeMaximo("contrasenia", 16))
	}

	// Camino rápido: aviso amable antes de chocar con la base.
	// Las filas anonimizadas (correo vacío) no cuentan.
	var count int64
	if err := s.DB.Model(&models.Credencial{}).
		Where("correo = ? AND correo <> ''", credencial.Correo).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.Conflict(code.MsgCorreoEnUso)
	}

	// Resolver el rol referenciado antes de guardar
	if credencial.RolID != nil {
		var rol models.Rol
		if err := s.DB.First(&rol, *credencial.RolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.Validation("rol_id", code.MsgRolNoEncontrado)
			}
			return err
		}
	}

	if err := s.DB.Create(credencial).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return code.Conflict(code.MsgCorreoEnUso)
		}
		return err
	}
	return nil
}

// UpdateCredencial aplica una actualización parcial: solo los campos
// presentes en updates se validan y sobrescriben
func (s *CredencialService) UpdateCredencial(id uint, updates map[string]interface{}) (*models.Credencial, error) {
	credencial, err := s.GetCredencialByID(id)
	if err != nil {
		return nil, err
	}

	cambios := make(map[string]interface{})

	if contrasenia, ok := updates["contrasenia"].(string); ok {
		if len(contrasenia) > 16 {
			return nil, code.Validation("contrasenia", code.ExcedeMaximo("contrasenia", 16))
		}
		// Los Updates por mapa no pasan por el hook BeforeSave
		hash, err := utils.HashPassword(contrasenia)
		if err != nil {
			return nil, err
		}
		cambios["contrasenia"] = hash
	}

	if correo, ok := updates["correo"].(string); ok && correo != credencial.Correo {
		var count int64
		if err := s.DB.Model(&models.Credencial{}).
			Where("correo = ? AND correo <> '' AND id <> ?", correo, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.Conflict(code.MsgCorreoExiste)
		}
		if len(correo) > 80 {
			return nil, code.Validation("correo", code.ExcedeMaximo("correo", 80))
		}
		cambios["correo"] = correo
	}

	if activo, ok := updates["activo"].(bool); ok {
		cambios["activo"] = activo
	}

	if len(cambios) > 0 {
		if err := s.DB.Model(credencial).Updates(cambios).Error; err != nil {
			return nil, err
		}
	}

	return s.GetCredencialByID(id)
}

// DeleteCredencial anonimiza la credencial en lugar de borrar la fila:
// bomberos y ciudadanos pueden seguir referenciándola sin romper la
// integridad de claves foráneas
func (s *CredencialService) DeleteCredencial(id uint) error {
	credencial, err := s.GetCredencialByID(id)
	if err != nil {
		return err
	}

	return s.DB.Model(credencial).Updates(map[string]interface{}{
		"correo":            "",
		"contrasenia":       "",
		"activo":            false,
		"rol_id":            nil,
		"intentos_fallidos": 0,
	}).Error
}

// VerificarCredenciales compara la contraseña recibida contra el hash
// guardado. Un fallo incrementa el contador de intentos fallidos; un
// acierto lo deja intacto. El contador se registra pero no bloquea el
// acceso, igual que en el sistema original.
func (s *CredencialService) VerificarCredenciales(correo, contrasenia string) (bool, error) {
	var credencial models.Credencial
	err := s.DB.Where("correo = ? AND correo <> ''", correo).First(&credencial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if utils.CheckPasswordHash(contrasenia, credencial.Contrasenia) {
		return true, nil
	}

	if err := s.DB.Model(&credencial).
		Update("intentos_fallidos", credencial.IntentosFallidos+1).Error; err != nil {
		return false, err
	}
	return false, nil
}

// AsignarRol resuelve ambos lados de la relación y enlaza el rol
func (s *CredencialService) AsignarRol(credencialID, rolID uint) error {
	var rol models.Rol
	if err := s.DB.First(&rol, rolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NotFound(code.MsgRolNoEncontrado)
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

	return s.DB.Model(&credencial).Update("rol_id", rolID).Error
}
