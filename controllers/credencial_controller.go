package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/response"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
	"github.com/NikoGox/SAFE-Rescue-F3/services"
	"github.com/NikoGox/SAFE-Rescue-F3/services/container"
)

// InterfaceCredencialController define el controlador de credenciales
type InterfaceCredencialController interface {
	GetCredenciales()
	GetCredencial()
	CreateCredencial()
	UpdateCredencial()
	DeleteCredencial()
	Login()
	AsignarRol()
}

// CredencialController atiende las solicitudes de cuentas de acceso
type CredencialController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCredencialController crea un nuevo controlador de credenciales
func NewCredencialController(ctx *gin.Context, container *container.ServiceContainer) *CredencialController {
	return &CredencialController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateCredencialRequest es el cuerpo del alta de una credencial
type CreateCredencialRequest struct {
	Correo      string `json:"correo" binding:"required" example:"operador@safe-rescue.cl"`
	Contrasenia string `json:"contrasenia" binding:"required" example:"Clave123"`
	RolID       *uint  `json:"rol_id" example:"2"`
}

// UpdateCredencialRequest es el cuerpo de la actualización parcial
type UpdateCredencialRequest struct {
	Correo      *string `json:"correo"`
	Contrasenia *string `json:"contrasenia"`
	Activo      *bool   `json:"activo"`
}

// LoginRequest es el cuerpo de la verificación de credenciales
type LoginRequest struct {
	Correo      string `json:"correo" binding:"required" example:"operador@safe-rescue.cl"`
	Contrasenia string `json:"contrasenia" binding:"required" example:"Clave123"`
}

// HandleCredencialFunc devuelve el manejador Gin para el método indicado
func HandleCredencialFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCredencialController(ctx, container)

		switch method {
		case "getCredenciales":
			controller.GetCredenciales()
		case "getCredencial":
			controller.GetCredencial()
		case "createCredencial":
			controller.CreateCredencial()
		case "updateCredencial":
			controller.UpdateCredencial()
		case "deleteCredencial":
			controller.DeleteCredencial()
		case "login":
			controller.Login()
		case "asignarRol":
			controller.AsignarRol()
		default:
			response.BadRequest(ctx, "Método inválido")
		}
	}
}

func (c *CredencialController) credencialService() services.InterfaceCredencialService {
	return c.Container.GetService("credencial").(services.InterfaceCredencialService)
}

// GetCredenciales lista todas las credenciales
// @Summary      Listar credenciales
// @Tags         Credenciales
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      204  "Sin credenciales registradas"
// @Router       /api/v1/credenciales [get]
func (c *CredencialController) GetCredenciales() {
	credenciales, err := c.credencialService().GetAllCredenciales()
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(credenciales) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, credenciales)
}

// GetCredencial obtiene una credencial por ID
// @Summary      Obtener credencial
// @Tags         Credenciales
// @Produce      json
// @Param        id path int true "ID de la credencial"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/credenciales/{id} [get]
func (c *CredencialController) GetCredencial() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	credencial, err := c.credencialService().GetCredencialByID(uint(id))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, credencial)
}

// CreateCredencial registra una credencial nueva
// @Summary      Crear credencial
// @Tags         Credenciales
// @Accept       json
// @Produce      json
// @Param        credencial body CreateCredencialRequest true "Datos de la credencial"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/v1/credenciales [post]
func (c *CredencialController) CreateCredencial() {
	var req CreateCredencialRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	credencial := models.Credencial{
		Correo:      req.Correo,
		Contrasenia: req.Contrasenia,
		RolID:       req.RolID,
		Activo:      true,
	}

	if err := c.credencialService().CreateCredencial(&credencial); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Credencial creada con éxito", credencial)
}

// UpdateCredencial actualiza parcialmente una credencial
// @Summary      Actualizar credencial
// @Tags         Credenciales
// @Accept       json
// @Produce      json
// @Param        id path int true "ID de la credencial"
// @Param        credencial body UpdateCredencialRequest true "Campos a actualizar"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/credenciales/{id} [put]
func (c *CredencialController) UpdateCredencial() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	var req UpdateCredencialRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	updates := make(map[string]interface{})
	if req.Contrasenia != nil {
		updates["contrasenia"] = *req.Contrasenia
	}
	if req.Correo != nil {
		updates["correo"] = *req.Correo
	}
	if req.Activo != nil {
		updates["activo"] = *req.Activo
	}

	credencial, err := c.credencialService().UpdateCredencial(uint(id), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Actualizado con éxito", credencial)
}

// DeleteCredencial anonimiza una credencial
// @Summary      Eliminar credencial
// @Description  Anonimiza la cuenta: la fila se conserva para no romper referencias
// @Tags         Credenciales
// @Produce      json
// @Param        id path int true "ID de la credencial"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/credenciales/{id} [delete]
func (c *CredencialController) DeleteCredencial() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.credencialService().DeleteCredencial(uint(id)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Credencial eliminada con éxito", nil)
}

// Login verifica credenciales y emite un token de sesión
// @Summary      Iniciar sesión
// @Description  Verifica correo y contraseña; si coinciden, emite un token JWT
// @Tags         Credenciales
// @Accept       json
// @Produce      json
// @Param        login body LoginRequest true "Credenciales de acceso"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/v1/credenciales/login [post]
func (c *CredencialController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	ok, err := c.credencialService().VerificarCredenciales(req.Correo, req.Contrasenia)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if !ok {
		response.Unauthorized(c.Ctx, "Correo o contraseña incorrectos")
		return
	}

	// La verificación pasó; se recupera la credencial para armar el token
	credencial, err := c.credencialService().GetCredencialByCorreo(req.Correo)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	var rol string
	if credencial.Rol != nil {
		rol = credencial.Rol.Nombre
	}

	jwtService := c.Container.GetService("jwt").(*services.JWTService)
	token, err := jwtService.GenerateToken(credencial.ID, credencial.Correo, rol)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	response.SuccessMessage(c.Ctx, "Inicio de sesión correcto", gin.H{
		"token": token,
	})
}

// AsignarRol enlaza un rol existente a la credencial
// @Summary      Asignar rol
// @Tags         Credenciales
// @Produce      json
// @Param        id path int true "ID de la credencial"
// @Param        rolId path int true "ID del rol"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/credenciales/{id}/asignar-rol/{rolId} [post]
func (c *CredencialController) AsignarRol() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}
	rolID, err := strconv.ParseUint(c.Ctx.Param("rolId"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.credencialService().AsignarRol(uint(id), uint(rolID)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Rol asignado con éxito", nil)
}
