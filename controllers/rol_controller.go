package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/response"
	"github.com/NikoGox/SAFE-Rescue-F3/services"
	"github.com/NikoGox/SAFE-Rescue-F3/services/container"
)

// InterfaceRolController define el controlador de roles
type InterfaceRolController interface {
	GetRoles()
	GetRol()
	CreateRol()
	UpdateRol()
	DeleteRol()
}

// RolController expone el catálogo de roles. El catálogo se administra
// por siembra: toda mutación vía API se rechaza.
type RolController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRolController crea un nuevo controlador de roles
func NewRolController(ctx *gin.Context, container *container.ServiceContainer) *RolController {
	return &RolController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleRolFunc devuelve el manejador Gin para el método indicado
func HandleRolFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRolController(ctx, container)

		switch method {
		case "getRoles":
			controller.GetRoles()
		case "getRol":
			controller.GetRol()
		case "createRol":
			controller.CreateRol()
		case "updateRol":
			controller.UpdateRol()
		case "deleteRol":
			controller.DeleteRol()
		default:
			response.BadRequest(ctx, "Método inválido")
		}
	}
}

func (c *RolController) rolService() services.InterfaceRolService {
	return c.Container.GetService("rol").(services.InterfaceRolService)
}

// GetRoles lista todos los roles
// @Summary      Listar roles
// @Tags         Roles
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      204  "Sin roles registrados"
// @Router       /api/v1/roles [get]
func (c *RolController) GetRoles() {
	roles, err := c.rolService().GetAllRoles()
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(roles) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, roles)
}

// GetRol obtiene un rol por ID
// @Summary      Obtener rol
// @Tags         Roles
// @Produce      json
// @Param        id path int true "ID del rol"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/roles/{id} [get]
func (c *RolController) GetRol() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	rol, err := c.rolService().GetRolByID(uint(id))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rol)
}

// CreateRol rechaza la creación de roles vía API
// @Summary      Crear rol
// @Description  Operación no permitida: los roles se administran por siembra
// @Tags         Roles
// @Produce      json
// @Failure      401  {object}  response.Response
// @Router       /api/v1/roles [post]
func (c *RolController) CreateRol() {
	response.Unauthorized(c.Ctx, "No posee permisos para crear roles.")
}

// UpdateRol rechaza la modificación de roles vía API
// @Summary      Actualizar rol
// @Description  Operación no permitida: los roles se administran por siembra
// @Tags         Roles
// @Produce      json
// @Failure      401  {object}  response.Response
// @Router       /api/v1/roles/{id} [put]
func (c *RolController) UpdateRol() {
	response.Unauthorized(c.Ctx, "No posee permisos para realizar cambios.")
}

// DeleteRol rechaza la eliminación de roles vía API
// @Summary      Eliminar rol
// @Description  Operación no permitida: los roles se administran por siembra
// @Tags         Roles
// @Produce      json
// @Failure      401  {object}  response.Response
// @Router       /api/v1/roles/{id} [delete]
func (c *RolController) DeleteRol() {
	response.Unauthorized(c.Ctx, "No posee permisos para realizar eliminar.")
}
