package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/response"
	"github.com/NikoGox/SAFE-Rescue-F3/models"
	"github.com/NikoGox/SAFE-Rescue-F3/services"
	"github.com/NikoGox/SAFE-Rescue-F3/services/container"
)

// InterfaceBorradorController define el controlador de borradores
type InterfaceBorradorController interface {
	GetBorradores()
	GetBorrador()
	CreateBorrador()
	UpdateBorrador()
	DeleteBorrador()
	GetPorEmisor()
}

// BorradorController atiende las solicitudes de borradores de mensaje
type BorradorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBorradorController crea un nuevo controlador de borradores
func NewBorradorController(ctx *gin.Context, container *container.ServiceContainer) *BorradorController {
	return &BorradorController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateBorradorRequest es el cuerpo del alta de un borrador
type CreateBorradorRequest struct {
	IDEmisor      int        `json:"id_emisor" binding:"required" example:"5"`
	Titulo        string     `json:"titulo" binding:"required" example:"Aviso de simulacro"`
	Contenido     string     `json:"contenido" binding:"required" example:"Simulacro el viernes"`
	FechaBorrador *time.Time `json:"fecha_borrador"`
}

// UpdateBorradorRequest es el cuerpo de la actualización parcial; solo
// el título y el contenido son editables
type UpdateBorradorRequest struct {
	Titulo    *string `json:"titulo"`
	Contenido *string `json:"contenido"`
}

// HandleBorradorFunc devuelve el manejador Gin para el método indicado
func HandleBorradorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBorradorController(ctx, container)

		switch method {
		case "getBorradores":
			controller.GetBorradores()
		case "getBorrador":
			controller.GetBorrador()
		case "createBorrador":
			controller.CreateBorrador()
		case "updateBorrador":
			controller.UpdateBorrador()
		case "deleteBorrador":
			controller.DeleteBorrador()
		case "getPorEmisor":
			controller.GetPorEmisor()
		default:
			response.BadRequest(ctx, "Método inválido")
		}
	}
}

func (c *BorradorController) borradorService() services.InterfaceBorradorService {
	return c.Container.GetService("borrador").(services.InterfaceBorradorService)
}

// GetBorradores lista todos los borradores
// @Summary      Listar borradores
// @Tags         Borradores
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      204  "Sin borradores registrados"
// @Router       /api-comunicacion/v1/borradores [get]
func (c *BorradorController) GetBorradores() {
	borradores, err := c.borradorService().GetAllBorradores()
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(borradores) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, borradores)
}

// GetBorrador obtiene un borrador por ID
// @Summary      Obtener borrador
// @Tags         Borradores
// @Produce      json
// @Param        id path int true "ID del borrador"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-comunicacion/v1/borradores/{id} [get]
func (c *BorradorController) GetBorrador() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	borrador, err := c.borradorService().GetBorradorByID(uint(id))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, borrador)
}

// CreateBorrador registra un borrador nuevo
// @Summary      Crear borrador
// @Tags         Borradores
// @Accept       json
// @Produce      json
// @Param        borrador body CreateBorradorRequest true "Datos del borrador"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api-comunicacion/v1/borradores [post]
func (c *BorradorController) CreateBorrador() {
	var req CreateBorradorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	borrador := models.BorradorMensaje{
		IDEmisor:  req.IDEmisor,
		Titulo:    req.Titulo,
		Contenido: req.Contenido,
	}
	if req.FechaBorrador != nil {
		borrador.FechaBorrador = *req.FechaBorrador
	}

	if err := c.borradorService().CrearBorrador(&borrador); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Borrador creado con éxito", borrador)
}

// UpdateBorrador actualiza el título o el contenido de un borrador
// @Summary      Actualizar borrador
// @Tags         Borradores
// @Accept       json
// @Produce      json
// @Param        id path int true "ID del borrador"
// @Param        borrador body UpdateBorradorRequest true "Campos a actualizar"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-comunicacion/v1/borradores/{id} [put]
func (c *BorradorController) UpdateBorrador() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	var req UpdateBorradorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	updates := make(map[string]interface{})
	if req.Titulo != nil {
		updates["titulo"] = *req.Titulo
	}
	if req.Contenido != nil {
		updates["contenido"] = *req.Contenido
	}

	borrador, err := c.borradorService().ActualizarBorrador(uint(id), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Actualizado con éxito", borrador)
}

// DeleteBorrador elimina un borrador
// @Summary      Eliminar borrador
// @Tags         Borradores
// @Produce      json
// @Param        id path int true "ID del borrador"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-comunicacion/v1/borradores/{id} [delete]
func (c *BorradorController) DeleteBorrador() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.borradorService().EliminarBorrador(uint(id)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Borrador eliminado con éxito", nil)
}

// GetPorEmisor lista los borradores de un emisor
// @Summary      Borradores por emisor
// @Tags         Borradores
// @Produce      json
// @Param        id path int true "ID del emisor"
// @Success      200  {object}  response.Response
// @Success      204  "Sin borradores del emisor"
// @Router       /api-comunicacion/v1/borradores/emisor/{id} [get]
func (c *BorradorController) GetPorEmisor() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	borradores, err := c.borradorService().BuscarPorEmisor(id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(borradores) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, borradores)
}
