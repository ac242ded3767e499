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

// InterfaceBomberoController define el controlador de bomberos
type InterfaceBomberoController interface {
	GetBomberos()
	GetBombero()
	CreateBombero()
	UpdateBombero()
	DeleteBombero()
	AsignarCredencial()
}

// BomberoController atiende las solicitudes del personal de bomberos
type BomberoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBomberoController crea un nuevo controlador de bomberos
func NewBomberoController(ctx *gin.Context, container *container.ServiceContainer) *BomberoController {
	return &BomberoController{
		Ctx:       ctx,
		Container: container,
	}
}

// CredencialRequest es la credencial embebida en el alta de personal
type CredencialRequest struct {
	Correo      string `json:"correo" binding:"required" example:"persona@safe-rescue.cl"`
	Contrasenia string `json:"contrasenia" binding:"required" example:"Clave123"`
	RolID       *uint  `json:"rol_id" example:"2"`
}

// CreateBomberoRequest es el cuerpo del alta de un bombero
type CreateBomberoRequest struct {
	Run           int64              `json:"run" binding:"required" example:"12345678"`
	Dv            string             `json:"dv" binding:"required" example:"K"`
	Nombre        string             `json:"nombre" binding:"required" example:"Juan"`
	APaterno      string             `json:"a_paterno" binding:"required" example:"Pérez"`
	AMaterno      string             `json:"a_materno" example:"Soto"`
	Telefono      int64              `json:"telefono" binding:"required" example:"987654321"`
	FechaRegistro *time.Time         `json:"fecha_registro"`
	Credencial    *CredencialRequest `json:"credencial"`
}

// UpdateBomberoRequest es el cuerpo de la actualización parcial: los
// campos ausentes no se tocan
type UpdateBomberoRequest struct {
	Run           *int64     `json:"run"`
	Dv            *string    `json:"dv"`
	Nombre        *string    `json:"nombre"`
	APaterno      *string    `json:"a_paterno"`
	AMaterno      *string    `json:"a_materno"`
	Telefono      *int64     `json:"telefono"`
	FechaRegistro *time.Time `json:"fecha_registro"`
}

// HandleBomberoFunc devuelve el manejador Gin para el método indicado
func HandleBomberoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBomberoController(ctx, container)

		switch method {
		case "getBomberos":
			controller.GetBomberos()
		case "getBombero":
			controller.GetBombero()
		case "createBombero":
			controller.CreateBombero()
		case "updateBombero":
			controller.UpdateBombero()
		case "deleteBombero":
			controller.DeleteBombero()
		case "asignarCredencial":
			controller.AsignarCredencial()
		default:
			response.BadRequest(ctx, "Método inválido")
		}
	}
}

func (c *BomberoController) bomberoService() services.InterfaceBomberoService {
	return c.Container.GetService("bombero").(services.InterfaceBomberoService)
}

// GetBomberos lista todos los bomberos
// @Summary      Listar bomberos
// @Description  Obtiene todos los bomberos registrados con su credencial y rol
// @Tags         Bomberos
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      204  "Sin bomberos registrados"
// @Failure      500  {object}  response.Response
// @Router       /api/v1/bomberos [get]
func (c *BomberoController) GetBomberos() {
	bomberos, err := c.bomberoService().GetAllBomberos()
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(bomberos) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, bomberos)
}

// GetBombero obtiene un bombero por ID
// @Summary      Obtener bombero
// @Description  Obtiene un bombero por su ID
// @Tags         Bomberos
// @Produce      json
// @Param        id path int true "ID del bombero"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/bomberos/{id} [get]
func (c *BomberoController) GetBombero() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	bombero, err := c.bomberoService().GetBomberoByID(uint(id))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, bombero)
}

// CreateBombero registra un bombero nuevo
// @Summary      Crear bombero
// @Description  Registra un bombero, con credencial embebida opcional
// @Tags         Bomberos
// @Accept       json
// @Produce      json
// @Param        bombero body CreateBomberoRequest true "Datos del bombero"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/v1/bomberos [post]
func (c *BomberoController) CreateBombero() {
	var req CreateBomberoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	bombero := models.Bombero{
		Run:      req.Run,
		Dv:       req.Dv,
		Nombre:   req.Nombre,
		APaterno: req.APaterno,
		AMaterno: req.AMaterno,
		Telefono: req.Telefono,
	}
	if req.FechaRegistro != nil {
		bombero.FechaRegistro = *req.FechaRegistro
	}
	if req.Credencial != nil {
		bombero.Credencial = &models.Credencial{
			Correo:      req.Credencial.Correo,
			Contrasenia: req.Credencial.Contrasenia,
			RolID:       req.Credencial.RolID,
			Activo:      true,
		}
	}

	if err := c.bomberoService().CreateBombero(&bombero); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Bombero creado con éxito", bombero)
}

// UpdateBombero actualiza parcialmente un bombero
// @Summary      Actualizar bombero
// @Description  Actualiza solo los campos presentes en el cuerpo
// @Tags         Bomberos
// @Accept       json
// @Produce      json
// @Param        id path int true "ID del bombero"
// @Param        bombero body UpdateBomberoRequest true "Campos a actualizar"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/bomberos/{id} [put]
func (c *BomberoController) UpdateBombero() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	var req UpdateBomberoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	updates := make(map[string]interface{})
	if req.Nombre != nil {
		updates["nombre"] = *req.Nombre
	}
	if req.Telefono != nil {
		updates["telefono"] = *req.Telefono
	}
	if req.Run != nil {
		updates["run"] = *req.Run
	}
	if req.Dv != nil {
		updates["dv"] = *req.Dv
	}
	if req.APaterno != nil {
		updates["a_paterno"] = *req.APaterno
	}
	if req.AMaterno != nil {
		updates["a_materno"] = *req.AMaterno
	}
	if req.FechaRegistro != nil {
		updates["fecha_registro"] = *req.FechaRegistro
	}

	bombero, err := c.bomberoService().UpdateBombero(uint(id), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Actualizado con éxito", bombero)
}

// DeleteBombero elimina un bombero
// @Summary      Eliminar bombero
// @Description  Elimina el bombero y la credencial de su propiedad
// @Tags         Bomberos
// @Produce      json
// @Param        id path int true "ID del bombero"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/bomberos/{id} [delete]
func (c *BomberoController) DeleteBombero() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.bomberoService().DeleteBombero(uint(id)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Bombero eliminado con éxito", nil)
}

// AsignarCredencial enlaza una credencial existente al bombero
// @Summary      Asignar credencial
// @Description  Enlaza una credencial existente a un bombero
// @Tags         Bomberos
// @Produce      json
// @Param        id path int true "ID del bombero"
// @Param        credencialId path int true "ID de la credencial"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/bomberos/{id}/asignar-credencial/{credencialId} [post]
func (c *BomberoController) AsignarCredencial() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}
	credencialID, err := strconv.ParseUint(c.Ctx.Param("credencialId"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.bomberoService().AsignarCredencial(uint(id), uint(credencialID)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Credencial asignada con éxito", nil)
}
