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

// InterfaceCiudadanoController define el controlador de ciudadanos
type InterfaceCiudadanoController interface {
	GetCiudadanos()
	GetCiudadano()
	CreateCiudadano()
	UpdateCiudadano()
	DeleteCiudadano()
	AsignarCredencial()
}

// CiudadanoController atiende las solicitudes del registro ciudadano
type CiudadanoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCiudadanoController crea un nuevo controlador de ciudadanos
func NewCiudadanoController(ctx *gin.Context, container *container.ServiceContainer) *CiudadanoController {
	return &CiudadanoController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateCiudadanoRequest es el cuerpo del alta de un ciudadano
type CreateCiudadanoRequest struct {
	Run           int64              `json:"run" binding:"required" example:"23456789"`
	Dv            string             `json:"dv" binding:"required" example:"1"`
	Nombre        string             `json:"nombre" binding:"required" example:"María"`
	APaterno      string             `json:"a_paterno" binding:"required" example:"González"`
	AMaterno      string             `json:"a_materno" example:"Rojas"`
	Telefono      int64              `json:"telefono" binding:"required" example:"912345678"`
	FechaRegistro *time.Time         `json:"fecha_registro"`
	Credencial    *CredencialRequest `json:"credencial"`
}

// UpdateCiudadanoRequest es el cuerpo de la actualización parcial
type UpdateCiudadanoRequest struct {
	Run           *int64     `json:"run"`
	Dv            *string    `json:"dv"`
	Nombre        *string    `json:"nombre"`
	APaterno      *string    `json:"a_paterno"`
	AMaterno      *string    `json:"a_materno"`
	Telefono      *int64     `json:"telefono"`
	FechaRegistro *time.Time `json:"fecha_registro"`
}

// HandleCiudadanoFunc devuelve el manejador Gin para el método indicado
func HandleCiudadanoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCiudadanoController(ctx, container)

		switch method {
		case "getCiudadanos":
			controller.GetCiudadanos()
		case "getCiudadano":
			controller.GetCiudadano()
		case "createCiudadano":
			controller.CreateCiudadano()
		case "updateCiudadano":
			controller.UpdateCiudadano()
		case "deleteCiudadano":
			controller.DeleteCiudadano()
		case "asignarCredencial":
			controller.AsignarCredencial()
		default:
			response.BadRequest(ctx, "Método inválido")
		}
	}
}

func (c *CiudadanoController) ciudadanoService() services.InterfaceCiudadanoService {
	return c.Container.GetService("ciudadano").(services.InterfaceCiudadanoService)
}

// GetCiudadanos lista todos los ciudadanos
// @Summary      Listar ciudadanos
// @Tags         Ciudadanos
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      204  "Sin ciudadanos registrados"
// @Router       /api-ciudadano/v1/ciudadanos [get]
func (c *CiudadanoController) GetCiudadanos() {
	ciudadanos, err := c.ciudadanoService().GetAllCiudadanos()
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(ciudadanos) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, ciudadanos)
}

// GetCiudadano obtiene un ciudadano por ID
// @Summary      Obtener ciudadano
// @Tags         Ciudadanos
// @Produce      json
// @Param        id path int true "ID del ciudadano"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-ciudadano/v1/ciudadanos/{id} [get]
func (c *CiudadanoController) GetCiudadano() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	ciudadano, err := c.ciudadanoService().GetCiudadanoByID(uint(id))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, ciudadano)
}

// CreateCiudadano registra un ciudadano nuevo
// @Summary      Crear ciudadano
// @Tags         Ciudadanos
// @Accept       json
// @Produce      json
// @Param        ciudadano body CreateCiudadanoRequest true "Datos del ciudadano"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api-ciudadano/v1/ciudadanos [post]
func (c *CiudadanoController) CreateCiudadano() {
	var req CreateCiudadanoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	ciudadano := models.Ciudadano{
		Run:      req.Run,
		Dv:       req.Dv,
		Nombre:   req.Nombre,
		APaterno: req.APaterno,
		AMaterno: req.AMaterno,
		Telefono: req.Telefono,
	}
	if req.FechaRegistro != nil {
		ciudadano.FechaRegistro = *req.FechaRegistro
	}
	if req.Credencial != nil {
		ciudadano.Credencial = &models.Credencial{
			Correo:      req.Credencial.Correo,
			Contrasenia: req.Credencial.Contrasenia,
			RolID:       req.Credencial.RolID,
			Activo:      true,
		}
	}

	if err := c.ciudadanoService().CreateCiudadano(&ciudadano); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Ciudadano creado con éxito", ciudadano)
}

// UpdateCiudadano actualiza parcialmente un ciudadano
// @Summary      Actualizar ciudadano
// @Tags         Ciudadanos
// @Accept       json
// @Produce      json
// @Param        id path int true "ID del ciudadano"
// @Param        ciudadano body UpdateCiudadanoRequest true "Campos a actualizar"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-ciudadano/v1/ciudadanos/{id} [put]
func (c *CiudadanoController) UpdateCiudadano() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	var req UpdateCiudadanoRequest
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

	ciudadano, err := c.ciudadanoService().UpdateCiudadano(uint(id), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Actualizado con éxito", ciudadano)
}

// DeleteCiudadano elimina un ciudadano
// @Summary      Eliminar ciudadano
// @Tags         Ciudadanos
// @Produce      json
// @Param        id path int true "ID del ciudadano"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-ciudadano/v1/ciudadanos/{id} [delete]
func (c *CiudadanoController) DeleteCiudadano() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.ciudadanoService().DeleteCiudadano(uint(id)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Ciudadano eliminado con éxito", nil)
}

// AsignarCredencial enlaza una credencial existente al ciudadano
// @Summary      Asignar credencial
// @Tags         Ciudadanos
// @Produce      json
// @Param        id path int true "ID del ciudadano"
// @Param        credencialId path int true "ID de la credencial"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-ciudadano/v1/ciudadanos/{id}/asignar-credencial/{credencialId} [post]
func (c *CiudadanoController) AsignarCredencial() {
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

	if err := c.ciudadanoService().AsignarCredencial(uint(id), uint(credencialID)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Credencial asignada con éxito", nil)
}
