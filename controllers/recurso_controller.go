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

// InterfaceRecursoController define el controlador de recursos educativos
type InterfaceRecursoController interface {
	GetRecursos()
	GetRecurso()
	CreateRecurso()
	UpdateRecurso()
	DeleteRecurso()
	GetPorTipo()
	GetPorAutor()
	GetPorNombre()
	GetPublicadosDespues()
	GetCreadosAntes()
}

// RecursoController atiende las solicitudes del catálogo de capacitación
type RecursoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRecursoController crea un nuevo controlador de recursos educativos
func NewRecursoController(ctx *gin.Context, container *container.ServiceContainer) *RecursoController {
	return &RecursoController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateRecursoRequest es el cuerpo del alta de un recurso educativo
type CreateRecursoRequest struct {
	TipoRecurso           string     `json:"tipo_recurso" binding:"required" example:"Video"`
	Nombre                string     `json:"nombre" binding:"required" example:"Primeros auxilios básicos"`
	Descripcion           string     `json:"descripcion"`
	Autor                 string     `json:"autor" binding:"required" example:"Cuerpo de Bomberos"`
	URL                   string     `json:"url" binding:"required" example:"https://capacitaciones.safe-rescue.cl/primeros-auxilios"`
	FechaPublicacionAutor *time.Time `json:"fecha_publicacion_autor" binding:"required"`
}

// UpdateRecursoRequest es el cuerpo de la actualización parcial
type UpdateRecursoRequest struct {
	TipoRecurso           *string    `json:"tipo_recurso"`
	Nombre                *string    `json:"nombre"`
	Descripcion           *string    `json:"descripcion"`
	Autor                 *string    `json:"autor"`
	URL                   *string    `json:"url"`
	FechaPublicacionAutor *time.Time `json:"fecha_publicacion_autor"`
}

// HandleRecursoFunc devuelve el manejador Gin para el método indicado
func HandleRecursoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRecursoController(ctx, container)

		switch method {
		case "getRecursos":
			controller.GetRecursos()
		case "getRecurso":
			controller.GetRecurso()
		case "createRecurso":
			controller.CreateRecurso()
		case "updateRecurso":
			controller.UpdateRecurso()
		case "deleteRecurso":
			controller.DeleteRecurso()
		case "getPorTipo":
			controller.GetPorTipo()
		case "getPorAutor":
			controller.GetPorAutor()
		case "getPorNombre":
			controller.GetPorNombre()
		case "getPublicadosDespues":
			controller.GetPublicadosDespues()
		case "getCreadosAntes":
			controller.GetCreadosAntes()
		default:
			response.BadRequest(ctx, "Método inválido")
		}
	}
}

func (c *RecursoController) recursoService() services.InterfaceRecursoService {
	return c.Container.GetService("recurso").(services.InterfaceRecursoService)
}

// listar responde el listado con la convención de 204 para vacío
func (c *RecursoController) listar(recursos []models.RecursoEducativo, err error) {
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(recursos) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, recursos)
}

// GetRecursos lista todos los recursos educativos
// @Summary      Listar recursos educativos
// @Tags         Recursos
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      204  "Sin recursos registrados"
// @Router       /api-capacitaciones/v1/recursos-educativos [get]
func (c *RecursoController) GetRecursos() {
	recursos, err := c.recursoService().GetAllRecursos()
	c.listar(recursos, err)
}

// GetRecurso obtiene un recurso por ID
// @Summary      Obtener recurso educativo
// @Tags         Recursos
// @Produce      json
// @Param        id path int true "ID del recurso"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-capacitaciones/v1/recursos-educativos/{id} [get]
func (c *RecursoController) GetRecurso() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	recurso, err := c.recursoService().GetRecursoByID(uint(id))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, recurso)
}

// CreateRecurso registra un recurso educativo nuevo
// @Summary      Crear recurso educativo
// @Tags         Recursos
// @Accept       json
// @Produce      json
// @Param        recurso body CreateRecursoRequest true "Datos del recurso"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api-capacitaciones/v1/recursos-educativos [post]
func (c *RecursoController) CreateRecurso() {
	var req CreateRecursoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	recurso := models.RecursoEducativo{
		TipoRecurso: req.TipoRecurso,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Autor:       req.Autor,
		URL:         req.URL,
	}
	if req.FechaPublicacionAutor != nil {
		recurso.FechaPublicacionAutor = *req.FechaPublicacionAutor
	}

	if err := c.recursoService().CrearRecurso(&recurso); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Recurso creado con éxito", recurso)
}

// UpdateRecurso actualiza parcialmente un recurso
// @Summary      Actualizar recurso educativo
// @Tags         Recursos
// @Accept       json
// @Produce      json
// @Param        id path int true "ID del recurso"
// @Param        recurso body UpdateRecursoRequest true "Campos a actualizar"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-capacitaciones/v1/recursos-educativos/{id} [put]
func (c *RecursoController) UpdateRecurso() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	var req UpdateRecursoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	updates := make(map[string]interface{})
	if req.TipoRecurso != nil {
		updates["tipo_recurso"] = *req.TipoRecurso
	}
	if req.Nombre != nil {
		updates["nombre"] = *req.Nombre
	}
	if req.Autor != nil {
		updates["autor"] = *req.Autor
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Descripcion != nil {
		updates["descripcion"] = *req.Descripcion
	}
	if req.FechaPublicacionAutor != nil {
		updates["fecha_publicacion_autor"] = *req.FechaPublicacionAutor
	}

	recurso, err := c.recursoService().ActualizarRecurso(uint(id), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Actualizado con éxito", recurso)
}

// DeleteRecurso elimina un recurso
// @Summary      Eliminar recurso educativo
// @Tags         Recursos
// @Produce      json
// @Param        id path int true "ID del recurso"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-capacitaciones/v1/recursos-educativos/{id} [delete]
func (c *RecursoController) DeleteRecurso() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.recursoService().EliminarRecurso(uint(id)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Recurso eliminado con éxito", nil)
}

// GetPorTipo lista los recursos de un tipo exacto
// @Summary      Recursos por tipo
// @Tags         Recursos
// @Produce      json
// @Param        tipo path string true "Tipo de recurso"
// @Success      200  {object}  response.Response
// @Success      204  "Sin recursos de ese tipo"
// @Router       /api-capacitaciones/v1/recursos-educativos/tipo/{tipo} [get]
func (c *RecursoController) GetPorTipo() {
	tipo := c.Ctx.Param("tipo")
	recursos, err := c.recursoService().BuscarPorTipo(tipo)
	c.listar(recursos, err)
}

// GetPorAutor lista los recursos de un autor exacto
// @Summary      Recursos por autor
// @Tags         Recursos
// @Produce      json
// @Param        autor path string true "Autor del recurso"
// @Success      200  {object}  response.Response
// @Success      204  "Sin recursos de ese autor"
// @Router       /api-capacitaciones/v1/recursos-educativos/autor/{autor} [get]
func (c *RecursoController) GetPorAutor() {
	autor := c.Ctx.Param("autor")
	recursos, err := c.recursoService().BuscarPorAutor(autor)
	c.listar(recursos, err)
}

// GetPorNombre lista los recursos cuyo nombre contiene el texto
// @Summary      Recursos por nombre
// @Tags         Recursos
// @Produce      json
// @Param        nombre path string true "Texto a buscar en el nombre"
// @Success      200  {object}  response.Response
// @Success      204  "Sin recursos con ese nombre"
// @Router       /api-capacitaciones/v1/recursos-educativos/nombre/{nombre} [get]
func (c *RecursoController) GetPorNombre() {
	nombre := c.Ctx.Param("nombre")
	recursos, err := c.recursoService().BuscarPorNombre(nombre)
	c.listar(recursos, err)
}

// GetPublicadosDespues lista los recursos publicados después de una fecha
// @Summary      Recursos publicados después de una fecha
// @Tags         Recursos
// @Produce      json
// @Param        fecha path string true "Fecha en formato RFC 3339"
// @Success      200  {object}  response.Response
// @Success      204  "Sin recursos posteriores a la fecha"
// @Failure      400  {object}  response.Response
// @Router       /api-capacitaciones/v1/recursos-educativos/publicado-despues/{fecha} [get]
func (c *RecursoController) GetPublicadosDespues() {
	fecha, err := time.Parse(time.RFC3339, c.Ctx.Param("fecha"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	recursos, err := c.recursoService().BuscarPublicadosDespues(fecha)
	c.listar(recursos, err)
}

// GetCreadosAntes lista los recursos registrados antes de una fecha
// @Summary      Recursos creados antes de una fecha
// @Tags         Recursos
// @Produce      json
// @Param        fecha path string true "Fecha en formato RFC 3339"
// @Success      200  {object}  response.Response
// @Success      204  "Sin recursos anteriores a la fecha"
// @Failure      400  {object}  response.Response
// @Router       /api-capacitaciones/v1/recursos-educativos/creado-antes/{fecha} [get]
func (c *RecursoController) GetCreadosAntes() {
	fecha, err := time.Parse(time.RFC3339, c.Ctx.Param("fecha"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	recursos, err := c.recursoService().BuscarCreadosAntes(fecha)
	c.listar(recursos, err)
}
