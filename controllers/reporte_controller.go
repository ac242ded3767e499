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

// InterfaceReporteController define el controlador de reportes operativos
type InterfaceReporteController interface {
	GetReportes()
	GetReporte()
	CreateReporte()
	UpdateReporte()
	DeleteReporte()
	GetPorIncidente()
	GetPorBomberoEmisor()
	GetPorEstado()
	GetPorTipoOperacion()
	GetConHeridosMinimos()
	GetPorRangoDuracion()
}

// ReporteController atiende las solicitudes de partes operativos
type ReporteController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReporteController crea un nuevo controlador de reportes
func NewReporteController(ctx *gin.Context, container *container.ServiceContainer) *ReporteController {
	return &ReporteController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateReporteRequest es el cuerpo del alta de un reporte operativo.
// La fecha y hora del reporte la asigna el servidor.
type CreateReporteRequest struct {
	IDIncidente               int    `json:"id_incidente" example:"101"`
	TipoOperacion             string `json:"tipo_operacion" example:"Incendio estructural"`
	EstadoOperacion           string `json:"estado_operacion" example:"En curso"`
	DuracionOperacionMinutos  *int   `json:"duracion_operacion_minutos" example:"45"`
	NumHeridos                *int   `json:"num_heridos" example:"2"`
	NumFallecidos             *int   `json:"num_fallecidos" example:"0"`
	NumEvacuados              *int   `json:"num_evacuados" example:"12"`
	NumDesaparecidos          *int   `json:"num_desaparecidos" example:"0"`
	RecursosUtilizadosDetalle string `json:"recursos_utilizados_detalle"`
	EquipoParticipante        string `json:"equipo_participante"`
	CausaProbable             string `json:"causa_probable"`
	ObservacionesAdicionales  string `json:"observaciones_adicionales"`
	BomberoEmisorID           int    `json:"bombero_emisor_id" example:"7"`
}

// UpdateReporteRequest es el cuerpo de la actualización parcial
type UpdateReporteRequest struct {
	IDIncidente               *int    `json:"id_incidente"`
	TipoOperacion             *string `json:"tipo_operacion"`
	EstadoOperacion           *string `json:"estado_operacion"`
	DuracionOperacionMinutos  *int    `json:"duracion_operacion_minutos"`
	NumHeridos                *int    `json:"num_heridos"`
	NumFallecidos             *int    `json:"num_fallecidos"`
	NumEvacuados              *int    `json:"num_evacuados"`
	NumDesaparecidos          *int    `json:"num_desaparecidos"`
	RecursosUtilizadosDetalle *string `json:"recursos_utilizados_detalle"`
	EquipoParticipante        *string `json:"equipo_participante"`
	CausaProbable             *string `json:"causa_probable"`
	ObservacionesAdicionales  *string `json:"observaciones_adicionales"`
	BomberoEmisorID           *int    `json:"bombero_emisor_id"`
}

// HandleReporteFunc devuelve el manejador Gin para el método indicado
func HandleReporteFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReporteController(ctx, container)

		switch method {
		case "getReportes":
			controller.GetReportes()
		case "getReporte":
			controller.GetReporte()
		case "createReporte":
			controller.CreateReporte()
		case "updateReporte":
			controller.UpdateReporte()
		case "deleteReporte":
			controller.DeleteReporte()
		case "getPorIncidente":
			controller.GetPorIncidente()
		case "getPorBomberoEmisor":
			controller.GetPorBomberoEmisor()
		case "getPorEstado":
			controller.GetPorEstado()
		case "getPorTipoOperacion":
			controller.GetPorTipoOperacion()
		case "getConHeridosMinimos":
			controller.GetConHeridosMinimos()
		case "getPorRangoDuracion":
			controller.GetPorRangoDuracion()
		default:
			response.BadRequest(ctx, "Método inválido")
		}
	}
}

func (c *ReporteController) reporteService() services.InterfaceReporteService {
	return c.Container.GetService("reporte").(services.InterfaceReporteService)
}

// listar responde el listado con la convención de 204 para vacío
func (c *ReporteController) listar(reportes []models.ReporteOperativo, err error) {
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if len(reportes) == 0 {
		response.NoContent(c.Ctx)
		return
	}
	response.Success(c.Ctx, reportes)
}

// GetReportes lista todos los reportes operativos
// @Summary      Listar reportes operativos
// @Tags         Reportes
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      204  "Sin reportes registrados"
// @Router       /api-reportes-bomberos/v1/reportes-operativos [get]
func (c *ReporteController) GetReportes() {
	reportes, err := c.reporteService().GetAllReportes()
	c.listar(reportes, err)
}

// GetReporte obtiene un reporte por ID
// @Summary      Obtener reporte operativo
// @Tags         Reportes
// @Produce      json
// @Param        id path int true "ID del reporte"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-reportes-bomberos/v1/reportes-operativos/{id} [get]
func (c *ReporteController) GetReporte() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	reporte, err := c.reporteService().GetReporteByID(uint(id))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, reporte)
}

// CreateReporte registra un reporte operativo nuevo
// @Summary      Crear reporte operativo
// @Tags         Reportes
// @Accept       json
// @Produce      json
// @Param        reporte body CreateReporteRequest true "Datos del reporte"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api-reportes-bomberos/v1/reportes-operativos [post]
func (c *ReporteController) CreateReporte() {
	var req CreateReporteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	reporte := models.ReporteOperativo{
		IDIncidente:               req.IDIncidente,
		TipoOperacion:             req.TipoOperacion,
		EstadoOperacion:           req.EstadoOperacion,
		DuracionOperacionMinutos:  req.DuracionOperacionMinutos,
		NumHeridos:                req.NumHeridos,
		NumFallecidos:             req.NumFallecidos,
		NumEvacuados:              req.NumEvacuados,
		NumDesaparecidos:          req.NumDesaparecidos,
		RecursosUtilizadosDetalle: req.RecursosUtilizadosDetalle,
		EquipoParticipante:        req.EquipoParticipante,
		CausaProbable:             req.CausaProbable,
		ObservacionesAdicionales:  req.ObservacionesAdicionales,
		BomberoEmisorID:           req.BomberoEmisorID,
	}

	if err := c.reporteService().CrearReporte(&reporte); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Reporte creado con éxito", reporte)
}

// UpdateReporte actualiza parcialmente un reporte
// @Summary      Actualizar reporte operativo
// @Tags         Reportes
// @Accept       json
// @Produce      json
// @Param        id path int true "ID del reporte"
// @Param        reporte body UpdateReporteRequest true "Campos a actualizar"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-reportes-bomberos/v1/reportes-operativos/{id} [put]
func (c *ReporteController) UpdateReporte() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	var req UpdateReporteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	updates := make(map[string]interface{})
	if req.IDIncidente != nil {
		updates["id_incidente"] = *req.IDIncidente
	}
	if req.TipoOperacion != nil {
		updates["tipo_operacion"] = *req.TipoOperacion
	}
	if req.EstadoOperacion != nil {
		updates["estado_operacion"] = *req.EstadoOperacion
	}
	if req.DuracionOperacionMinutos != nil {
		updates["duracion_operacion_minutos"] = *req.DuracionOperacionMinutos
	}
	if req.NumHeridos != nil {
		updates["num_heridos"] = *req.NumHeridos
	}
	if req.NumFallecidos != nil {
		updates["num_fallecidos"] = *req.NumFallecidos
	}
	if req.NumEvacuados != nil {
		updates["num_evacuados"] = *req.NumEvacuados
	}
	if req.NumDesaparecidos != nil {
		updates["num_desaparecidos"] = *req.NumDesaparecidos
	}
	if req.RecursosUtilizadosDetalle != nil {
		updates["recursos_utilizados_detalle"] = *req.RecursosUtilizadosDetalle
	}
	if req.EquipoParticipante != nil {
		updates["equipo_participante"] = *req.EquipoParticipante
	}
	if req.CausaProbable != nil {
		updates["causa_probable"] = *req.CausaProbable
	}
	if req.ObservacionesAdicionales != nil {
		updates["observaciones_adicionales"] = *req.ObservacionesAdicionales
	}
	if req.BomberoEmisorID != nil {
		updates["bombero_emisor_id"] = *req.BomberoEmisorID
	}

	reporte, err := c.reporteService().ActualizarReporte(uint(id), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Actualizado con éxito", reporte)
}

// DeleteReporte elimina un reporte
// @Summary      Eliminar reporte operativo
// @Tags         Reportes
// @Produce      json
// @Param        id path int true "ID del reporte"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api-reportes-bomberos/v1/reportes-operativos/{id} [delete]
func (c *ReporteController) DeleteReporte() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	if err := c.reporteService().EliminarReporte(uint(id)); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessMessage(c.Ctx, "Reporte eliminado con éxito", nil)
}

// GetPorIncidente lista los reportes de un incidente
// @Summary      Reportes por incidente
// @Tags         Reportes
// @Produce      json
// @Param        id path int true "ID del incidente"
// @Success      200  {object}  response.Response
// @Success      204  "Sin reportes para el incidente"
// @Router       /api-reportes-bomberos/v1/reportes-operativos/by-incidente/{id} [get]
func (c *ReporteController) GetPorIncidente() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	reportes, err := c.reporteService().BuscarPorIncidente(id)
	c.listar(reportes, err)
}

// GetPorBomberoEmisor lista los reportes emitidos por un bombero
// @Summary      Reportes por bombero emisor
// @Tags         Reportes
// @Produce      json
// @Param        id path int true "ID del bombero emisor"
// @Success      200  {object}  response.Response
// @Success      204  "Sin reportes del bombero"
// @Router       /api-reportes-bomberos/v1/reportes-operativos/by-bombero-emisor/{id} [get]
func (c *ReporteController) GetPorBomberoEmisor() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	reportes, err := c.reporteService().BuscarPorBomberoEmisor(id)
	c.listar(reportes, err)
}

// GetPorEstado lista los reportes con un estado exacto
// @Summary      Reportes por estado de operación
// @Tags         Reportes
// @Produce      json
// @Param        estado path string true "Estado de la operación"
// @Success      200  {object}  response.Response
// @Success      204  "Sin reportes con ese estado"
// @Router       /api-reportes-bomberos/v1/reportes-operativos/by-estado/{estado} [get]
func (c *ReporteController) GetPorEstado() {
	estado := c.Ctx.Param("estado")
	reportes, err := c.reporteService().BuscarPorEstado(estado)
	c.listar(reportes, err)
}

// GetPorTipoOperacion lista los reportes cuyo tipo contiene el texto
// @Summary      Reportes por tipo de operación
// @Tags         Reportes
// @Produce      json
// @Param        tipo path string true "Texto a buscar en el tipo de operación"
// @Success      200  {object}  response.Response
// @Success      204  "Sin reportes de ese tipo"
// @Router       /api-reportes-bomberos/v1/reportes-operativos/by-tipo-operacion/{tipo} [get]
func (c *ReporteController) GetPorTipoOperacion() {
	tipo := c.Ctx.Param("tipo")
	reportes, err := c.reporteService().BuscarPorTipoOperacion(tipo)
	c.listar(reportes, err)
}

// GetConHeridosMinimos lista los reportes con al menos N heridos
// @Summary      Reportes con heridos mínimos
// @Tags         Reportes
// @Produce      json
// @Param        minimo path int true "Número mínimo de heridos"
// @Success      200  {object}  response.Response
// @Success      204  "Sin reportes que cumplan el mínimo"
// @Router       /api-reportes-bomberos/v1/reportes-operativos/con-heridos-minimos/{minimo} [get]
func (c *ReporteController) GetConHeridosMinimos() {
	minimo, err := strconv.Atoi(c.Ctx.Param("minimo"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	reportes, err := c.reporteService().BuscarConHeridosMinimos(minimo)
	c.listar(reportes, err)
}

// GetPorRangoDuracion lista los reportes cuya duración cae en el rango
// @Summary      Reportes por rango de duración
// @Tags         Reportes
// @Produce      json
// @Param        min path int true "Duración mínima en minutos"
// @Param        max path int true "Duración máxima en minutos"
// @Success      200  {object}  response.Response
// @Success      204  "Sin reportes dentro del rango"
// @Router       /api-reportes-bomberos/v1/reportes-operativos/duracion-entre/{min}/{max} [get]
func (c *ReporteController) GetPorRangoDuracion() {
	min, err := strconv.Atoi(c.Ctx.Param("min"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}
	max, err := strconv.Atoi(c.Ctx.Param("max"))
	if err != nil {
		response.BadRequest(c.Ctx, code.MsgParametrosInvalido)
		return
	}

	reportes, err := c.reporteService().BuscarPorRangoDuracion(min, max)
	c.listar(reportes, err)
}
