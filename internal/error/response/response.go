package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NikoGox/SAFE-Rescue-F3/internal/error/code"
)

// Response define el formato unificado de respuesta
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responde 200 con datos
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "éxito",
		Data:    data,
	})
}

// SuccessMessage responde 200 con un mensaje personalizado
func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Created responde 201 con la entidad creada
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// NoContent responde 204 sin cuerpo (listado vacío)
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error traduce un error de negocio a la respuesta HTTP según su Kind
func Error(c *gin.Context, err error) {
	kind := code.KindOf(err)
	status := code.HTTPStatus(kind)

	message := err.Error()
	if kind == code.KindInternal {
		// No se filtra la causa original al cliente
		message = code.MsgErrorInterno
	}

	c.JSON(status, Response{
		Code:    status,
		Message: message,
		Data:    nil,
	})
}

// BadRequest responde 400 con un mensaje
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: message,
		Data:    nil,
	})
}

// NotFound responde 404 con un mensaje
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code:    http.StatusNotFound,
		Message: message,
		Data:    nil,
	})
}

// TooManyRequests responde 429 con un mensaje
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Response{
		Code:    http.StatusTooManyRequests,
		Message: message,
		Data:    nil,
	})
}

// Unauthorized responde 401 con un mensaje
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:    http.StatusUnauthorized,
		Message: message,
		Data:    nil,
	})
}
