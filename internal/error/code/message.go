package code

import "strconv"

// Mensajes compartidos entre servicios. Los textos provienen del sistema
// original y los consumen las pruebas, por eso viven en un solo lugar.
const (
	MsgRunExiste          = "El RUN ya existe"
	MsgTelefonoExiste     = "El Telefono ya existe"
	MsgCorreoExiste       = "El Correo ya existe"
	MsgCorreoEnUso        = "El correo ya está en uso. Por favor, use otro."
	MsgErrorInterno       = "Error interno del servidor."
	MsgParametrosInvalido = "Parámetros de la solicitud inválidos"

	MsgBomberoNoEncontrado    = "Bombero no encontrado"
	MsgCiudadanoNoEncontrado  = "Ciudadano no encontrado"
	MsgCredencialNoEncontrada = "Credencial no encontrada"
	MsgRolNoEncontrado        = "Rol no encontrado"
	MsgReporteNoEncontrado    = "Reporte no encontrado"
	MsgRecursoNoEncontrado    = "Recurso educativo no encontrado"
	MsgBorradorNoEncontrado   = "Borrador no encontrado"
)

// ExcedeMaximo arma el mensaje de longitud excedida del sistema original
func ExcedeMaximo(campo string, maximo int) string {
	return "El valor " + campo + " excede máximo de caracteres (" + strconv.Itoa(maximo) + ")"
}
