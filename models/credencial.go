package models

import (
	"gorm.io/gorm"

	"github.com/NikoGox/SAFE-Rescue-F3/utils"
)

// Credencial es la cuenta de acceso de un bombero o ciudadano.
// La contraseña se guarda como hash bcrypt; el texto plano del sistema
// original no se conserva. "Eliminar" una credencial la anonimiza en vez
// de borrar la fila, para no romper las referencias desde bomberos y
// ciudadanos.
//
// El correo no lleva índice único en la base: la anonimización deja varias
// filas con correo vacío y un índice único las rechazaría. La unicidad del
// correo se valida en el servicio, ignorando filas anonimizadas.
type Credencial struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Correo           string `gorm:"type:varchar(80);index" json:"correo"`
	Contrasenia      string `gorm:"type:varchar(100)" json:"-"`
	IntentosFallidos int    `json:"intentos_fallidos"`
	Activo           bool   `gorm:"default:true" json:"activo"`
	RolID            *uint  `json:"rol_id,omitempty"`
	Rol              *Rol   `gorm:"foreignKey:RolID" json:"rol,omitempty"`
}

// BeforeSave hashea la contraseña si viene en texto plano.
// Un hash bcrypt mide 60 caracteres; todo lo más corto se considera plano.
func (c *Credencial) BeforeSave(tx *gorm.DB) error {
	if c.Contrasenia != "" && len(c.Contrasenia) < 60 {
		hash, err := utils.HashPassword(c.Contrasenia)
		if err != nil {
			return err
		}
		c.Contrasenia = hash
	}
	return nil
}
