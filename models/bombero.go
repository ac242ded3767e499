package models

import "time"

// Bombero representa a un bombero registrado en la compañía.
// El RUN y el teléfono llevan índice único en la base de datos: la
// validación manual del servicio es solo el camino rápido, la restricción
// de la base es la autoridad final.
type Bombero struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Run           int64       `gorm:"uniqueIndex;not null" json:"run"`
	Dv            string      `gorm:"type:varchar(1);not null" json:"dv"`
	Nombre        string      `gorm:"type:varchar(50);not null" json:"nombre"`
	APaterno      string      `gorm:"type:varchar(50);not null" json:"a_paterno"`
	AMaterno      string      `gorm:"type:varchar(50);not null" json:"a_materno"`
	Telefono      int64       `gorm:"uniqueIndex;not null" json:"telefono"`
	FechaRegistro time.Time   `json:"fecha_registro"`
	CredencialID  *uint       `json:"credencial_id,omitempty"`
	Credencial    *Credencial `gorm:"foreignKey:CredencialID" json:"credencial,omitempty"`
}
