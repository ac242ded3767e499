package models

import "time"

// Ciudadano representa a un ciudadano del registro civil de la plataforma.
// Es dueño exclusivo de su Credencial: al crear un ciudadano la credencial
// embebida se persiste primero y luego se enlaza.
type Ciudadano struct {
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
