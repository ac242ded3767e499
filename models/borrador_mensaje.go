package models

import "time"

// BorradorMensaje es un borrador de aviso aún no enviado. El envío en sí
// queda fuera del sistema; aquí solo se administra el borrador.
type BorradorMensaje struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	IDEmisor      int       `gorm:"not null;index" json:"id_emisor"`
	FechaBorrador time.Time `json:"fecha_borrador"`
	Titulo        string    `gorm:"type:varchar(30);not null" json:"titulo"`
	Contenido     string    `gorm:"type:varchar(30);not null" json:"contenido"`
}
