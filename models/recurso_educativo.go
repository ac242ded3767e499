package models

import "time"

// RecursoEducativo es material de capacitación del catálogo.
// FechaCreacionRecurso la asigna el servidor al crear y es inmutable.
type RecursoEducativo struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	TipoRecurso           string    `gorm:"type:varchar(50);not null;index" json:"tipo_recurso"`
	Nombre                string    `gorm:"type:varchar(100);not null" json:"nombre"`
	Descripcion           string    `gorm:"type:varchar(1000)" json:"descripcion,omitempty"`
	Autor                 string    `gorm:"type:varchar(100);not null;index" json:"autor"`
	URL                   string    `gorm:"type:varchar(500);not null" json:"url"`
	FechaPublicacionAutor time.Time `json:"fecha_publicacion_autor"`
	FechaCreacionRecurso  time.Time `json:"fecha_creacion_recurso"`
}
