package models

// Rol es una tabla de consulta sembrada al arranque. Las mutaciones por
// API están deshabilitadas administrativamente.
type Rol struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"type:varchar(30)" json:"nombre"`
}
