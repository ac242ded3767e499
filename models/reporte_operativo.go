package models

import "time"

// ReporteOperativo es el parte de una operación emitido por un bombero.
// Los contadores son punteros: cero es un valor válido y hay que poder
// distinguirlo de "no informado".
type ReporteOperativo struct {
	ID                        uint      `gorm:"primaryKey" json:"id"`
	IDIncidente               int       `gorm:"not null;index" json:"id_incidente"`
	FechaHoraReporte          time.Time `json:"fecha_hora_reporte"`
	TipoOperacion             string    `gorm:"type:varchar(100);not null" json:"tipo_operacion"`
	EstadoOperacion           string    `gorm:"type:varchar(50);not null;index" json:"estado_operacion"`
	DuracionOperacionMinutos  *int      `json:"duracion_operacion_minutos,omitempty"`
	NumHeridos                *int      `json:"num_heridos,omitempty"`
	NumFallecidos             *int      `json:"num_fallecidos,omitempty"`
	NumEvacuados              *int      `json:"num_evacuados,omitempty"`
	NumDesaparecidos          *int      `json:"num_desaparecidos,omitempty"`
	RecursosUtilizadosDetalle string    `gorm:"type:varchar(1000)" json:"recursos_utilizados_detalle,omitempty"`
	EquipoParticipante        string    `gorm:"type:varchar(1000)" json:"equipo_participante,omitempty"`
	CausaProbable             string    `gorm:"type:varchar(255)" json:"causa_probable,omitempty"`
	ObservacionesAdicionales  string    `gorm:"type:varchar(2000)" json:"observaciones_adicionales,omitempty"`
	BomberoEmisorID           int       `gorm:"not null;index" json:"bombero_emisor_id"`
}
