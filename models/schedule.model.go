package models

import (
	"time"

	"gorm.io/gorm"
)

// Schedule delivery types
const (
	TipoPresencial = "Presencial"
	TipoVirtual    = "Virtual"
)

// Horario holds the date range, time range and delivery type of a section.
// Invariant: FechaInicio is strictly before FechaFinal.
type Horario struct {
	gorm.Model
	FechaInicio time.Time `json:"fechaInicio"`
	FechaFinal  time.Time `json:"fechaFinal"`
	HoraInicio  string    `json:"horaInicio"`
	HoraFinal   string    `json:"horaFinal"`
	Tipo        string    `json:"tipo"`
	Estado      bool      `json:"estado" gorm:"default:true"`
	SeccionID   uint      `json:"seccionId" gorm:"index;not null"`
}

// DiaHorario is one weekday on which a Horario repeats. Rows are replaced
// wholesale on schedule update, so no soft delete here.
type DiaHorario struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Dia       string `json:"dia" gorm:"not null"`
	HorarioID uint   `json:"horarioId" gorm:"index;not null"`
}
