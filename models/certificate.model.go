package models

import "time"

// Certificado is issued to one student for one section. Immutable once
// created; deletion is a hard delete.
type Certificado struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time `json:"createdAt"`
	Titulo          string    `json:"titulo"`
	Descripcion     string    `json:"descripcion"`
	FechaExpedicion time.Time `json:"fechaExpedicion"`
	EstudianteID    uint      `json:"estudianteId" gorm:"index;not null"`
	SeccionID       uint      `json:"seccionId" gorm:"index;not null"`
}
