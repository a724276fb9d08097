package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment approval states
const (
	EstadoEnEspera   = "En Espera"
	EstadoAprobada   = "Aprobada"
	EstadoNoAprobada = "No Aprobada"
)

// Inscripcion is a student's request to join a section, carrying the payment
// reference. It moves En Espera -> Aprobada | No Aprobada; both outcomes are
// terminal, re-applying requires a fresh Inscripcion.
type Inscripcion struct {
	gorm.Model
	ReferenciaPago  string     `json:"referenciaPago"`
	Banco           string     `json:"banco"`
	Monto           float64    `json:"monto"`
	FechaExpedicion time.Time  `json:"fechaExpedicion"`
	Estado          string     `json:"estado" gorm:"default:'En Espera'"`
	EstudianteID    uint       `json:"estudianteId" gorm:"index;not null"`
	SeccionID       uint       `json:"seccionId" gorm:"index;not null"`
	Estudiante      Estudiante `json:"-" gorm:"foreignKey:EstudianteID"`
	Seccion         Seccion    `json:"-" gorm:"foreignKey:SeccionID"`
}

// EstudianteSeccion is the active roster membership, created in the same
// transaction that approves the Inscripcion. The composite unique index is
// what stops two concurrent approvals from seating the same student twice.
// Aprobado records the pass/fail set later by the teacher. Hard-deleted on
// withdrawal, so no DeletedAt column.
type EstudianteSeccion struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	EstudianteID uint `json:"estudianteId" gorm:"uniqueIndex:idx_estudiante_seccion;not null"`
	SeccionID    uint `json:"seccionId" gorm:"uniqueIndex:idx_estudiante_seccion;not null"`
	Aprobado     bool `json:"aprobado" gorm:"default:false"`
}
