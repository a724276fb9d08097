package models

import (
	"time"

	"gorm.io/gorm"
)

// Estudiante extends a Usuario with student attributes. It is never deleted
// directly: removing a student soft-deletes the owning Usuario.
type Estudiante struct {
	gorm.Model
	UsuarioID       uint      `json:"usuarioId" gorm:"uniqueIndex;not null"`
	Direccion       string    `json:"direccion"`
	NumeroTelefono  string    `json:"numeroTelefono"`
	FechaNacimiento time.Time `json:"fechaNacimiento"`
	Usuario         Usuario   `json:"-" gorm:"foreignKey:UsuarioID"`
}
