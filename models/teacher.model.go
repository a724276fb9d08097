package models

import (
	"time"

	"gorm.io/gorm"
)

// Profesor extends a Usuario with teacher attributes.
type Profesor struct {
	gorm.Model
	UsuarioID       uint      `json:"usuarioId" gorm:"uniqueIndex;not null"`
	Profesion       string    `json:"profesion"`
	Direccion       string    `json:"direccion"`
	NumeroTelefono  string    `json:"numeroTelefono"`
	FechaNacimiento time.Time `json:"fechaNacimiento"`
	Usuario         Usuario   `json:"-" gorm:"foreignKey:UsuarioID"`
}
