package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdministrador = "administrador"
	RoleProfesor      = "profesor"
	RoleEstudiante    = "estudiante"
)

// Usuario is the identity record. Deletion is logical: gorm.Model.DeletedAt is
// set instead of removing the row, and GORM filters deleted rows out of every
// query. Historical reads (enrollments, certificates) use Unscoped.
type Usuario struct {
	gorm.Model
	Nombre             string `json:"nombre"`
	Apellido           string `json:"apellido"`
	Email              string `json:"email" gorm:"uniqueIndex;not null"`
	Cedula             string `json:"cedula" gorm:"uniqueIndex;not null"`
	Password           string `json:"-" gorm:"not null"`
	TipoUsuario        string `json:"tipoUsuario" gorm:"default:'estudiante'"`
	PreguntaSeguridad  string `json:"preguntaSeguridad"`
	RespuestaSeguridad string `json:"-"`
}
