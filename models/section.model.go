package models

import "gorm.io/gorm"

// Seccion is one offering of a Curso taught by a Profesor. HorarioID is nil
// until a schedule is assigned; a section never has more than one.
type Seccion struct {
	gorm.Model
	Codigo     string   `json:"codigo" gorm:"uniqueIndex;not null"`
	Capacidad  int      `json:"capacidad"`
	Salon      string   `json:"salon"`
	ProfesorID uint     `json:"profesorId" gorm:"index;not null"`
	CursoID    uint     `json:"cursoId" gorm:"index;not null"`
	HorarioID  *uint    `json:"horarioId"`
	Profesor   Profesor `json:"-" gorm:"foreignKey:ProfesorID"`
	Curso      Curso    `json:"-" gorm:"foreignKey:CursoID"`
}
