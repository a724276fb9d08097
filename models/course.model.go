package models

import "gorm.io/gorm"

type Curso struct {
	gorm.Model
	Nombre      string `json:"nombre"`
	Codigo      string `json:"codigo" gorm:"uniqueIndex;not null"`
	Descripcion string `json:"descripcion"`
	Categoria   string `json:"categoria"`
}
