package entity

import (
	"gorm.io/gorm"
)

type BusinessPhoto struct {
	gorm.Model
	URL string `gorm:"not null"`

	BusinessID uint
	Business   Business
}
