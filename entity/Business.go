package entity

import (
	"gorm.io/gorm"
)

type Business struct {
	gorm.Model
	Name          string
	Type          string
	Services      string
	Description   string
	PriceRange    string
	Phone         string
	Email         string
	Website       string
	Address       string
	District      string
	Area          string
	BusinessHours string

	// owner (users.id); nil for listings created before auth existed
	UserID *uint
	User   *User

	Photos []BusinessPhoto `gorm:"constraint:OnDelete:CASCADE"`
}
