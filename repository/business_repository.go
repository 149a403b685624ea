package repository

import (
	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"

	"gorm.io/gorm"
)

type BusinessRepository struct {
	DB *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

// FindAll returns every listing in insertion order, photos included.
func (r *BusinessRepository) FindAll() ([]entity.Business, error) {
	var list []entity.Business
	err := r.DB.
		Preload("Photos").
		Find(&list).Error
	return list, err
}

func (r *BusinessRepository) FindByID(id uint) (*entity.Business, error) {
	var b entity.Business
	err := r.DB.
		Preload("Photos").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) FindByOwner(userID uint) ([]entity.Business, error) {
	var list []entity.Business
	err := r.DB.
		Preload("Photos").
		Where("user_id = ?", userID).
		Find(&list).Error
	return list, err
}

func (r *BusinessRepository) Create(b *entity.Business) error {
	return r.DB.Create(b).Error
}

func (r *BusinessRepository) UpdateFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Business{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the row for good; dependent photo rows go with it via the
// ON DELETE CASCADE constraint (sqlite foreign keys must be on).
func (r *BusinessRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Business{}, id).Error
}
