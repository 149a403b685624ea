package repository

import (
	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	DB *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{DB: db}
}

func (r *PhotoRepository) CreateAll(photos []entity.BusinessPhoto) error {
	if len(photos) == 0 {
		return nil
	}
	return r.DB.Create(&photos).Error
}

func (r *PhotoRepository) FindByBusiness(businessID uint) ([]entity.BusinessPhoto, error) {
	var photos []entity.BusinessPhoto
	err := r.DB.Where("business_id = ?", businessID).Find(&photos).Error
	return photos, err
}

// DeleteByURLs removes a business's photo rows whose URL is in urls.
func (r *PhotoRepository) DeleteByURLs(businessID uint, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	return r.DB.Unscoped().
		Where("business_id = ? AND url IN ?", businessID, urls).
		Delete(&entity.BusinessPhoto{}).Error
}
