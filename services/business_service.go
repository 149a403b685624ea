package services

import (
	"errors"
	"fmt"

	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"
	"github.com/bayoffindiaofficial/bengal-biz-finder/repository"
)

// ErrForbidden is returned when a caller tries to mutate a listing they
// do not own.
var ErrForbidden = errors.New("you do not own this listing")

// BusinessInput carries the validated form fields for create and edit.
type BusinessInput struct {
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
}

type BusinessService struct {
	Repo   *repository.BusinessRepository
	Photos *repository.PhotoRepository
}

func NewBusinessService(repo *repository.BusinessRepository, photos *repository.PhotoRepository) *BusinessService {
	return &BusinessService{Repo: repo, Photos: photos}
}

// ValidateInput checks the enumerated fields against the reference lists.
// Syntax checks (email, url, lengths) happen at the binding layer.
func (s *BusinessService) ValidateInput(in BusinessInput) error {
	if !entity.IsBusinessType(in.Type) {
		return fmt.Errorf("unknown business type %q", in.Type)
	}
	if !entity.IsDistrict(in.District) {
		return fmt.Errorf("unknown district %q", in.District)
	}
	return nil
}

func (s *BusinessService) List() ([]entity.Business, error) {
	return s.Repo.FindAll()
}

func (s *BusinessService) Get(id uint) (*entity.Business, error) {
	return s.Repo.FindByID(id)
}

func (s *BusinessService) ListForOwner(userID uint) ([]entity.Business, error) {
	return s.Repo.FindByOwner(userID)
}

// Create inserts the listing and then one photo row per collected URL.
// The two steps are independent calls: if the photo insert fails the
// listing stays, and the error is surfaced to the caller.
func (s *BusinessService) Create(ownerID uint, in BusinessInput, photoURLs []string) (*entity.Business, error) {
	if err := s.ValidateInput(in); err != nil {
		return nil, err
	}

	b := &entity.Business{
		Name:          in.Name,
		Type:          in.Type,
		Services:      in.Services,
		Description:   in.Description,
		PriceRange:    in.PriceRange,
		Phone:         in.Phone,
		Email:         in.Email,
		Website:       in.Website,
		Address:       in.Address,
		District:      in.District,
		Area:          in.Area,
		BusinessHours: in.BusinessHours,
		UserID:        &ownerID,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	if len(photoURLs) > 0 {
		photos := make([]entity.BusinessPhoto, 0, len(photoURLs))
		for _, url := range photoURLs {
			photos = append(photos, entity.BusinessPhoto{BusinessID: b.ID, URL: url})
		}
		if err := s.Photos.CreateAll(photos); err != nil {
			return nil, err
		}
	}

	return s.Repo.FindByID(b.ID)
}

// Update writes the mutable fields, commits the provisional photo removals,
// and inserts URLs present in photoURLs but not yet stored. Removals are
// applied only here, never when the user clicks remove.
func (s *BusinessService) Update(userID, id uint, in BusinessInput, photoURLs, removedURLs []string) (*entity.Business, error) {
	if err := s.ValidateInput(in); err != nil {
		return nil, err
	}

	b, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b.UserID == nil || *b.UserID != userID {
		return nil, ErrForbidden
	}

	updates := map[string]any{
		"name":           in.Name,
		"type":           in.Type,
		"services":       in.Services,
		"description":    in.Description,
		"price_range":    in.PriceRange,
		"phone":          in.Phone,
		"email":          in.Email,
		"website":        in.Website,
		"address":        in.Address,
		"district":       in.District,
		"area":           in.Area,
		"business_hours": in.BusinessHours,
	}
	if err := s.Repo.UpdateFields(id, updates); err != nil {
		return nil, err
	}

	if err := s.Photos.DeleteByURLs(id, removedURLs); err != nil {
		return nil, err
	}

	existing, err := s.Photos.FindByBusiness(id)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.URL] = true
	}
	var added []entity.BusinessPhoto
	for _, url := range photoURLs {
		if !known[url] {
			added = append(added, entity.BusinessPhoto{BusinessID: id, URL: url})
			known[url] = true
		}
	}
	if err := s.Photos.CreateAll(added); err != nil {
		return nil, err
	}

	return s.Repo.FindByID(id)
}

// Delete removes the listing row; photo rows follow via the cascade
// constraint. Uploaded files are left on disk, matching the original
// behavior of never sweeping storage objects.
func (s *BusinessService) Delete(userID, id uint) error {
	b, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if b.UserID == nil || *b.UserID != userID {
		return ErrForbidden
	}
	return s.Repo.Delete(id)
}
