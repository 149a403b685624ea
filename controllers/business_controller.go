package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"
	"github.com/bayoffindiaofficial/bengal-biz-finder/pkg/resp"
	"github.com/bayoffindiaofficial/bengal-biz-finder/services"
	"github.com/bayoffindiaofficial/bengal-biz-finder/storage"
	"github.com/bayoffindiaofficial/bengal-biz-finder/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BusinessController struct {
	Service *services.BusinessService
	Store   *storage.LocalStore
}

func NewBusinessController(s *services.BusinessService, store *storage.LocalStore) *BusinessController {
	return &BusinessController{Service: s, Store: store}
}

// ====== Request DTOs ======

// BusinessForm is shared by create (multipart fields) and edit (JSON body).
type BusinessForm struct {
	Name          string `form:"name" json:"name" binding:"required,min=3"`
	Type          string `form:"type" json:"type" binding:"required"`
	Services      string `form:"services" json:"services"`
	Description   string `form:"description" json:"description"`
	PriceRange    string `form:"priceRange" json:"priceRange"`
	Phone         string `form:"phone" json:"phone" binding:"required,min=6"`
	Email         string `form:"email" json:"email" binding:"omitempty,email"`
	Website       string `form:"website" json:"website" binding:"omitempty,url"`
	Address       string `form:"address" json:"address"`
	District      string `form:"district" json:"district" binding:"required"`
	Area          string `form:"area" json:"area" binding:"required"`
	BusinessHours string `form:"businessHours" json:"businessHours"`
}

type UpdateBusinessRequest struct {
	BusinessForm
	Photos        []string `json:"photos"`
	RemovedPhotos []string `json:"removedPhotos"`
}

func (f BusinessForm) toInput() services.BusinessInput {
	return services.BusinessInput{
		Name:          f.Name,
		Type:          f.Type,
		Services:      f.Services,
		Description:   f.Description,
		PriceRange:    f.PriceRange,
		Phone:         f.Phone,
		Email:         f.Email,
		Website:       f.Website,
		Address:       f.Address,
		District:      f.District,
		Area:          f.Area,
		BusinessHours: f.BusinessHours,
	}
}

// ====== Response DTO ======

type BusinessResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Services      string    `json:"services"`
	Description   string    `json:"description"`
	PriceRange    string    `json:"priceRange"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Website       string    `json:"website,omitempty"`
	Address       string    `json:"address"`
	District      string    `json:"district"`
	Area          string    `json:"area"`
	BusinessHours string    `json:"businessHours"`
	Photos        []string  `json:"photos"`
	OwnerID       *uint     `json:"ownerId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func mapToBusinessResponse(b *entity.Business) BusinessResponse {
	photos := make([]string, 0, len(b.Photos))
	for _, p := range b.Photos {
		photos = append(photos, p.URL)
	}
	return BusinessResponse{
		ID:            b.ID,
		Name:          b.Name,
		Type:          b.Type,
		Services:      b.Services,
		Description:   b.Description,
		PriceRange:    b.PriceRange,
		Phone:         b.Phone,
		Email:         b.Email,
		Website:       b.Website,
		Address:       b.Address,
		District:      b.District,
		Area:          b.Area,
		BusinessHours: b.BusinessHours,
		Photos:        photos,
		OwnerID:       b.UserID,
		CreatedAt:     b.CreatedAt,
	}
}

// ====== Public: browse/search listings ======
//
// GET /businesses?search=&district=&area=&type=
// Matches the listing screen: fetch everything, then apply the in-memory
// filter so the result keeps insertion order.
func (ctl *BusinessController) List(c *gin.Context) {
	all, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	filtered := services.FilterBusinesses(all, c.Query("search"), services.FilterOptions{
		District: c.Query("district"),
		Area:     c.Query("area"),
		Type:     c.Query("type"),
	})

	items := make([]BusinessResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, mapToBusinessResponse(&filtered[i]))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items, "total": len(items)})
}

// ====== Public: single listing ======
//
// GET /businesses/:id — optional auth; owners get isOwner=true so the
// client can expose edit/delete.
func (ctl *BusinessController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	b, err := ctl.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "business not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}

	viewer := utils.CurrentUserID(c)
	isOwner := viewer != 0 && b.UserID != nil && *b.UserID == viewer

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"data":    mapToBusinessResponse(b),
		"isOwner": isOwner,
	})
}

// ====== Owner: create ======
//
// POST /businesses — multipart. Images under the "photos" field are saved
// one at a time in form order; the first failed upload aborts the whole
// submission. Only then is the record inserted, followed by its photo rows.
func (ctl *BusinessController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var form BusinessForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.ValidateInput(form.toInput()); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var photoURLs []string
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for _, fh := range mf.File["photos"] {
			f, err := fh.Open()
			if err != nil {
				resp.BadRequest(c, "error uploading image: "+err.Error())
				return
			}
			url, err := ctl.Store.Save(f, fh.Filename)
			f.Close()
			if err != nil {
				resp.BadRequest(c, "error uploading image: "+err.Error())
				return
			}
			photoURLs = append(photoURLs, url)
		}
	}

	b, err := ctl.Service.Create(uid, form.toInput(), photoURLs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, mapToBusinessResponse(b))
}

// ====== Owner: edit ======
//
// PATCH /businesses/:id — JSON. "photos" is the full URL set the edit
// session ended with, "removedPhotos" the provisionally removed URLs;
// removals only take effect here, at save time.
func (ctl *BusinessController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b, err := ctl.Service.Update(uid, uint(id), req.toInput(), req.Photos, req.RemovedPhotos)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "business not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}

	resp.OK(c, mapToBusinessResponse(b))
}

// ====== Owner: delete ======
//
// DELETE /businesses/:id
func (ctl *BusinessController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uid, uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "business not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"message": "business deleted"})
}

// ====== Owner: my listings ======
//
// GET /profile/businesses
func (ctl *BusinessController) Mine(c *gin.Context) {
	list, err := ctl.Service.ListForOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]BusinessResponse, 0, len(list))
	for i := range list {
		items = append(items, mapToBusinessResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items})
}
