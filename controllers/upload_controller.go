package controllers

import (
	"net/http"

	"github.com/bayoffindiaofficial/bengal-biz-finder/pkg/resp"
	"github.com/bayoffindiaofficial/bengal-biz-finder/storage"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Store *storage.LocalStore
}

func NewUploadController(store *storage.LocalStore) *UploadController {
	return &UploadController{Store: store}
}

// POST /uploads (protected) — stages images for an edit session. Files go
// under the "images" field and are saved one at a time in form order; the
// first failure aborts and surfaces the upload error.
func (ctl *UploadController) Upload(c *gin.Context) {
	mf, err := c.MultipartForm()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	files := mf.File["images"]
	if len(files) == 0 {
		resp.BadRequest(c, "no images provided")
		return
	}

	var urls []string
	for _, fh := range files {
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
		urls = append(urls, url)
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "urls": urls})
}
