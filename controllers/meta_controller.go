package controllers

import (
	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"
	"github.com/bayoffindiaofficial/bengal-biz-finder/pkg/resp"

	"github.com/gin-gonic/gin"
)

// MetaController serves the static reference lists that drive the browse
// screens, filter dropdowns and form selects.
type MetaController struct{}

func NewMetaController() *MetaController { return &MetaController{} }

// GET /meta/districts
func (ctl *MetaController) Districts(c *gin.Context) {
	resp.OK(c, entity.Districts)
}

// GET /meta/business-types
func (ctl *MetaController) BusinessTypes(c *gin.Context) {
	resp.OK(c, entity.BusinessTypes)
}
