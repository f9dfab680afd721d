package controllers

import (
	"strconv"

	"github.com/Fryupi/magazin/pkg/resp"
	"github.com/Fryupi/magazin/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Svc *services.CatalogService
}

func NewCategoryController(s *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	categories, err := h.Svc.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := h.Svc.CreateCategory(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, category)
}

// PATCH /categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CategoryPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := h.Svc.UpdateCategory(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, category)
}

// DELETE /categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
