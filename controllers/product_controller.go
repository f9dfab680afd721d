package controllers

import (
	"strconv"

	"github.com/Fryupi/magazin/pkg/resp"
	"github.com/Fryupi/magazin/services"
	"github.com/Fryupi/magazin/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Svc *services.CatalogService
}

func NewProductController(s *services.CatalogService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products?category=&search=
func (h *ProductController) List(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "category must be an id")
			return
		}
		v := uint(id)
		categoryID = &v
	}

	products, err := h.Svc.ListProducts(categoryID, c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (h *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	product, err := h.Svc.GetProduct(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /products (seller)
func (h *ProductController) Create(c *gin.Context) {
	var req services.CreateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := h.Svc.CreateProduct(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, product)
}

// PATCH /products/:id (owner)
func (h *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.ProductPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := h.Svc.UpdateProduct(uint(id), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /products/:id (owner)
func (h *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteProduct(uint(id), utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type AddStockRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// POST /products/:id/stock (owner)
func (h *ProductController) AddStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := h.Svc.AddStock(uint(id), utils.CurrentUserID(c), req.Amount)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}
