package controllers

import (
	"strconv"

	"github.com/Fryupi/magazin/pkg/resp"
	"github.com/Fryupi/magazin/services"
	"github.com/Fryupi/magazin/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) List(c *gin.Context) {
	items, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

type UpdateQtyRequest struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateQty(utils.CurrentUserID(c), uint(id), req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if item == nil {
		resp.OK(c, gin.H{"removed": true})
		return
	}
	resp.OK(c, item)
}

// DELETE /cart/:id
func (h *CartController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
