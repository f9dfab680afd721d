package controllers

import (
	"strconv"

	"github.com/Fryupi/magazin/pkg/resp"
	"github.com/Fryupi/magazin/services"
	"github.com/Fryupi/magazin/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Place(utils.CurrentUserID(c), req.CartItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	out, err := h.Svc.ListForUser(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := h.Svc.Detail(uint(id), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (seller)
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(uint(id), utils.CurrentUserID(c), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/received (buyer)
func (h *OrderController) ConfirmReceived(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, already, err := h.Svc.ConfirmReceived(uint(id), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order, "alreadyConfirmed": already})
}
