package controllers

import (
	"strconv"

	"github.com/Fryupi/magazin/pkg/resp"
	"github.com/Fryupi/magazin/services"
	"github.com/Fryupi/magazin/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /products/:id/reviews
func (h *ReviewController) Create(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))

	var req services.CreateReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.Create(utils.CurrentUserID(c), uint(productID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /products/:id/reviews
func (h *ReviewController) ListForProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))

	reviews, agg, err := h.Svc.ListForProduct(uint(productID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "aggregate": agg})
}
